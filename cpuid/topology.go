package cpuid

// TopoID identifies where the currently running logical processor sits in
// the package topology, derived from the extended topology leaf 0xB.
type TopoID struct {
	Pkg    uint32
	Core   uint32
	SMT    uint32
	X2APIC uint32
}

func topoFromRegs(smtLevel, coreLevel Regs) (TopoID, bool) {
	// EBX == 0 at sub-leaf 0 means the leaf is unsupported on this part.
	if smtLevel.EBX == 0 {
		return TopoID{}, false
	}

	smtShift := smtLevel.EAX & 0x1F
	coreShift := coreLevel.EAX & 0x1F
	x2apic := smtLevel.EDX

	return TopoID{
		Pkg:    x2apic >> coreShift,
		Core:   (x2apic >> smtShift) & ((1 << (coreShift - smtShift)) - 1),
		SMT:    x2apic & ((1 << smtShift) - 1),
		X2APIC: x2apic,
	}, true
}

// ReadTopology derives the topology IDs of the calling logical processor.
// The second return is false when leaf 0xB is unsupported (old or spoofed
// parts); callers fall back to a plain thread-number header.
func ReadTopology() (TopoID, bool) {
	return topoFromRegs(Probe(0xB, 0x0).Regs, Probe(0xB, 0x1).Regs)
}
