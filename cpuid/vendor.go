package cpuid

import "encoding/binary"

type Vendor uint

const (
	VendorOther Vendor = iota
	VendorIntel
	VendorAMD
)

var vendorMap = map[string]Vendor{
	"GenuineIntel": VendorIntel,
	"AuthenticAMD": VendorAMD,
}

// VendorString assembles the 12-byte vendor identification string from the
// leaf 0x0 registers, in the EBX-EDX-ECX order the instruction defines.
func VendorString(r Regs) string {
	var b [12]byte
	binary.LittleEndian.PutUint32(b[0:], r.EBX)
	binary.LittleEndian.PutUint32(b[4:], r.EDX)
	binary.LittleEndian.PutUint32(b[8:], r.ECX)
	return string(b[:])
}

func vendorFromRegs(r Regs) Vendor {
	if v, ok := vendorMap[VendorString(r)]; ok {
		return v
	}
	return VendorOther
}

// IdentifyVendor probes leaf 0x0 and classifies the vendor string.
func IdentifyVendor() Vendor {
	return vendorFromRegs(Probe(0x0, 0x0).Regs)
}
