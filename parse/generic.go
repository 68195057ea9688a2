package parse

import (
	"fmt"
	"strings"

	"github.com/Ranamom/cpuid-dump/cpuid"
)

// Decode maps one captured entry to its decoded-token suffix, empty when
// the leaf carries nothing worth describing. The vendor steers which cache
// enumeration leaf applies.
func Decode(r cpuid.Result, vendor cpuid.Vendor) string {
	switch {
	case r.Leaf == 0x0 && r.Sub == 0x0:
		return vendorLeaf(r.Regs)
	case r.Leaf == 0x1 && r.Sub == 0x0:
		return info0001(r.Regs)
	case r.Leaf == 0x4 && vendor != cpuid.VendorAMD:
		return cacheProp(r.Regs)
	case r.Leaf == 0x7 && r.Sub == 0x0:
		return feature0007x0(r.Regs)
	case r.Leaf == 0x7 && r.Sub == 0x1:
		return feature0007x1(r.EAX)
	case r.Leaf == 0xB || r.Leaf == 0x1F:
		return extTopo(r.Regs)
	case r.Leaf == 0xD:
		return xstate000D(r.Sub, r.EAX)
	case r.Leaf == 0x8000_0001:
		return feature8001(r.Regs)
	case r.Leaf >= 0x8000_0002 && r.Leaf <= 0x8000_0004:
		return procName(r.Regs)
	case r.Leaf == 0x8000_0008:
		return addrSize8008(r.EAX)
	case r.Leaf == 0x8000_001D && vendor != cpuid.VendorIntel:
		return cacheProp(r.Regs)
	}
	return ""
}

func vendorLeaf(r cpuid.Regs) string {
	return fmt.Sprintf(" [%s]", cpuid.VendorString(r))
}

// fms carries the synthesized family/model/stepping of leaf 0x1 EAX.
type fms struct {
	Family   uint32
	Model    uint32
	Stepping uint32
}

// fmsFromEAX applies the extended family/model composition rules: the
// extended family adds to a base family of 0xF, the extended model
// prepends for families 0x6 and 0xF.
func fmsFromEAX(eax uint32) fms {
	f := fms{
		Family:   eax >> 8 & 0xF,
		Model:    eax >> 4 & 0xF,
		Stepping: eax & 0xF,
	}
	if f.Family == 0xF {
		f.Family += eax >> 20 & 0xFF
	}
	if f.Family >= 0x6 {
		f.Model |= eax >> 16 & 0xF << 4
	}
	return f
}

func info0001(r cpuid.Regs) string {
	f := fmsFromEAX(r.EAX)

	segs := []string{
		fmt.Sprintf(" [F: 0x%X, M: 0x%X, S: 0x%X]", f.Family, f.Model, f.Stepping),
		padln(),
		fmt.Sprintf(" [APIC ID: %d]", r.EBX>>24),
		padln(),
		fmt.Sprintf(" [Total thread(s): %dT]", r.EBX>>16&0xFF),
		padln(),
		fmt.Sprintf(" [CLFlush: %dB]", (r.EBX>>8&0xFF)*8),
	}

	if ftr := feature0001(r); ftr != "" {
		segs = append(segs, padln(), ftr)
	}

	return strings.Join(segs, "")
}

func feature0001(r cpuid.Regs) string {
	buff := make([]string, 0, 64)

	buff = append(buff, detect(r.EDX, ftr0001EDX)...)
	buff = append(buff, detect(r.ECX, ftr0001ECX)...)

	ecx, edx := bits(r.ECX), bits(r.EDX)

	if edx[25] {
		buff = append(buff, expandVariant("SSE", []variant{
			{edx[26], "2"}, {ecx[0], "3"}, {ecx[19], "4.1"}, {ecx[20], "4.2"},
		}))
	}
	if ecx[9] {
		buff = append(buff, "SSSE3")
	}

	return alignTokens(buff)
}

func feature0007x0(r cpuid.Regs) string {
	buff := make([]string, 0, 96)

	buff = append(buff, detect(r.EBX, ftr0007EBXx0)...)
	buff = append(buff, detect(r.ECX, ftr0007ECXx0)...)
	buff = append(buff, detect(r.EDX, ftr0007EDXx0)...)

	ebx, ecx, edx := bits(r.EBX), bits(r.ECX), bits(r.EDX)

	if ebx[16] || ebx[17] || ebx[21] || ebx[28] || ebx[30] || ebx[31] {
		buff = append(buff, expandVariant("AVX512", []variant{
			{ebx[16], "F"},
			{ebx[17], "DQ"},
			{ebx[21], "IFMA"},
			{ebx[28], "CD"},
			{ebx[30], "BW"},
			{ebx[31], "VL"},
		}))
	}

	// Intel Xeon Phi only
	if ebx[26] && ebx[27] {
		buff = append(buff, "AVX512{PF,ER}")
	}

	if ecx[1] || ecx[6] || ecx[11] || ecx[12] || ecx[14] {
		buff = append(buff, expandVariant("AVX512", []variant{
			{ecx[1], "VBMI"},
			{ecx[6], "VBMI2"},
			{ecx[11], "VNNI"},
			{ecx[12], "BITALG"},
			{ecx[14], "VPOPCNTDQ"},
		}))
	}

	// Intel Xeon Phi only
	if edx[2] && edx[3] {
		buff = append(buff, "AVX512{4VNNIW,4FMAPS}")
	}

	if edx[8] || edx[23] {
		buff = append(buff, expandVariant("AVX512", []variant{
			{edx[8], "VP2INTERSECT"},
			{edx[23], "FP16"},
		}))
	}

	if edx[22] && edx[24] && edx[25] {
		buff = append(buff, "AMX{BF16,TILE,INT8}")
	}

	return alignTokens(buff)
}

func feature0007x1(eax uint32) string {
	return alignTokens(detect(eax, ftr0007EAXx1))
}

// xstate000D dispatches the extended-state enumeration sub-leaves:
// sub-leaf 0 lists supported components, sub-leaf 1 the XSAVE capability
// bits, and a few named sub-leaves report their save-area size.
func xstate000D(sub, eax uint32) string {
	size := func(name string) string {
		// EAX is the state size; zero means the component is unsupported.
		if eax == 0 {
			return ""
		}
		return fmt.Sprintf(" [%s: size(%d)]", name, eax)
	}

	switch sub {
	case 0x0:
		mask := alignTokens(detect(eax, xfeatureMask000DEAXx0))
		if mask == "" {
			return ""
		}
		return fmt.Sprintf(" [XFEATURE Mask:]%s%s", padln(), mask)
	case 0x1:
		return alignTokens(detect(eax, xsave000DEAXx1))
	case 0x2:
		return size("XSTATE")
	case 0x9:
		return size("Protection Key")
	case 0xB:
		return size("CET User")
	case 0xC:
		return size("CET SuperVisor")
	}
	return ""
}

func feature8001(r cpuid.Regs) string {
	buff := detect(r.ECX, ftr8001ECX)

	edx := bits(r.EDX)
	if edx[31] {
		buff = append(buff, expandVariant("3DNow!", []variant{{edx[30], "EXT"}}))
	}

	return alignTokens(buff)
}

func addrSize8008(eax uint32) string {
	pad := padln() + strings.Repeat(" ", len(" [Address size:"))

	return fmt.Sprintf(" [Address size: %2d-bits physical %s %2d-bits virtual]",
		eax&0xFF, pad, eax>>8&0xFF)
}

var topoLevelTypes = [6]string{"", "SMT", "Core", "Module", "Tile", "Die"}

// extTopo decodes one extended-topology sub-leaf (leaves 0xB and 0x1F).
func extTopo(r cpuid.Regs) string {
	t := r.ECX >> 8 & 0xFF
	if t == 0 || t >= uint32(len(topoLevelTypes)) {
		return ""
	}
	return fmt.Sprintf(" [%s: %dT]", topoLevelTypes[t], r.EBX&0xFFFF)
}

func procName(r cpuid.Regs) string {
	name := strings.TrimSpace(cpuid.NameChunk(r))
	if name == "" {
		return ""
	}
	return fmt.Sprintf(" [%s]", name)
}
