package cpuid

import (
	"encoding/binary"
	"strings"
)

// NameChunk decodes the 16 processor-brand-string bytes carried by one of
// the leaves 0x8000_0002..0x8000_0004. Control bytes map to spaces.
func NameChunk(r Regs) string {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:], r.EAX)
	binary.LittleEndian.PutUint32(b[4:], r.EBX)
	binary.LittleEndian.PutUint32(b[8:], r.ECX)
	binary.LittleEndian.PutUint32(b[12:], r.EDX)
	for i, c := range b {
		if c <= 0x1F {
			b[i] = 0x20
		}
	}
	return string(b[:])
}

// BrandString probes leaves 0x8000_0002..0x8000_0004 and returns the
// trimmed 48-byte processor brand string, e.g.
// "AMD Ryzen 5 5600G with Radeon Graphics".
func BrandString() string {
	var sb strings.Builder
	for leaf := uint32(0x8000_0002); leaf <= 0x8000_0004; leaf++ {
		sb.WriteString(NameChunk(Probe(leaf, 0x0).Regs))
	}
	return strings.TrimSpace(sb.String())
}
