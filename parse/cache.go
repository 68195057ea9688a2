package parse

import (
	"fmt"

	"github.com/Ranamom/cpuid-dump/cpuid"
	"github.com/Ranamom/cpuid-dump/format"
)

// CacheProp is the decoded layout of one cache-properties sub-leaf
// (leaf 0x4 on Intel, leaf 0x8000_001D on AMD; the formats are identical).
type CacheProp struct {
	Level         uint32
	Type          string
	Ways          uint32
	Partitions    uint32
	LineSize      uint32
	Sets          uint32
	Size          uint64
	SharedThreads uint32
	Inclusive     bool
}

var cacheTypes = [4]string{"", "Data", "Inst", "Unified"}

// CachePropFromRegs applies the fixed cache-properties bit slicing.
// Level 0 marks the end of the enumeration.
func CachePropFromRegs(r cpuid.Regs) CacheProp {
	c := CacheProp{
		Level:         r.EAX >> 5 & 0x7,
		Ways:          (r.EBX >> 22 & 0x3FF) + 1,
		Partitions:    (r.EBX >> 12 & 0x3FF) + 1,
		LineSize:      (r.EBX & 0xFFF) + 1,
		Sets:          r.ECX + 1,
		SharedThreads: (r.EAX >> 14 & 0xFFF) + 1,
		Inclusive:     r.EDX&0x2 != 0,
	}
	if t := r.EAX & 0x1F; t < uint32(len(cacheTypes)) {
		c.Type = cacheTypes[t]
	}
	c.Size = uint64(c.Ways) * uint64(c.Partitions) * uint64(c.LineSize) * uint64(c.Sets)
	return c
}

func cacheProp(r cpuid.Regs) string {
	c := CachePropFromRegs(r)
	if c.Level == 0 || c.Type == "" {
		return ""
	}

	s := fmt.Sprintf(" [L%d%s, %3d-way, %s]",
		c.Level, c.Type[:1], c.Ways, format.CacheSize(c.Size))
	s += padln()
	s += fmt.Sprintf(" [Shared %dT]", c.SharedThreads)
	if c.Inclusive {
		s += " [Inclusive]"
	}
	return s
}
