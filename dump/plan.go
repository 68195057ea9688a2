// Package dump drives the sweep: it derives the leaf/sub-leaf plan,
// samples it on every selected logical processor, reduces non-first
// processors to their diff against the first and renders the result into
// one of four text encodings.
package dump

import (
	"math"

	"github.com/Ranamom/cpuid-dump/cpuid"
)

var probeFunc = cpuid.Probe

// Discovery carries the three register values that bound the plan.
type Discovery struct {
	// EAX of leaf 0x0: largest standard leaf.
	MaxStd uint32
	// EAX of leaf 0x7 sub-leaf 0: largest leaf 0x7 sub-leaf.
	Leaf7Sub uint32
	// EAX of leaf 0x8000_0000: largest extended leaf.
	MaxExt uint32
}

// DiscoverRanges probes the three discovery leaves.
func DiscoverRanges() Discovery {
	return Discovery{
		MaxStd:   probeFunc(0x0, 0x0).EAX,
		Leaf7Sub: probeFunc(0x7, 0x0).EAX,
		MaxExt:   probeFunc(0x8000_0000, 0x0).EAX,
	}
}

// BuildPlan derives the ordered query list from the discovery registers.
// The same plan is reused for every processor. Corrupted or virtualized
// discovery values degenerate to empty or single-entry ranges; the builder
// itself never fails.
func BuildPlan(d Discovery) []cpuid.Query {
	plan := make([]cpuid.Query, 0, 64)
	push := func(leaf, sub uint32) {
		plan = append(plan, cpuid.Query{Leaf: leaf, Sub: sub})
	}

	for leaf := uint32(0x0); leaf <= d.MaxStd; leaf++ {
		switch leaf {
		case 0x4:
			// Cache properties, Intel
			for sub := uint32(0x0); sub <= 0x4; sub++ {
				push(leaf, sub)
			}
		case 0x7:
			// Structured extended features
			for sub := uint32(0x0); sub <= d.Leaf7Sub; sub++ {
				push(leaf, sub)
				if sub == math.MaxUint32 {
					break
				}
			}
		case 0xB:
			// Extended topology: SMT and core levels
			for sub := uint32(0x0); sub <= 0x1; sub++ {
				push(leaf, sub)
			}
		case 0xD:
			// Processor extended state enumeration
			for sub := uint32(0x0); sub < 0xF; sub++ {
				push(leaf, sub)
			}
		default:
			push(leaf, 0x0)
		}
		if leaf == math.MaxUint32 {
			break
		}
	}

	// V2 extended topology, Intel
	for sub := uint32(0x0); sub <= 0x4; sub++ {
		push(0x1F, sub)
	}

	for leaf := uint32(0x8000_0000); leaf >= 0x8000_0000 && leaf <= d.MaxExt; leaf++ {
		switch leaf {
		case 0x8000_001D:
			// Cache properties, AMD; same layout as leaf 0x4
			for sub := uint32(0x0); sub <= 0x4; sub++ {
				push(leaf, sub)
			}
		case 0x8000_0020:
			// Platform QoS enforcement
			for sub := uint32(0x0); sub <= 0x1; sub++ {
				push(leaf, sub)
			}
		default:
			push(leaf, 0x0)
		}
		if leaf == math.MaxUint32 {
			break
		}
	}

	return plan
}
