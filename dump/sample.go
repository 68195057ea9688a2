package dump

import "github.com/Ranamom/cpuid-dump/cpuid"

// Sample is one processor's ordered capture of the plan. Entries keep the
// plan's relative order; with zero-skip enabled the sample may be shorter
// than the plan.
type Sample []cpuid.Result

// Sweep probes every planned query on the processor the calling thread is
// currently bound to. With skipZero, entries whose four registers are all
// zero are discarded.
func Sweep(plan []cpuid.Query, skipZero bool) Sample {
	pool := make(Sample, 0, len(plan))
	for _, q := range plan {
		r := probeFunc(q.Leaf, q.Sub)
		if skipZero && r.AllZero() {
			continue
		}
		pool = append(pool, r)
	}
	return pool
}

// Diff returns the entries of s whose query is absent from base or whose
// registers differ from the base entry for the same query. Matching is
// keyed by query rather than position, so samples whose zero-filtering
// diverged still compare the right entries against each other.
func (s Sample) Diff(base Sample) Sample {
	ref := make(map[cpuid.Query]cpuid.Regs, len(base))
	for _, r := range base {
		ref[r.Query] = r.Regs
	}

	kept := make(Sample, 0, len(s))
	for _, r := range s {
		if regs, ok := ref[r.Query]; ok && regs == r.Regs {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
