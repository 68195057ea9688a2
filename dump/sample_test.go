package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ranamom/cpuid-dump/cpuid"
)

// fakeProbe serves canned registers keyed by query; unlisted queries
// return all-zero, like an unsupported leaf.
func fakeProbe(regs map[cpuid.Query]cpuid.Regs) func(leaf, sub uint32) cpuid.Result {
	return func(leaf, sub uint32) cpuid.Result {
		q := cpuid.Query{Leaf: leaf, Sub: sub}
		return cpuid.Result{Query: q, Regs: regs[q]}
	}
}

func TestSweepSkipZero(t *testing.T) {
	plan := []cpuid.Query{{Leaf: 0x0}, {Leaf: 0x1}, {Leaf: 0x2}}
	regs := map[cpuid.Query]cpuid.Regs{
		{Leaf: 0x0}: {EAX: 0xD},
		{Leaf: 0x2}: {EDX: 0x1},
	}

	restore := probeFunc
	probeFunc = fakeProbe(regs)
	defer func() { probeFunc = restore }()

	s := Sweep(plan, true)
	assert.Len(t, s, 2)
	assert.Equal(t, uint32(0x0), s[0].Leaf)
	assert.Equal(t, uint32(0x2), s[1].Leaf)

	// Zero-skip disabled keeps the all-zero entry in plan order.
	s = Sweep(plan, false)
	assert.Len(t, s, 3)
	assert.Equal(t, uint32(0x1), s[1].Leaf)
	assert.True(t, s[1].AllZero())
}

func entry(leaf, sub, eax uint32) cpuid.Result {
	return cpuid.Result{
		Query: cpuid.Query{Leaf: leaf, Sub: sub},
		Regs:  cpuid.Regs{EAX: eax},
	}
}

func TestDiffEqualLength(t *testing.T) {
	base := Sample{entry(0x0, 0x0, 1), entry(0x1, 0x0, 2), entry(0x7, 0x0, 3)}
	other := Sample{entry(0x0, 0x0, 1), entry(0x1, 0x0, 9), entry(0x7, 0x0, 3)}

	d := other.Diff(base)
	assert.Equal(t, Sample{entry(0x1, 0x0, 9)}, d)

	// Identical samples diff to nothing.
	assert.Empty(t, base.Diff(base))
}

func TestDiffKeyedByQuery(t *testing.T) {
	// The baseline zero-skipped leaf 0x1; the comparand did not. Keyed
	// matching still pairs leaf 0x7 correctly and reports leaf 0x1 as new.
	base := Sample{entry(0x0, 0x0, 1), entry(0x7, 0x0, 3)}
	other := Sample{entry(0x0, 0x0, 1), entry(0x1, 0x0, 5), entry(0x7, 0x0, 3)}

	d := other.Diff(base)
	assert.Equal(t, Sample{entry(0x1, 0x0, 5)}, d)
}

func TestDiffPreservesOrder(t *testing.T) {
	base := Sample{entry(0x0, 0x0, 1), entry(0x1, 0x0, 2), entry(0xB, 0x1, 3)}
	other := Sample{entry(0x0, 0x0, 7), entry(0x1, 0x0, 2), entry(0xB, 0x1, 8)}

	d := other.Diff(base)
	assert.Equal(t, Sample{entry(0x0, 0x0, 7), entry(0xB, 0x1, 8)}, d)
}
