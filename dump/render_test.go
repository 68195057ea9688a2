package dump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ranamom/cpuid-dump/cpuid"
	"github.com/Ranamom/cpuid-dump/parse"
)

var sandyBridge = cpuid.Result{
	Query: cpuid.Query{Leaf: 0x1, Sub: 0x0},
	Regs:  cpuid.Regs{EAX: 0x000306A9, EBX: 0x02100800, ECX: 0x7FBAE3FF, EDX: 0xBFEBFBFF},
}

func TestRawEntry(t *testing.T) {
	got := rawRenderer{}.Entry(sandyBridge)
	assert.Equal(t,
		"  0x00000001 0x0:  0x000306A9 0x02100800 0x7FBAE3FF 0xBFEBFBFF\n", got)

	// All-zero entries still render as a full-width line.
	zero := cpuid.Result{Query: cpuid.Query{Leaf: 0x2, Sub: 0x0}}
	assert.Equal(t,
		"  0x00000002 0x0:  0x00000000 0x00000000 0x00000000 0x00000000\n",
		rawRenderer{}.Entry(zero))
}

func TestCompatEntry(t *testing.T) {
	got := compatRenderer{}.Entry(sandyBridge)
	assert.Equal(t,
		"   0x00000001 0x00: eax=0x000306a9 ebx=0x02100800 ecx=0x7fbae3ff edx=0xbfebfbff\n", got)

	assert.Equal(t, "CPU 3:\n", compatRenderer{}.ThreadHead(3, true))
	assert.Equal(t, "CPU:\n", compatRenderer{}.ThreadHead(0, false))
	assert.Equal(t, "", compatRenderer{}.Head())
}

func TestBinaryEntry(t *testing.T) {
	assert.Equal(t, "11111111_00000000_10101010_01010101", binReg(0xFF00AA55))

	got := binaryRenderer{}.Entry(sandyBridge)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Len(t, lines, 2)

	// EAX/EBX on the first line behind the input column, ECX/EDX aligned
	// beneath them.
	assert.Equal(t, "  0x00000001 0x0:  "+binReg(0x000306A9)+"  "+binReg(0x02100800), lines[0])
	assert.Equal(t, strings.Repeat(" ", parse.InputWidth)+binReg(0x7FBAE3FF)+"  "+binReg(0xBFEBFBFF), lines[1])
}

func TestHexHead(t *testing.T) {
	head := hexHead()
	lines := strings.Split(strings.TrimRight(head, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], leafHead))
	assert.Contains(t, lines[0], "[EAX]")
	assert.Contains(t, lines[0], "[EDX]")
	assert.Equal(t, strings.Repeat("=", parse.TotalWidth), lines[1])
}

func TestBinHeadColumns(t *testing.T) {
	head := binaryRenderer{}.Head()
	lines := strings.Split(strings.TrimRight(head, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[EAX / ECX]")
	assert.Contains(t, lines[0], "[EBX / EDX]")

	// The ruler matches the entry layout: input column, then two
	// 35-character register columns.
	assert.Equal(t,
		strings.Repeat("=", len(leafHead))+"  "+
			strings.Repeat("=", binOutputLen)+"  "+
			strings.Repeat("=", binOutputLen),
		lines[1])
}

func TestTopoHead(t *testing.T) {
	restore := readTopologyFunc
	defer func() { readTopologyFunc = restore }()

	readTopologyFunc = func() (cpuid.TopoID, bool) {
		return cpuid.TopoID{Pkg: 0, Core: 2, SMT: 1, X2APIC: 5}, true
	}
	assert.Equal(t, "[Pkg: 000, Core: 002, SMT: 001, x2APIC: 005]\n",
		topoHead(0, false, 0))
	assert.Equal(t, "[Pkg: 000, Core: 002, SMT: 001, x2APIC: 005, Thread: 004]\n",
		topoHead(4, true, 0))
	assert.Equal(t, "[Pkg: 000, Core: 002, SMT: 001, x2APIC: 005] [x86-64-v3]\n",
		topoHead(0, false, 3))

	// Without leaf 0xB the header degrades to a thread tag, or nothing in
	// single-processor mode.
	readTopologyFunc = func() (cpuid.TopoID, bool) { return cpuid.TopoID{}, false }
	assert.Equal(t, "[Thread: 007]\n", topoHead(7, true, 0))
	assert.Equal(t, "", topoHead(0, false, 0))
}
