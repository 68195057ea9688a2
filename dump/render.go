package dump

import (
	"fmt"
	"strings"

	"github.com/Ranamom/cpuid-dump/cpuid"
	"github.com/Ranamom/cpuid-dump/parse"
)

// Style selects one of the four output encodings.
type Style int

const (
	StyleParsed Style = iota
	StyleRaw
	StyleBinary
	StyleCompat
)

// renderer produces the text blocks of one encoding. The styles are a
// closed set; each gets its own implementation.
type renderer interface {
	// Head is the column header emitted once after the first processor's
	// block header.
	Head() string
	// ThreadHead labels one processor's block. withThread marks
	// all-processor mode, where the logical-processor number is included.
	ThreadHead(cpu int, withThread bool) string
	// Entry renders one captured result, newline-terminated.
	Entry(r cpuid.Result) string
	// EntryWidth estimates bytes per entry for buffer pre-sizing.
	EntryWidth() int
}

func newRenderer(style Style, vendor cpuid.Vendor) renderer {
	switch style {
	case StyleRaw:
		return rawRenderer{}
	case StyleBinary:
		return binaryRenderer{}
	case StyleCompat:
		return compatRenderer{}
	default:
		return parsedRenderer{vendor: vendor}
	}
}

const leafHead = "       [Leaf.Sub]"

// inputCol renders the leaf/sub-leaf column every non-compat style shares.
func inputCol(q cpuid.Query) string {
	return fmt.Sprintf("  0x%08X 0x%X:  ", q.Leaf, q.Sub)
}

func regsCol(r cpuid.Regs) string {
	return fmt.Sprintf("0x%08X 0x%08X 0x%08X 0x%08X", r.EAX, r.EBX, r.ECX, r.EDX)
}

func hexHead() string {
	var sb strings.Builder
	sb.WriteString(leafHead)
	sb.WriteString(" ")
	for _, reg := range []string{"EAX", "EBX", "ECX", "EDX"} {
		sb.WriteString("   [" + reg + "]   ")
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", parse.TotalWidth))
	sb.WriteString("\n")
	return sb.String()
}

// Hooks for the topology probes so coordinator tests stay hermetic.
var (
	readTopologyFunc   = cpuid.ReadTopology
	microArchLevelFunc = cpuid.MicroArchLevel
)

// topoHead renders the per-processor block header from the topology IDs of
// the processor the calling thread is bound to. level is appended as an
// x86-64-vN tag when non-zero.
func topoHead(cpu int, withThread bool, level uint8) string {
	var sb strings.Builder

	topo, ok := readTopologyFunc()
	if !ok {
		if !withThread {
			return ""
		}
		sb.WriteString(fmt.Sprintf("[Thread: %03d]", cpu))
	} else {
		sb.WriteString(fmt.Sprintf("[Pkg: %03d, Core: %03d, SMT: %03d, x2APIC: %03d",
			topo.Pkg, topo.Core, topo.SMT, topo.X2APIC))
		if withThread {
			sb.WriteString(fmt.Sprintf(", Thread: %03d", cpu))
		}
		sb.WriteString("]")
	}

	if level > 0 {
		sb.WriteString(fmt.Sprintf(" [x86-64-v%d]", level))
	}
	sb.WriteString("\n")
	return sb.String()
}

type rawRenderer struct{}

func (rawRenderer) Head() string { return hexHead() }

func (rawRenderer) ThreadHead(cpu int, withThread bool) string {
	return topoHead(cpu, withThread, 0)
}

func (rawRenderer) Entry(r cpuid.Result) string {
	return inputCol(r.Query) + regsCol(r.Regs) + "\n"
}

func (rawRenderer) EntryWidth() int { return parse.TotalWidth }

type parsedRenderer struct {
	vendor cpuid.Vendor
}

func (parsedRenderer) Head() string { return hexHead() }

func (parsedRenderer) ThreadHead(cpu int, withThread bool) string {
	return topoHead(cpu, withThread, microArchLevelFunc())
}

func (p parsedRenderer) Entry(r cpuid.Result) string {
	return inputCol(r.Query) + regsCol(r.Regs) + parse.Decode(r, p.vendor) + "\n"
}

func (parsedRenderer) EntryWidth() int { return parse.TotalWidth * 3 }

type binaryRenderer struct{}

const binOutputLen = 35 // 32 bits + 3 separators

func (binaryRenderer) Head() string {
	pad := strings.Repeat(" ", (binOutputLen-len("[EAX / ECX]"))/2-1)
	line := strings.Repeat("=", binOutputLen)

	return leafHead + "  " +
		pad + " [EAX / ECX] " + pad + " " + pad + "  [EBX / EDX]\n" +
		strings.Repeat("=", len(leafHead)) + "  " + line + "  " + line + "\n"
}

func (binaryRenderer) ThreadHead(cpu int, withThread bool) string {
	return topoHead(cpu, withThread, 0)
}

// binReg renders one register as 32 binary digits in byte groups.
func binReg(reg uint32) string {
	return fmt.Sprintf("%08b_%08b_%08b_%08b",
		reg>>24&0xFF, reg>>16&0xFF, reg>>8&0xFF, reg&0xFF)
}

func (binaryRenderer) Entry(r cpuid.Result) string {
	return inputCol(r.Query) + binReg(r.EAX) + "  " + binReg(r.EBX) + "\n" +
		strings.Repeat(" ", parse.InputWidth) + binReg(r.ECX) + "  " + binReg(r.EDX) + "\n"
}

func (binaryRenderer) EntryWidth() int { return parse.TotalWidth * 2 }

// compatRenderer reproduces the plain `cpuid -r` line layout byte for
// byte, with a `CPU N:` header per processor and no column header.
type compatRenderer struct{}

func (compatRenderer) Head() string { return "" }

func (compatRenderer) ThreadHead(cpu int, withThread bool) string {
	if !withThread {
		return "CPU:\n"
	}
	return fmt.Sprintf("CPU %d:\n", cpu)
}

func (compatRenderer) Entry(r cpuid.Result) string {
	return fmt.Sprintf("   0x%08x 0x%02x: eax=0x%08x ebx=0x%08x ecx=0x%08x edx=0x%08x\n",
		r.Leaf, r.Sub, r.EAX, r.EBX, r.ECX, r.EDX)
}

func (compatRenderer) EntryWidth() int { return parse.TotalWidth }
