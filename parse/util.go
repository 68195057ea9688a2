// Package parse decodes raw CPUID registers into human-readable feature
// and topology tokens and lays them out inside the dump's fixed column
// budget. All lookup tables are read-only package data.
package parse

import (
	"fmt"
	"strings"
)

// Column layout shared with the dump renderers. A full line is
//
//	<input: leaf/sub-leaf><output: four registers> <decoded tokens>
//
// and must not exceed TotalWidth.
const (
	InputWidth  = len("  0x00000000 0x0:  ")
	OutputWidth = len("0x00000000 ") * 4
	TotalWidth  = 100

	// Remaining budget for decoded tokens on the first line of an entry.
	parseWidth = TotalWidth - InputWidth - OutputWidth - 1
)

// Pad returns the left padding that aligns continuation lines under the
// decoded-token column.
func Pad() string {
	return strings.Repeat(" ", InputWidth+OutputWidth+1)
}

func padln() string {
	return "\n" + Pad()
}

func bits(reg uint32) [32]bool {
	var b [32]bool
	for i := range b {
		b[i] = reg>>i&1 == 1
	}
	return b
}

// detect returns, in ascending bit order, the table label of every set bit
// whose entry is non-empty.
func detect(reg uint32, table [32]string) []string {
	buff := make([]string, 0, 32)
	for i, name := range table {
		if reg>>i&1 == 1 && name != "" {
			buff = append(buff, name)
		}
	}
	return buff
}

type variant struct {
	ok   bool
	name string
}

// expandVariant builds a compound token like "AVX512{F,DQ,CD}" from the
// members whose flag is set, preserving declaration order.
func expandVariant(base string, members []variant) string {
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("{")
	for _, m := range members {
		if m.ok {
			sb.WriteString(m.name)
			sb.WriteString(",")
		}
	}
	s := strings.TrimSuffix(sb.String(), ",")
	return s + "}"
}

// alignTokens renders tokens as " [token]" segments, wrapping onto padded
// continuation lines whenever a decorated token would overflow the
// remaining column budget.
func alignTokens(tokens []string) string {
	const decoLen = len(" []")

	rest := parseWidth
	var mold strings.Builder

	for _, v := range tokens {
		l := len(v) + decoLen

		if l <= rest {
			fmt.Fprintf(&mold, " [%s]", v)
			rest -= l
			continue
		}

		fmt.Fprintf(&mold, "%s [%s]", padln(), v)
		if l > parseWidth {
			rest = 0
		} else {
			rest = parseWidth - l
		}
	}

	return mold.String()
}
