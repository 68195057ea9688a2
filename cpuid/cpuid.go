// Package cpuid wraps the x86 CPUID instruction and decodes the
// identification registers that do not vary by leaf: vendor, brand string,
// topology IDs and the x86-64 micro-architecture level.
package cpuid

// Query selects one CPUID invocation: the primary function number (leaf,
// input EAX) and the sub-function number (sub-leaf, input ECX).
type Query struct {
	Leaf uint32
	Sub  uint32
}

// Regs holds the four output registers of one CPUID invocation.
type Regs struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// Result is an immutable capture of one CPUID invocation.
type Result struct {
	Query
	Regs
}

// Probe executes CPUID for the given leaf and sub-leaf. The instruction
// cannot fail: unsupported leaves return all-zero or vendor-defined
// defaults, and on architectures without CPUID the result is all-zero.
func Probe(leaf, sub uint32) Result {
	eax, ebx, ecx, edx := raw(leaf, sub)
	return Result{
		Query: Query{Leaf: leaf, Sub: sub},
		Regs:  Regs{EAX: eax, EBX: ebx, ECX: ecx, EDX: edx},
	}
}

// AllZero reports whether all four output registers are zero, the shape an
// unsupported leaf typically returns.
func (r Regs) AllZero() bool {
	return r.EAX == 0 && r.EBX == 0 && r.ECX == 0 && r.EDX == 0
}
