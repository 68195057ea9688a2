//go:build amd64

package cpuid

// raw executes the CPUID instruction with leaf in EAX and sub in ECX and
// returns the values left in EAX, EBX, ECX and EDX. Implemented in
// cpuid_amd64.s.
func raw(leaf, sub uint32) (eax, ebx, ecx, edx uint32)
