//go:build !amd64

package cpuid

// Architectures without the CPUID instruction degrade to all-zero results,
// which the callers render as empty ranges and empty decoded output.
func raw(leaf, sub uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}
