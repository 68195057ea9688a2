package cpuid

// x86-64 micro-architecture feature levels, as defined by the psABI.
// Each level requires every bit of its masks plus all lower levels.
const (
	// leaf 0x1 EDX: FPU, CX8, SCE, CMOV, MMX, FXSR, SSE, SSE2
	baseline0001EDX = 1<<0 | 1<<8 | 1<<11 | 1<<15 | 1<<23 | 1<<24 | 1<<25 | 1<<26

	// leaf 0x1 ECX: SSE3, SSSE3, CMPXCHG16B, SSE4.1, SSE4.2, POPCNT
	v2_0001ECX = 1<<0 | 1<<9 | 1<<13 | 1<<19 | 1<<20 | 1<<23
	// leaf 0x8000_0001 ECX: LAHF/SAHF
	v2_8001ECX = 1 << 0

	// leaf 0x1 ECX: FMA, MOVBE, OSXSAVE, AVX, F16C
	v3_0001ECX = 1<<12 | 1<<22 | 1<<27 | 1<<28 | 1<<29
	// leaf 0x7 EBX: BMI1, AVX2, BMI2
	v3_0007EBX = 1<<3 | 1<<5 | 1<<8
	// leaf 0x8000_0001 ECX: ABM/LZCNT
	v3_8001ECX = 1 << 5

	// leaf 0x7 EBX: AVX512 F, DQ, CD, BW, VL
	v4_0007EBX = 1<<16 | 1<<17 | 1<<28 | 1<<30 | 1<<31
)

func maskAll(masks, regs []uint32) bool {
	for i, m := range masks {
		if regs[i]&m != m {
			return false
		}
	}
	return true
}

func levelFromRegs(r0001, r0007, r8001 Regs) uint8 {
	levels := []bool{
		maskAll([]uint32{baseline0001EDX}, []uint32{r0001.EDX}),
		maskAll([]uint32{v2_0001ECX, v2_8001ECX}, []uint32{r0001.ECX, r8001.ECX}),
		maskAll([]uint32{v3_0001ECX, v3_0007EBX, v3_8001ECX},
			[]uint32{r0001.ECX, r0007.EBX, r8001.ECX}),
		maskAll([]uint32{v4_0007EBX}, []uint32{r0007.EBX}),
	}

	var level uint8
	for _, ok := range levels {
		if !ok {
			break
		}
		level++
	}
	return level
}

// MicroArchLevel reports the highest x86-64-vN level the running processor
// satisfies, 0 when even the v1 baseline is missing.
func MicroArchLevel() uint8 {
	return levelFromRegs(
		Probe(0x1, 0x0).Regs,
		Probe(0x7, 0x0).Regs,
		Probe(0x8000_0001, 0x0).Regs,
	)
}
