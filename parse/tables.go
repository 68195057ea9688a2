package parse

// Bit-to-label tables, indexed by bit position. Empty entries are either
// reserved bits or bits folded into a compound token by the per-leaf
// decoders (e.g. SSE and AVX512 variants).

// Leaf 0x1 EDX. Bits 25/26 (SSE/SSE2) render through the SSE variant token.
var ftr0001EDX = [32]string{
	0: "FPU", 1: "VME", 2: "DE", 3: "PSE",
	4: "TSC", 5: "MSR", 6: "PAE", 7: "MCE",
	8: "CX8", 9: "APIC", 11: "SEP",
	12: "MTRR", 13: "PGE", 14: "MCA", 15: "CMOV",
	16: "PAT", 17: "PSE36", 18: "PSN", 19: "CLFSH",
	21: "DS", 22: "ACPI", 23: "MMX",
	24: "FXSR", 27: "SS",
	28: "HTT", 29: "TM", 31: "PBE",
}

// Leaf 0x1 ECX. Bits 0/19/20 (SSE3/SSE4.1/SSE4.2) render through the SSE
// variant token, bit 9 (SSSE3) is appended after it.
var ftr0001ECX = [32]string{
	1: "PCLMULQDQ", 2: "DTES64", 3: "MONITOR",
	4: "DS-CPL", 5: "VMX", 6: "SMX", 7: "EIST",
	8: "TM2", 10: "CNXT-ID", 11: "SDBG",
	12: "FMA", 13: "CX16", 14: "xTPR", 15: "PDCM",
	17: "PCID", 18: "DCA",
	21: "x2APIC", 22: "MOVBE", 23: "POPCNT",
	24: "TSC-Deadline", 25: "AES", 26: "XSAVE", 27: "OSXSAVE",
	28: "AVX", 29: "F16C", 30: "RDRAND",
}

// Leaf 0x7 sub-leaf 0 EBX. AVX512 bits render through compound tokens.
var ftr0007EBXx0 = [32]string{
	0: "FSGSBASE", 1: "TSC_ADJUST", 2: "SGX", 3: "BMI1",
	4: "HLE", 5: "AVX2", 7: "SMEP",
	8: "BMI2", 9: "ERMS", 10: "INVPCID", 11: "RTM",
	12: "RDT-M", 14: "MPX", 15: "RDT-A",
	18: "RDSEED", 19: "ADX",
	20: "SMAP", 23: "CLFLUSHOPT",
	24: "CLWB", 25: "PT", 29: "SHA",
}

// Leaf 0x7 sub-leaf 0 ECX. AVX512 bits render through compound tokens.
var ftr0007ECXx0 = [32]string{
	0: "PREFETCHWT1", 2: "UMIP", 3: "PKU",
	4: "OSPKE", 5: "WAITPKG", 7: "CET_SS",
	8: "GFNI", 9: "VAES", 10: "VPCLMULQDQ",
	13: "TME", 16: "LA57",
	22: "RDPID", 23: "KL",
	24: "BUS_LOCK_DETECT", 25: "CLDEMOTE", 27: "MOVDIRI",
	28: "MOVDIR64B", 29: "ENQCMD", 30: "SGX_LC", 31: "PKS",
}

// Leaf 0x7 sub-leaf 0 EDX. AVX512/AMX bits render through compound tokens.
var ftr0007EDXx0 = [32]string{
	4: "FSRM", 5: "UINTR",
	9: "SRBDS_CTRL", 10: "MD_CLEAR", 11: "RTM_ALWAYS_ABORT",
	13: "TSX_FORCE_ABORT", 14: "SERIALIZE", 15: "Hybrid",
	16: "TSXLDTRK", 18: "PCONFIG", 19: "LBR",
	20: "CET_IBT",
	26: "IBPB", 27: "STIBP",
	28: "L1D_FLUSH", 29: "IA32_ARCH_CAPABILITIES", 30: "IA32_CORE_CAPABILITIES", 31: "SSBD",
}

// Leaf 0x7 sub-leaf 1 EAX.
var ftr0007EAXx1 = [32]string{
	4: "AVX_VNNI", 5: "AVX512_BF16", 22: "HRESET", 26: "LAM",
}

// Leaf 0x8000_0001 ECX (AMD). Bit 31 of EDX (3DNow!) renders through a
// variant token.
var ftr8001ECX = [32]string{
	0: "LAHF/SAHF", 1: "CmpLegacy", 2: "SVM", 3: "ExtApicSpace",
	4: "AltMovCr8", 5: "ABM", 6: "SSE4A", 7: "MisAlignSse",
	8: "3DNowPrefetch", 9: "OSVW", 10: "IBS", 11: "XOP",
	12: "SKINIT", 13: "WDT", 15: "LWP",
	16: "FMA4", 17: "TCE", 19: "NodeId",
	21: "TBM", 22: "TopoExt", 23: "PerfCtrExtCore",
	24: "PerfCtrExtNB", 26: "DataBkptExt", 27: "PerfTsc",
	28: "PerfCtrExtLLC", 29: "MONITORX", 30: "AddrMaskExt",
}

// Leaf 0xD sub-leaf 0 EAX: supported XSAVE state components.
var xfeatureMask000DEAXx0 = [32]string{
	0: "X87", 1: "SSE", 2: "AVX",
	3: "BNDREG", 4: "BNDCSR",
	5: "OpMask", 6: "ZMM_Hi256", 7: "Hi16_ZMM",
	9: "PKRU", 10: "PASID", 11: "CET_U", 12: "CET_S",
	13: "HDC", 14: "UINTR", 15: "LBR", 16: "HWP",
	17: "XTILECFG", 18: "XTILEDATA",
}

// Leaf 0xD sub-leaf 1 EAX: XSAVE capability bits.
var xsave000DEAXx1 = [32]string{
	0: "XSAVEOPT", 1: "XSAVEC", 2: "XGETBV", 3: "XSAVES", 4: "XFD",
}
