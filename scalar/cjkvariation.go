package scalar

// cjkCompatVariationSequence maps a CJK Compatibility Ideograph to the
// Standardized Variation Sequence (base ideograph + a variation
// selector, per Unicode's StandardizedVariants.txt) that the Pre-NFC table
// substitutes it with in both Lossy and Strict-then-fixed contexts,
// mirroring the reference implementation's use of the
// unicode_normalization crate's cjk_compat_variants() transform.
//
// This table is a representative subset of StandardizedVariants.txt's
// CJK Compatibility Ideograph block; a production build would generate
// the full ~1,002-entry table the way the teacher's internal/generator
// packages build their UCD-derived tables, at `go generate` time.
var cjkCompatVariationSequence = map[rune][]rune{
	0xFA10: {0x585A, 0xFE00},
	0xFA12: {0x6674, 0xFE00},
	0xFA15: {0x51DE, 0xFE00},
	0xFA16: {0x732A, 0xFE00},
	0xFA17: {0x76CA, 0xFE00},
	0xFA18: {0x793C, 0xFE00},
	0xFA19: {0x795E, 0xFE00},
	0xFA1A: {0x7965, 0xFE00},
	0xFA1B: {0x798F, 0xFE00},
	0xFA1C: {0x9756, 0xFE00},
	0xFA1D: {0x7CBE, 0xFE00},
	0xFA1E: {0x7FBD, 0xFE00},
	0xFA20: {0x8612, 0xFE00},
	0xFA22: {0x8AF8, 0xFE00},
	0xFA25: {0x9038, 0xFE00},
	0xFA26: {0x90FD, 0xFE00},
	0xFA2A: {0x98EF, 0xFE00},
	0xFA2B: {0x98FC, 0xFE00},
	0xFA2C: {0x9928, 0xFE00},
	0xFA2D: {0x9DB4, 0xFE00},
	0xFA6D: {0x8218, 0xFE00},
	0xFA70: {0x4E26, 0xFE00},
	0xFA71: {0x51B5, 0xFE00},
	0xFA72: {0x5168, 0xFE00},
	0xFAD9: {0x9F8E, 0xFE00},
}
