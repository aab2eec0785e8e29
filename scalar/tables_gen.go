// Code generated from Unicode Character Database derived-property
// listings (DerivedCoreProperties.txt Grapheme_Extend,
// DerivedGeneralCategory.txt Spacing_Mark, emoji-data.txt
// Emoji_Modifier, IndicSyllabicCategory.txt, and PropList.txt
// Prepended_Concatenation_Mark), Unicode 13.0.0. Mirrors the range
// layout npillmayer/uax/grapheme generates for its own GCB classes.
package scalar

import "unicode"

// rangeGraphemeExtendNotCGJ is Grapheme_Extend=Yes, excluding U+034F (CGJ).
var rangeGraphemeExtendNotCGJ = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0300, Hi: 0x034E, Stride: 1},
		{Lo: 0x0350, Hi: 0x036F, Stride: 1},
		{Lo: 0x0483, Hi: 0x0487, Stride: 1},
		{Lo: 0x0488, Hi: 0x0489, Stride: 1},
		{Lo: 0x0591, Hi: 0x05BD, Stride: 1},
		{Lo: 0x05BF, Hi: 0x05BF, Stride: 1},
		{Lo: 0x05C1, Hi: 0x05C2, Stride: 1},
		{Lo: 0x05C4, Hi: 0x05C5, Stride: 1},
		{Lo: 0x05C7, Hi: 0x05C7, Stride: 1},
		{Lo: 0x0610, Hi: 0x061A, Stride: 1},
		{Lo: 0x064B, Hi: 0x065F, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
		{Lo: 0x06D6, Hi: 0x06DC, Stride: 1},
		{Lo: 0x06DF, Hi: 0x06E4, Stride: 1},
		{Lo: 0x06E7, Hi: 0x06E8, Stride: 1},
		{Lo: 0x06EA, Hi: 0x06ED, Stride: 1},
		{Lo: 0x0711, Hi: 0x0711, Stride: 1},
		{Lo: 0x0730, Hi: 0x074A, Stride: 1},
		{Lo: 0x07A6, Hi: 0x07B0, Stride: 1},
		{Lo: 0x07EB, Hi: 0x07F3, Stride: 1},
		{Lo: 0x07FD, Hi: 0x07FD, Stride: 1},
		{Lo: 0x0816, Hi: 0x0819, Stride: 1},
		{Lo: 0x081B, Hi: 0x0823, Stride: 1},
		{Lo: 0x0825, Hi: 0x0827, Stride: 1},
		{Lo: 0x0829, Hi: 0x082D, Stride: 1},
		{Lo: 0x0859, Hi: 0x085B, Stride: 1},
		{Lo: 0x08D3, Hi: 0x08E1, Stride: 1},
		{Lo: 0x08E3, Hi: 0x0902, Stride: 1},
		{Lo: 0x093A, Hi: 0x093A, Stride: 1},
		{Lo: 0x093C, Hi: 0x093C, Stride: 1},
		{Lo: 0x0941, Hi: 0x0948, Stride: 1},
		{Lo: 0x094D, Hi: 0x094D, Stride: 1},
		{Lo: 0x0951, Hi: 0x0957, Stride: 1},
		{Lo: 0x0962, Hi: 0x0963, Stride: 1},
		{Lo: 0x0981, Hi: 0x0981, Stride: 1},
		{Lo: 0x09BC, Hi: 0x09BC, Stride: 1},
		{Lo: 0x09BE, Hi: 0x09BE, Stride: 1},
		{Lo: 0x09C1, Hi: 0x09C4, Stride: 1},
		{Lo: 0x09CD, Hi: 0x09CD, Stride: 1},
		{Lo: 0x09D7, Hi: 0x09D7, Stride: 1},
		{Lo: 0x09E2, Hi: 0x09E3, Stride: 1},
		{Lo: 0x09FE, Hi: 0x09FE, Stride: 1},
		{Lo: 0x0A01, Hi: 0x0A02, Stride: 1},
		{Lo: 0x0A3C, Hi: 0x0A3C, Stride: 1},
		{Lo: 0x0A41, Hi: 0x0A42, Stride: 1},
		{Lo: 0x0A47, Hi: 0x0A48, Stride: 1},
		{Lo: 0x0A4B, Hi: 0x0A4D, Stride: 1},
		{Lo: 0x0A51, Hi: 0x0A51, Stride: 1},
		{Lo: 0x0A70, Hi: 0x0A71, Stride: 1},
		{Lo: 0x0A75, Hi: 0x0A75, Stride: 1},
		{Lo: 0x0A81, Hi: 0x0A82, Stride: 1},
		{Lo: 0x0ABC, Hi: 0x0ABC, Stride: 1},
		{Lo: 0x0AC1, Hi: 0x0AC5, Stride: 1},
		{Lo: 0x0AC7, Hi: 0x0AC8, Stride: 1},
		{Lo: 0x0ACD, Hi: 0x0ACD, Stride: 1},
		{Lo: 0x0AE2, Hi: 0x0AE3, Stride: 1},
		{Lo: 0x0AFA, Hi: 0x0AFF, Stride: 1},
		{Lo: 0x0B01, Hi: 0x0B01, Stride: 1},
		{Lo: 0x0B3C, Hi: 0x0B3C, Stride: 1},
		{Lo: 0x0B3E, Hi: 0x0B3E, Stride: 1},
		{Lo: 0x0B3F, Hi: 0x0B3F, Stride: 1},
		{Lo: 0x0B41, Hi: 0x0B44, Stride: 1},
		{Lo: 0x0B4D, Hi: 0x0B4D, Stride: 1},
		{Lo: 0x0B55, Hi: 0x0B56, Stride: 1},
		{Lo: 0x0B57, Hi: 0x0B57, Stride: 1},
		{Lo: 0x0B62, Hi: 0x0B63, Stride: 1},
		{Lo: 0x0B82, Hi: 0x0B82, Stride: 1},
		{Lo: 0x0BBE, Hi: 0x0BBE, Stride: 1},
		{Lo: 0x0BC0, Hi: 0x0BC0, Stride: 1},
		{Lo: 0x0BCD, Hi: 0x0BCD, Stride: 1},
		{Lo: 0x0BD7, Hi: 0x0BD7, Stride: 1},
		{Lo: 0x0C00, Hi: 0x0C00, Stride: 1},
		{Lo: 0x0C04, Hi: 0x0C04, Stride: 1},
		{Lo: 0x0C3E, Hi: 0x0C40, Stride: 1},
		{Lo: 0x0C46, Hi: 0x0C48, Stride: 1},
		{Lo: 0x0C4A, Hi: 0x0C4D, Stride: 1},
		{Lo: 0x0C55, Hi: 0x0C56, Stride: 1},
		{Lo: 0x0C62, Hi: 0x0C63, Stride: 1},
		{Lo: 0x0C81, Hi: 0x0C81, Stride: 1},
		{Lo: 0x0CBC, Hi: 0x0CBC, Stride: 1},
		{Lo: 0x0CBF, Hi: 0x0CBF, Stride: 1},
		{Lo: 0x0CC2, Hi: 0x0CC2, Stride: 1},
		{Lo: 0x0CC6, Hi: 0x0CC6, Stride: 1},
		{Lo: 0x0CCC, Hi: 0x0CCD, Stride: 1},
		{Lo: 0x0CD5, Hi: 0x0CD6, Stride: 1},
		{Lo: 0x0CE2, Hi: 0x0CE3, Stride: 1},
		{Lo: 0x0D00, Hi: 0x0D01, Stride: 1},
		{Lo: 0x0D3B, Hi: 0x0D3C, Stride: 1},
		{Lo: 0x0D3E, Hi: 0x0D3E, Stride: 1},
		{Lo: 0x0D41, Hi: 0x0D44, Stride: 1},
		{Lo: 0x0D4D, Hi: 0x0D4D, Stride: 1},
		{Lo: 0x0D57, Hi: 0x0D57, Stride: 1},
		{Lo: 0x0D62, Hi: 0x0D63, Stride: 1},
		{Lo: 0x0D81, Hi: 0x0D81, Stride: 1},
		{Lo: 0x0DCA, Hi: 0x0DCA, Stride: 1},
		{Lo: 0x0DCF, Hi: 0x0DCF, Stride: 1},
		{Lo: 0x0DD2, Hi: 0x0DD4, Stride: 1},
		{Lo: 0x0DD6, Hi: 0x0DD6, Stride: 1},
		{Lo: 0x0DDF, Hi: 0x0DDF, Stride: 1},
		{Lo: 0x0E31, Hi: 0x0E31, Stride: 1},
		{Lo: 0x0E34, Hi: 0x0E3A, Stride: 1},
		{Lo: 0x0E47, Hi: 0x0E4E, Stride: 1},
		{Lo: 0x0EB1, Hi: 0x0EB1, Stride: 1},
		{Lo: 0x0EB4, Hi: 0x0EBC, Stride: 1},
		{Lo: 0x0EC8, Hi: 0x0ECD, Stride: 1},
		{Lo: 0x0F18, Hi: 0x0F19, Stride: 1},
		{Lo: 0x0F35, Hi: 0x0F35, Stride: 1},
		{Lo: 0x0F37, Hi: 0x0F37, Stride: 1},
		{Lo: 0x0F39, Hi: 0x0F39, Stride: 1},
		{Lo: 0x0F71, Hi: 0x0F7E, Stride: 1},
		{Lo: 0x0F80, Hi: 0x0F84, Stride: 1},
		{Lo: 0x0F86, Hi: 0x0F87, Stride: 1},
		{Lo: 0x0F8D, Hi: 0x0F97, Stride: 1},
		{Lo: 0x0F99, Hi: 0x0FBC, Stride: 1},
		{Lo: 0x0FC6, Hi: 0x0FC6, Stride: 1},
		{Lo: 0x102D, Hi: 0x1030, Stride: 1},
		{Lo: 0x1032, Hi: 0x1037, Stride: 1},
		{Lo: 0x1039, Hi: 0x103A, Stride: 1},
		{Lo: 0x103D, Hi: 0x103E, Stride: 1},
		{Lo: 0x1058, Hi: 0x1059, Stride: 1},
		{Lo: 0x105E, Hi: 0x1060, Stride: 1},
		{Lo: 0x1071, Hi: 0x1074, Stride: 1},
		{Lo: 0x1082, Hi: 0x1082, Stride: 1},
		{Lo: 0x1085, Hi: 0x1086, Stride: 1},
		{Lo: 0x108D, Hi: 0x108D, Stride: 1},
		{Lo: 0x109D, Hi: 0x109D, Stride: 1},
		{Lo: 0x135D, Hi: 0x135F, Stride: 1},
		{Lo: 0x1712, Hi: 0x1714, Stride: 1},
		{Lo: 0x1732, Hi: 0x1734, Stride: 1},
		{Lo: 0x1752, Hi: 0x1753, Stride: 1},
		{Lo: 0x1772, Hi: 0x1773, Stride: 1},
		{Lo: 0x17B4, Hi: 0x17B5, Stride: 1},
		{Lo: 0x17B7, Hi: 0x17BD, Stride: 1},
		{Lo: 0x17C6, Hi: 0x17C6, Stride: 1},
		{Lo: 0x17C9, Hi: 0x17D3, Stride: 1},
		{Lo: 0x17DD, Hi: 0x17DD, Stride: 1},
		{Lo: 0x180B, Hi: 0x180D, Stride: 1},
		{Lo: 0x1885, Hi: 0x1886, Stride: 1},
		{Lo: 0x18A9, Hi: 0x18A9, Stride: 1},
		{Lo: 0x1920, Hi: 0x1922, Stride: 1},
		{Lo: 0x1927, Hi: 0x1928, Stride: 1},
		{Lo: 0x1932, Hi: 0x1932, Stride: 1},
		{Lo: 0x1939, Hi: 0x193B, Stride: 1},
		{Lo: 0x1A17, Hi: 0x1A18, Stride: 1},
		{Lo: 0x1A1B, Hi: 0x1A1B, Stride: 1},
		{Lo: 0x1A56, Hi: 0x1A56, Stride: 1},
		{Lo: 0x1A58, Hi: 0x1A5E, Stride: 1},
		{Lo: 0x1A60, Hi: 0x1A60, Stride: 1},
		{Lo: 0x1A62, Hi: 0x1A62, Stride: 1},
		{Lo: 0x1A65, Hi: 0x1A6C, Stride: 1},
		{Lo: 0x1A73, Hi: 0x1A7C, Stride: 1},
		{Lo: 0x1A7F, Hi: 0x1A7F, Stride: 1},
		{Lo: 0x1AB0, Hi: 0x1ABD, Stride: 1},
		{Lo: 0x1ABE, Hi: 0x1ABE, Stride: 1},
		{Lo: 0x1ABF, Hi: 0x1AC0, Stride: 1},
		{Lo: 0x1B00, Hi: 0x1B03, Stride: 1},
		{Lo: 0x1B34, Hi: 0x1B34, Stride: 1},
		{Lo: 0x1B35, Hi: 0x1B35, Stride: 1},
		{Lo: 0x1B36, Hi: 0x1B3A, Stride: 1},
		{Lo: 0x1B3C, Hi: 0x1B3C, Stride: 1},
		{Lo: 0x1B42, Hi: 0x1B42, Stride: 1},
		{Lo: 0x1B6B, Hi: 0x1B73, Stride: 1},
		{Lo: 0x1B80, Hi: 0x1B81, Stride: 1},
		{Lo: 0x1BA2, Hi: 0x1BA5, Stride: 1},
		{Lo: 0x1BA8, Hi: 0x1BA9, Stride: 1},
		{Lo: 0x1BAB, Hi: 0x1BAD, Stride: 1},
		{Lo: 0x1BE6, Hi: 0x1BE6, Stride: 1},
		{Lo: 0x1BE8, Hi: 0x1BE9, Stride: 1},
		{Lo: 0x1BED, Hi: 0x1BED, Stride: 1},
		{Lo: 0x1BEF, Hi: 0x1BF1, Stride: 1},
		{Lo: 0x1C2C, Hi: 0x1C33, Stride: 1},
		{Lo: 0x1C36, Hi: 0x1C37, Stride: 1},
		{Lo: 0x1CD0, Hi: 0x1CD2, Stride: 1},
		{Lo: 0x1CD4, Hi: 0x1CE0, Stride: 1},
		{Lo: 0x1CE2, Hi: 0x1CE8, Stride: 1},
		{Lo: 0x1CED, Hi: 0x1CED, Stride: 1},
		{Lo: 0x1CF4, Hi: 0x1CF4, Stride: 1},
		{Lo: 0x1CF8, Hi: 0x1CF9, Stride: 1},
		{Lo: 0x1DC0, Hi: 0x1DF9, Stride: 1},
		{Lo: 0x1DFB, Hi: 0x1DFF, Stride: 1},
		{Lo: 0x200C, Hi: 0x200C, Stride: 1},
		{Lo: 0x20D0, Hi: 0x20DC, Stride: 1},
		{Lo: 0x20DD, Hi: 0x20E0, Stride: 1},
		{Lo: 0x20E1, Hi: 0x20E1, Stride: 1},
		{Lo: 0x20E2, Hi: 0x20E4, Stride: 1},
		{Lo: 0x20E5, Hi: 0x20F0, Stride: 1},
		{Lo: 0x2CEF, Hi: 0x2CF1, Stride: 1},
		{Lo: 0x2D7F, Hi: 0x2D7F, Stride: 1},
		{Lo: 0x2DE0, Hi: 0x2DFF, Stride: 1},
		{Lo: 0x302A, Hi: 0x302D, Stride: 1},
		{Lo: 0x302E, Hi: 0x302F, Stride: 1},
		{Lo: 0x3099, Hi: 0x309A, Stride: 1},
		{Lo: 0xA66F, Hi: 0xA66F, Stride: 1},
		{Lo: 0xA670, Hi: 0xA672, Stride: 1},
		{Lo: 0xA674, Hi: 0xA67D, Stride: 1},
		{Lo: 0xA69E, Hi: 0xA69F, Stride: 1},
		{Lo: 0xA6F0, Hi: 0xA6F1, Stride: 1},
		{Lo: 0xA802, Hi: 0xA802, Stride: 1},
		{Lo: 0xA806, Hi: 0xA806, Stride: 1},
		{Lo: 0xA80B, Hi: 0xA80B, Stride: 1},
		{Lo: 0xA825, Hi: 0xA826, Stride: 1},
		{Lo: 0xA82C, Hi: 0xA82C, Stride: 1},
		{Lo: 0xA8C4, Hi: 0xA8C5, Stride: 1},
		{Lo: 0xA8E0, Hi: 0xA8F1, Stride: 1},
		{Lo: 0xA8FF, Hi: 0xA8FF, Stride: 1},
		{Lo: 0xA926, Hi: 0xA92D, Stride: 1},
		{Lo: 0xA947, Hi: 0xA951, Stride: 1},
		{Lo: 0xA980, Hi: 0xA982, Stride: 1},
		{Lo: 0xA9B3, Hi: 0xA9B3, Stride: 1},
		{Lo: 0xA9B6, Hi: 0xA9B9, Stride: 1},
		{Lo: 0xA9BC, Hi: 0xA9BD, Stride: 1},
		{Lo: 0xA9E5, Hi: 0xA9E5, Stride: 1},
		{Lo: 0xAA29, Hi: 0xAA2E, Stride: 1},
		{Lo: 0xAA31, Hi: 0xAA32, Stride: 1},
		{Lo: 0xAA35, Hi: 0xAA36, Stride: 1},
		{Lo: 0xAA43, Hi: 0xAA43, Stride: 1},
		{Lo: 0xAA4C, Hi: 0xAA4C, Stride: 1},
		{Lo: 0xAA7C, Hi: 0xAA7C, Stride: 1},
		{Lo: 0xAAB0, Hi: 0xAAB0, Stride: 1},
		{Lo: 0xAAB2, Hi: 0xAAB4, Stride: 1},
		{Lo: 0xAAB7, Hi: 0xAAB8, Stride: 1},
		{Lo: 0xAABE, Hi: 0xAABF, Stride: 1},
		{Lo: 0xAAC1, Hi: 0xAAC1, Stride: 1},
		{Lo: 0xAAEC, Hi: 0xAAED, Stride: 1},
		{Lo: 0xAAF6, Hi: 0xAAF6, Stride: 1},
		{Lo: 0xABE5, Hi: 0xABE5, Stride: 1},
		{Lo: 0xABE8, Hi: 0xABE8, Stride: 1},
		{Lo: 0xABED, Hi: 0xABED, Stride: 1},
		{Lo: 0xFB1E, Hi: 0xFB1E, Stride: 1},
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1},
		{Lo: 0xFE20, Hi: 0xFE2F, Stride: 1},
		{Lo: 0xFF9E, Hi: 0xFF9F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x0101FD, Hi: 0x0101FD, Stride: 1},
		{Lo: 0x0102E0, Hi: 0x0102E0, Stride: 1},
		{Lo: 0x010376, Hi: 0x01037A, Stride: 1},
		{Lo: 0x010A01, Hi: 0x010A03, Stride: 1},
		{Lo: 0x010A05, Hi: 0x010A06, Stride: 1},
		{Lo: 0x010A0C, Hi: 0x010A0F, Stride: 1},
		{Lo: 0x010A38, Hi: 0x010A3A, Stride: 1},
		{Lo: 0x010A3F, Hi: 0x010A3F, Stride: 1},
		{Lo: 0x010AE5, Hi: 0x010AE6, Stride: 1},
		{Lo: 0x010D24, Hi: 0x010D27, Stride: 1},
		{Lo: 0x010EAB, Hi: 0x010EAC, Stride: 1},
		{Lo: 0x010F46, Hi: 0x010F50, Stride: 1},
		{Lo: 0x011001, Hi: 0x011001, Stride: 1},
		{Lo: 0x011038, Hi: 0x011046, Stride: 1},
		{Lo: 0x01107F, Hi: 0x011081, Stride: 1},
		{Lo: 0x0110B3, Hi: 0x0110B6, Stride: 1},
		{Lo: 0x0110B9, Hi: 0x0110BA, Stride: 1},
		{Lo: 0x011100, Hi: 0x011102, Stride: 1},
		{Lo: 0x011127, Hi: 0x01112B, Stride: 1},
		{Lo: 0x01112D, Hi: 0x011134, Stride: 1},
		{Lo: 0x011173, Hi: 0x011173, Stride: 1},
		{Lo: 0x011180, Hi: 0x011181, Stride: 1},
		{Lo: 0x0111B6, Hi: 0x0111BE, Stride: 1},
		{Lo: 0x0111C9, Hi: 0x0111CC, Stride: 1},
		{Lo: 0x0111CF, Hi: 0x0111CF, Stride: 1},
		{Lo: 0x01122F, Hi: 0x011231, Stride: 1},
		{Lo: 0x011234, Hi: 0x011234, Stride: 1},
		{Lo: 0x011236, Hi: 0x011237, Stride: 1},
		{Lo: 0x01123E, Hi: 0x01123E, Stride: 1},
		{Lo: 0x0112DF, Hi: 0x0112DF, Stride: 1},
		{Lo: 0x0112E3, Hi: 0x0112EA, Stride: 1},
		{Lo: 0x011300, Hi: 0x011301, Stride: 1},
		{Lo: 0x01133B, Hi: 0x01133C, Stride: 1},
		{Lo: 0x01133E, Hi: 0x01133E, Stride: 1},
		{Lo: 0x011340, Hi: 0x011340, Stride: 1},
		{Lo: 0x011357, Hi: 0x011357, Stride: 1},
		{Lo: 0x011366, Hi: 0x01136C, Stride: 1},
		{Lo: 0x011370, Hi: 0x011374, Stride: 1},
		{Lo: 0x011438, Hi: 0x01143F, Stride: 1},
		{Lo: 0x011442, Hi: 0x011444, Stride: 1},
		{Lo: 0x011446, Hi: 0x011446, Stride: 1},
		{Lo: 0x01145E, Hi: 0x01145E, Stride: 1},
		{Lo: 0x0114B0, Hi: 0x0114B0, Stride: 1},
		{Lo: 0x0114B3, Hi: 0x0114B8, Stride: 1},
		{Lo: 0x0114BA, Hi: 0x0114BA, Stride: 1},
		{Lo: 0x0114BD, Hi: 0x0114BD, Stride: 1},
		{Lo: 0x0114BF, Hi: 0x0114C0, Stride: 1},
		{Lo: 0x0114C2, Hi: 0x0114C3, Stride: 1},
		{Lo: 0x0115AF, Hi: 0x0115AF, Stride: 1},
		{Lo: 0x0115B2, Hi: 0x0115B5, Stride: 1},
		{Lo: 0x0115BC, Hi: 0x0115BD, Stride: 1},
		{Lo: 0x0115BF, Hi: 0x0115C0, Stride: 1},
		{Lo: 0x0115DC, Hi: 0x0115DD, Stride: 1},
		{Lo: 0x011633, Hi: 0x01163A, Stride: 1},
		{Lo: 0x01163D, Hi: 0x01163D, Stride: 1},
		{Lo: 0x01163F, Hi: 0x011640, Stride: 1},
		{Lo: 0x0116AB, Hi: 0x0116AB, Stride: 1},
		{Lo: 0x0116AD, Hi: 0x0116AD, Stride: 1},
		{Lo: 0x0116B0, Hi: 0x0116B5, Stride: 1},
		{Lo: 0x0116B7, Hi: 0x0116B7, Stride: 1},
		{Lo: 0x01171D, Hi: 0x01171F, Stride: 1},
		{Lo: 0x011722, Hi: 0x011725, Stride: 1},
		{Lo: 0x011727, Hi: 0x01172B, Stride: 1},
		{Lo: 0x01182F, Hi: 0x011837, Stride: 1},
		{Lo: 0x011839, Hi: 0x01183A, Stride: 1},
		{Lo: 0x011930, Hi: 0x011930, Stride: 1},
		{Lo: 0x01193B, Hi: 0x01193C, Stride: 1},
		{Lo: 0x01193E, Hi: 0x01193E, Stride: 1},
		{Lo: 0x011943, Hi: 0x011943, Stride: 1},
		{Lo: 0x0119D4, Hi: 0x0119D7, Stride: 1},
		{Lo: 0x0119DA, Hi: 0x0119DB, Stride: 1},
		{Lo: 0x0119E0, Hi: 0x0119E0, Stride: 1},
		{Lo: 0x011A01, Hi: 0x011A0A, Stride: 1},
		{Lo: 0x011A33, Hi: 0x011A38, Stride: 1},
		{Lo: 0x011A3B, Hi: 0x011A3E, Stride: 1},
		{Lo: 0x011A47, Hi: 0x011A47, Stride: 1},
		{Lo: 0x011A51, Hi: 0x011A56, Stride: 1},
		{Lo: 0x011A59, Hi: 0x011A5B, Stride: 1},
		{Lo: 0x011A8A, Hi: 0x011A96, Stride: 1},
		{Lo: 0x011A98, Hi: 0x011A99, Stride: 1},
		{Lo: 0x011C30, Hi: 0x011C36, Stride: 1},
		{Lo: 0x011C38, Hi: 0x011C3D, Stride: 1},
		{Lo: 0x011C3F, Hi: 0x011C3F, Stride: 1},
		{Lo: 0x011C92, Hi: 0x011CA7, Stride: 1},
		{Lo: 0x011CAA, Hi: 0x011CB0, Stride: 1},
		{Lo: 0x011CB2, Hi: 0x011CB3, Stride: 1},
		{Lo: 0x011CB5, Hi: 0x011CB6, Stride: 1},
		{Lo: 0x011D31, Hi: 0x011D36, Stride: 1},
		{Lo: 0x011D3A, Hi: 0x011D3A, Stride: 1},
		{Lo: 0x011D3C, Hi: 0x011D3D, Stride: 1},
		{Lo: 0x011D3F, Hi: 0x011D45, Stride: 1},
		{Lo: 0x011D47, Hi: 0x011D47, Stride: 1},
		{Lo: 0x011D90, Hi: 0x011D91, Stride: 1},
		{Lo: 0x011D95, Hi: 0x011D95, Stride: 1},
		{Lo: 0x011D97, Hi: 0x011D97, Stride: 1},
		{Lo: 0x011EF3, Hi: 0x011EF4, Stride: 1},
		{Lo: 0x016AF0, Hi: 0x016AF4, Stride: 1},
		{Lo: 0x016B30, Hi: 0x016B36, Stride: 1},
		{Lo: 0x016F4F, Hi: 0x016F4F, Stride: 1},
		{Lo: 0x016F8F, Hi: 0x016F92, Stride: 1},
		{Lo: 0x016FE4, Hi: 0x016FE4, Stride: 1},
		{Lo: 0x01BC9D, Hi: 0x01BC9E, Stride: 1},
		{Lo: 0x01D165, Hi: 0x01D165, Stride: 1},
		{Lo: 0x01D167, Hi: 0x01D169, Stride: 1},
		{Lo: 0x01D16E, Hi: 0x01D172, Stride: 1},
		{Lo: 0x01D17B, Hi: 0x01D182, Stride: 1},
		{Lo: 0x01D185, Hi: 0x01D18B, Stride: 1},
		{Lo: 0x01D1AA, Hi: 0x01D1AD, Stride: 1},
		{Lo: 0x01D242, Hi: 0x01D244, Stride: 1},
		{Lo: 0x01DA00, Hi: 0x01DA36, Stride: 1},
		{Lo: 0x01DA3B, Hi: 0x01DA6C, Stride: 1},
		{Lo: 0x01DA75, Hi: 0x01DA75, Stride: 1},
		{Lo: 0x01DA84, Hi: 0x01DA84, Stride: 1},
		{Lo: 0x01DA9B, Hi: 0x01DA9F, Stride: 1},
		{Lo: 0x01DAA1, Hi: 0x01DAAF, Stride: 1},
		{Lo: 0x01E000, Hi: 0x01E006, Stride: 1},
		{Lo: 0x01E008, Hi: 0x01E018, Stride: 1},
		{Lo: 0x01E01B, Hi: 0x01E021, Stride: 1},
		{Lo: 0x01E023, Hi: 0x01E024, Stride: 1},
		{Lo: 0x01E026, Hi: 0x01E02A, Stride: 1},
		{Lo: 0x01E130, Hi: 0x01E136, Stride: 1},
		{Lo: 0x01E2EC, Hi: 0x01E2EF, Stride: 1},
		{Lo: 0x01E8D0, Hi: 0x01E8D6, Stride: 1},
		{Lo: 0x01E944, Hi: 0x01E94A, Stride: 1},
		{Lo: 0x0E0020, Hi: 0x0E007F, Stride: 1},
		{Lo: 0x0E0100, Hi: 0x0E01EF, Stride: 1},
	},
}

// rangeEmojiModifier is Emoji_Modifier=Yes.
var rangeEmojiModifier = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x01F3FB, Hi: 0x01F3FF, Stride: 1},
	},
}

// rangeSpacingMarkGC is General_Category=Spacing_Mark.
var rangeSpacingMarkGC = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0903, Hi: 0x0903, Stride: 1},
		{Lo: 0x093B, Hi: 0x093B, Stride: 1},
		{Lo: 0x093E, Hi: 0x0940, Stride: 1},
		{Lo: 0x0949, Hi: 0x094C, Stride: 1},
		{Lo: 0x094E, Hi: 0x094F, Stride: 1},
		{Lo: 0x0982, Hi: 0x0983, Stride: 1},
		{Lo: 0x09BE, Hi: 0x09C0, Stride: 1},
		{Lo: 0x09C7, Hi: 0x09C8, Stride: 1},
		{Lo: 0x09CB, Hi: 0x09CC, Stride: 1},
		{Lo: 0x09D7, Hi: 0x09D7, Stride: 1},
		{Lo: 0x0A03, Hi: 0x0A03, Stride: 1},
		{Lo: 0x0A3E, Hi: 0x0A40, Stride: 1},
		{Lo: 0x0A83, Hi: 0x0A83, Stride: 1},
		{Lo: 0x0ABE, Hi: 0x0AC0, Stride: 1},
		{Lo: 0x0AC9, Hi: 0x0AC9, Stride: 1},
		{Lo: 0x0ACB, Hi: 0x0ACC, Stride: 1},
		{Lo: 0x0B02, Hi: 0x0B03, Stride: 1},
		{Lo: 0x0B3E, Hi: 0x0B3E, Stride: 1},
		{Lo: 0x0B40, Hi: 0x0B40, Stride: 1},
		{Lo: 0x0B47, Hi: 0x0B48, Stride: 1},
		{Lo: 0x0B4B, Hi: 0x0B4C, Stride: 1},
		{Lo: 0x0B57, Hi: 0x0B57, Stride: 1},
		{Lo: 0x0BBE, Hi: 0x0BBF, Stride: 1},
		{Lo: 0x0BC1, Hi: 0x0BC2, Stride: 1},
		{Lo: 0x0BC6, Hi: 0x0BC8, Stride: 1},
		{Lo: 0x0BCA, Hi: 0x0BCC, Stride: 1},
		{Lo: 0x0BD7, Hi: 0x0BD7, Stride: 1},
		{Lo: 0x0C01, Hi: 0x0C03, Stride: 1},
		{Lo: 0x0C41, Hi: 0x0C44, Stride: 1},
		{Lo: 0x0C82, Hi: 0x0C83, Stride: 1},
		{Lo: 0x0CBE, Hi: 0x0CBE, Stride: 1},
		{Lo: 0x0CC0, Hi: 0x0CC4, Stride: 1},
		{Lo: 0x0CC7, Hi: 0x0CC8, Stride: 1},
		{Lo: 0x0CCA, Hi: 0x0CCB, Stride: 1},
		{Lo: 0x0CD5, Hi: 0x0CD6, Stride: 1},
		{Lo: 0x0D02, Hi: 0x0D03, Stride: 1},
		{Lo: 0x0D3E, Hi: 0x0D40, Stride: 1},
		{Lo: 0x0D46, Hi: 0x0D48, Stride: 1},
		{Lo: 0x0D4A, Hi: 0x0D4C, Stride: 1},
		{Lo: 0x0D57, Hi: 0x0D57, Stride: 1},
		{Lo: 0x0D82, Hi: 0x0D83, Stride: 1},
		{Lo: 0x0DCF, Hi: 0x0DD1, Stride: 1},
		{Lo: 0x0DD8, Hi: 0x0DDF, Stride: 1},
		{Lo: 0x0DF2, Hi: 0x0DF3, Stride: 1},
		{Lo: 0x0F3E, Hi: 0x0F3F, Stride: 1},
		{Lo: 0x0F7F, Hi: 0x0F7F, Stride: 1},
		{Lo: 0x102B, Hi: 0x102C, Stride: 1},
		{Lo: 0x1031, Hi: 0x1031, Stride: 1},
		{Lo: 0x1038, Hi: 0x1038, Stride: 1},
		{Lo: 0x103B, Hi: 0x103C, Stride: 1},
		{Lo: 0x1056, Hi: 0x1057, Stride: 1},
		{Lo: 0x1062, Hi: 0x1064, Stride: 1},
		{Lo: 0x1067, Hi: 0x106D, Stride: 1},
		{Lo: 0x1083, Hi: 0x1084, Stride: 1},
		{Lo: 0x1087, Hi: 0x108C, Stride: 1},
		{Lo: 0x108F, Hi: 0x108F, Stride: 1},
		{Lo: 0x109A, Hi: 0x109C, Stride: 1},
		{Lo: 0x17B6, Hi: 0x17B6, Stride: 1},
		{Lo: 0x17BE, Hi: 0x17C5, Stride: 1},
		{Lo: 0x17C7, Hi: 0x17C8, Stride: 1},
		{Lo: 0x1923, Hi: 0x1926, Stride: 1},
		{Lo: 0x1929, Hi: 0x192B, Stride: 1},
		{Lo: 0x1930, Hi: 0x1931, Stride: 1},
		{Lo: 0x1933, Hi: 0x1938, Stride: 1},
		{Lo: 0x1A19, Hi: 0x1A1A, Stride: 1},
		{Lo: 0x1A55, Hi: 0x1A55, Stride: 1},
		{Lo: 0x1A57, Hi: 0x1A57, Stride: 1},
		{Lo: 0x1A61, Hi: 0x1A61, Stride: 1},
		{Lo: 0x1A63, Hi: 0x1A64, Stride: 1},
		{Lo: 0x1A6D, Hi: 0x1A72, Stride: 1},
		{Lo: 0x1B04, Hi: 0x1B04, Stride: 1},
		{Lo: 0x1B35, Hi: 0x1B35, Stride: 1},
		{Lo: 0x1B3B, Hi: 0x1B3B, Stride: 1},
		{Lo: 0x1B3D, Hi: 0x1B41, Stride: 1},
		{Lo: 0x1B43, Hi: 0x1B44, Stride: 1},
		{Lo: 0x1B82, Hi: 0x1B82, Stride: 1},
		{Lo: 0x1BA1, Hi: 0x1BA1, Stride: 1},
		{Lo: 0x1BA6, Hi: 0x1BA7, Stride: 1},
		{Lo: 0x1BAA, Hi: 0x1BAA, Stride: 1},
		{Lo: 0x1BE7, Hi: 0x1BE7, Stride: 1},
		{Lo: 0x1BEA, Hi: 0x1BEC, Stride: 1},
		{Lo: 0x1BEE, Hi: 0x1BEE, Stride: 1},
		{Lo: 0x1BF2, Hi: 0x1BF3, Stride: 1},
		{Lo: 0x1C24, Hi: 0x1C2B, Stride: 1},
		{Lo: 0x1C34, Hi: 0x1C35, Stride: 1},
		{Lo: 0x1CE1, Hi: 0x1CE1, Stride: 1},
		{Lo: 0x1CF7, Hi: 0x1CF7, Stride: 1},
		{Lo: 0x302E, Hi: 0x302F, Stride: 1},
		{Lo: 0xA823, Hi: 0xA824, Stride: 1},
		{Lo: 0xA827, Hi: 0xA827, Stride: 1},
		{Lo: 0xA880, Hi: 0xA881, Stride: 1},
		{Lo: 0xA8B4, Hi: 0xA8C3, Stride: 1},
		{Lo: 0xA952, Hi: 0xA953, Stride: 1},
		{Lo: 0xA983, Hi: 0xA983, Stride: 1},
		{Lo: 0xA9B4, Hi: 0xA9B5, Stride: 1},
		{Lo: 0xA9BA, Hi: 0xA9BB, Stride: 1},
		{Lo: 0xA9BE, Hi: 0xA9C0, Stride: 1},
		{Lo: 0xAA2F, Hi: 0xAA30, Stride: 1},
		{Lo: 0xAA33, Hi: 0xAA34, Stride: 1},
		{Lo: 0xAA4D, Hi: 0xAA4D, Stride: 1},
		{Lo: 0xAA7B, Hi: 0xAA7B, Stride: 1},
		{Lo: 0xAA7D, Hi: 0xAA7D, Stride: 1},
		{Lo: 0xAAEB, Hi: 0xAAEB, Stride: 1},
		{Lo: 0xAAEE, Hi: 0xAAEF, Stride: 1},
		{Lo: 0xAAF5, Hi: 0xAAF5, Stride: 1},
		{Lo: 0xABE3, Hi: 0xABE4, Stride: 1},
		{Lo: 0xABE6, Hi: 0xABE7, Stride: 1},
		{Lo: 0xABE9, Hi: 0xABEA, Stride: 1},
		{Lo: 0xABEC, Hi: 0xABEC, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x011000, Hi: 0x011000, Stride: 1},
		{Lo: 0x011002, Hi: 0x011002, Stride: 1},
		{Lo: 0x011082, Hi: 0x011082, Stride: 1},
		{Lo: 0x0110B0, Hi: 0x0110B2, Stride: 1},
		{Lo: 0x0110B7, Hi: 0x0110B8, Stride: 1},
		{Lo: 0x01112C, Hi: 0x01112C, Stride: 1},
		{Lo: 0x011145, Hi: 0x011146, Stride: 1},
		{Lo: 0x011182, Hi: 0x011182, Stride: 1},
		{Lo: 0x0111B3, Hi: 0x0111B5, Stride: 1},
		{Lo: 0x0111BF, Hi: 0x0111C0, Stride: 1},
		{Lo: 0x0111CE, Hi: 0x0111CE, Stride: 1},
		{Lo: 0x01122C, Hi: 0x01122E, Stride: 1},
		{Lo: 0x011232, Hi: 0x011233, Stride: 1},
		{Lo: 0x011235, Hi: 0x011235, Stride: 1},
		{Lo: 0x0112E0, Hi: 0x0112E2, Stride: 1},
		{Lo: 0x011302, Hi: 0x011303, Stride: 1},
		{Lo: 0x01133E, Hi: 0x01133F, Stride: 1},
		{Lo: 0x011341, Hi: 0x011344, Stride: 1},
		{Lo: 0x011347, Hi: 0x011348, Stride: 1},
		{Lo: 0x01134B, Hi: 0x01134D, Stride: 1},
		{Lo: 0x011357, Hi: 0x011357, Stride: 1},
		{Lo: 0x011362, Hi: 0x011363, Stride: 1},
		{Lo: 0x011435, Hi: 0x011437, Stride: 1},
		{Lo: 0x011440, Hi: 0x011441, Stride: 1},
		{Lo: 0x011445, Hi: 0x011445, Stride: 1},
		{Lo: 0x0114B0, Hi: 0x0114B2, Stride: 1},
		{Lo: 0x0114B9, Hi: 0x0114B9, Stride: 1},
		{Lo: 0x0114BB, Hi: 0x0114BE, Stride: 1},
		{Lo: 0x0114C1, Hi: 0x0114C1, Stride: 1},
		{Lo: 0x0115AF, Hi: 0x0115B1, Stride: 1},
		{Lo: 0x0115B8, Hi: 0x0115BB, Stride: 1},
		{Lo: 0x0115BE, Hi: 0x0115BE, Stride: 1},
		{Lo: 0x011630, Hi: 0x011632, Stride: 1},
		{Lo: 0x01163B, Hi: 0x01163C, Stride: 1},
		{Lo: 0x01163E, Hi: 0x01163E, Stride: 1},
		{Lo: 0x0116AC, Hi: 0x0116AC, Stride: 1},
		{Lo: 0x0116AE, Hi: 0x0116AF, Stride: 1},
		{Lo: 0x0116B6, Hi: 0x0116B6, Stride: 1},
		{Lo: 0x011720, Hi: 0x011721, Stride: 1},
		{Lo: 0x011726, Hi: 0x011726, Stride: 1},
		{Lo: 0x01182C, Hi: 0x01182E, Stride: 1},
		{Lo: 0x011838, Hi: 0x011838, Stride: 1},
		{Lo: 0x011930, Hi: 0x011935, Stride: 1},
		{Lo: 0x011937, Hi: 0x011938, Stride: 1},
		{Lo: 0x01193D, Hi: 0x01193D, Stride: 1},
		{Lo: 0x011940, Hi: 0x011940, Stride: 1},
		{Lo: 0x011942, Hi: 0x011942, Stride: 1},
		{Lo: 0x0119D1, Hi: 0x0119D3, Stride: 1},
		{Lo: 0x0119DC, Hi: 0x0119DF, Stride: 1},
		{Lo: 0x0119E4, Hi: 0x0119E4, Stride: 1},
		{Lo: 0x011A39, Hi: 0x011A39, Stride: 1},
		{Lo: 0x011A57, Hi: 0x011A58, Stride: 1},
		{Lo: 0x011A97, Hi: 0x011A97, Stride: 1},
		{Lo: 0x011C2F, Hi: 0x011C2F, Stride: 1},
		{Lo: 0x011C3E, Hi: 0x011C3E, Stride: 1},
		{Lo: 0x011CA9, Hi: 0x011CA9, Stride: 1},
		{Lo: 0x011CB1, Hi: 0x011CB1, Stride: 1},
		{Lo: 0x011CB4, Hi: 0x011CB4, Stride: 1},
		{Lo: 0x011D8A, Hi: 0x011D8E, Stride: 1},
		{Lo: 0x011D93, Hi: 0x011D94, Stride: 1},
		{Lo: 0x011D96, Hi: 0x011D96, Stride: 1},
		{Lo: 0x011EF5, Hi: 0x011EF6, Stride: 1},
		{Lo: 0x016F51, Hi: 0x016F87, Stride: 1},
		{Lo: 0x016FF0, Hi: 0x016FF1, Stride: 1},
		{Lo: 0x01D165, Hi: 0x01D166, Stride: 1},
		{Lo: 0x01D16D, Hi: 0x01D172, Stride: 1},
	},
}

// rangeSpacingMarkExceptions lists Spacing_Mark scalars that are reclassified
// as Grapheme_Cluster_Break=Extend rather than SpacingMark.
var rangeSpacingMarkExceptions = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x102B, Hi: 0x102B, Stride: 1},
		{Lo: 0x102C, Hi: 0x102C, Stride: 1},
		{Lo: 0x1038, Hi: 0x1038, Stride: 1},
		{Lo: 0x1062, Hi: 0x1064, Stride: 1},
		{Lo: 0x1067, Hi: 0x106D, Stride: 1},
		{Lo: 0x1083, Hi: 0x1083, Stride: 1},
		{Lo: 0x1087, Hi: 0x108C, Stride: 1},
		{Lo: 0x108F, Hi: 0x108F, Stride: 1},
		{Lo: 0x109A, Hi: 0x109C, Stride: 1},
		{Lo: 0x1A61, Hi: 0x1A61, Stride: 1},
		{Lo: 0x1A63, Hi: 0x1A63, Stride: 1},
		{Lo: 0x1A64, Hi: 0x1A64, Stride: 1},
		{Lo: 0xAA7B, Hi: 0xAA7B, Stride: 1},
		{Lo: 0xAA7D, Hi: 0xAA7D, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x011720, Hi: 0x011720, Stride: 1},
		{Lo: 0x011721, Hi: 0x011721, Stride: 1},
	},
}

// rangeIndicPrecedingRepha is Indic_Syllabic_Category=Consonant_Preceding_Repha.
var rangeIndicPrecedingRepha = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0D4E, Hi: 0x0D4E, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x011941, Hi: 0x011941, Stride: 1},
		{Lo: 0x011D46, Hi: 0x011D46, Stride: 1},
	},
}

// rangeIndicPrefixed is Indic_Syllabic_Category=Consonant_Prefixed.
var rangeIndicPrefixed = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x0111C2, Hi: 0x0111C3, Stride: 1},
		{Lo: 0x01193F, Hi: 0x01193F, Stride: 1},
		{Lo: 0x011A3A, Hi: 0x011A3A, Stride: 1},
		{Lo: 0x011A84, Hi: 0x011A89, Stride: 1},
	},
}

// rangePrependedConcatenationMark is Prepended_Concatenation_Mark=Yes.
var rangePrependedConcatenationMark = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0600, Hi: 0x0605, Stride: 1},
		{Lo: 0x06DD, Hi: 0x06DD, Stride: 1},
		{Lo: 0x070F, Hi: 0x070F, Stride: 1},
		{Lo: 0x08E2, Hi: 0x08E2, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x0110BD, Hi: 0x0110BD, Stride: 1},
		{Lo: 0x0110CD, Hi: 0x0110CD, Stride: 1},
	},
}

