package text

import (
	"golang.org/x/text/unicode/norm"

	"github.com/sunfishcode/basic-text/scalar"
)

// IsBasicTextQuick performs a cheap check of whether s is already valid
// Basic Text, for callers who want to skip a full conversion pass when
// it isn't needed. definite reports whether ok is a conclusive answer.
//
// Grounded on the reference implementation's is_basic_text_substr_quick,
// which scans once for any scalar its Categorize iterator would flag
// (ESC or a Main-table violation) and, only if none is found, falls
// back to an NFC stream-safe quick-check that can itself answer "maybe".
// golang.org/x/text/unicode/norm's IsNormalString does the equivalent
// scan in one pass without a "maybe" outcome, so this always resolves
// definite=true once the per-scalar scan finds nothing to reject.
func IsBasicTextQuick(s string) (ok bool, definite bool) {
	if s == "" {
		return true, true
	}
	first := true
	for i, r := range s {
		if first {
			first = false
			if scalar.IsBTNonStarter(r) || r == scalar.ZWJ {
				return false, true
			}
		}
		if r == scalar.ESC || r == scalar.CR {
			return false, true
		}
		if pre := scalar.LookupPreNFC(r); pre.Action != scalar.PreNFCPass {
			return false, true
		}
		if entry := scalar.LookupMain(r); entry.Action != scalar.MainPass {
			return false, true
		}
		if i+len(string(r)) == len(s) && scalar.IsBTNonEnder(r) {
			return false, true
		}
	}
	if !norm.NFC.IsNormalString(s) {
		return false, true
	}
	return true, true
}
