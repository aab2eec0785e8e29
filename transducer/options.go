package transducer

// Options configures the compatibility knobs the Transducer Core
// exposes, in the same plain-struct shape the teacher uses for breaker
// construction parameters, no builder, no file-backed config.
type Options struct {
	// NELCompatibility maps U+0085 to U+000A instead of U+0020 (Lossy input).
	NELCompatibility bool
	// LSPSCompatibility maps U+2028/U+2029 to U+000A instead of U+0020 (Lossy input).
	LSPSCompatibility bool
	// CRLFCompatibility maps U+000A to U+000D U+000A at the final output stage (strict output / writer).
	CRLFCompatibility bool
	// BOMCompatibility prepends U+FEFF (strict output / writer).
	BOMCompatibility bool
	// ColorEscapeSequences permits SGR sequences to pass through instead of being elided/rejected.
	ColorEscapeSequences bool
}
