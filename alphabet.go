package ngramdist

// Alphabet identifies how input bytes are turned into codepoints before
// n-gram extraction. It is a closed set: every supported configuration is a
// combination of an Alphabet, a case mode and a gram length, fixed at Metric
// construction.
type Alphabet uint8

const (
	// ASCII treats every byte as one codepoint. The default gram length is 4.
	// With WithCaseInsensitive, bytes in 'A'..'Z' are lowercased; all other
	// bytes (including non-ASCII ones) pass through unchanged.
	ASCII Alphabet = iota

	// UTF8 decodes one UTF-8 sequence per codepoint, packing up to 4 source
	// bytes little-endian into a single 32-bit value. The default gram length
	// is 3. Truncated trailing sequences are read as their available bytes.
	//
	// With WithCaseInsensitive the fold is approximate: bit 5 of every
	// contributing source byte is cleared. That folds case for ASCII and most
	// Cyrillic letters but is not a correct general Unicode case fold; other
	// scripts are compared case-sensitively. This limited behavior is kept
	// intentionally for compatibility with existing scores.
	UTF8
)

// String returns the alphabet name.
func (a Alphabet) String() string {
	switch a {
	case ASCII:
		return "ascii"
	case UTF8:
		return "utf8"
	default:
		return "unknown"
	}
}

// defaultGramLength returns the gram length used when the caller does not
// override it: 4 byte-grams for ASCII, 3 codepoint-grams for UTF-8.
func (a Alphabet) defaultGramLength() int {
	if a == UTF8 {
		return 3
	}
	return 4
}
