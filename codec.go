package ngramdist

import "fmt"

// codec turns a byte range into a sliding window of codepoints and reduces
// gram-length windows to 16-bit bucket hashes. It is the only part of the
// scan that differs between alphabets; the profiling and comparison loops in
// profile.go and compare.go are shared.
//
// # Contract
//
// read fills cp with the next batch of codepoints:
//
//   - The first gramLength−1 slots are the trailing codepoints of the
//     previous batch, so no n-gram spanning a batch boundary is lost. On the
//     first call they are whatever the (zeroed) window holds; callers skip
//     them by starting at index gramLength−1.
//   - It returns how many slots, counted from index 0, hold valid
//     codepoints. Reads never go past len(data); missing bytes read as zero
//     and are excluded from the returned count.
//   - pos is the byte cursor into data and is advanced by the amount the
//     next call should resume from. The loop must keep calling while
//     *pos < len(data).
//
// hash maps cp[0:gramLength] to a bucket index. It is a pure function;
// collisions across distinct grams are expected and accepted.
type codec interface {
	read(cp []uint32, pos *int, data []byte) int
	hash(cp []uint32) uint16
}

// newCodec selects the codec variant for an alphabet, gram length and case
// mode. The set is closed: gram length 3 or 4 for ASCII, exactly 3 for UTF8
// (see WithGramLength).
func newCodec(alphabet Alphabet, n int, fold bool) (codec, error) {
	switch alphabet {
	case ASCII:
		if n != 3 && n != 4 {
			return nil, fmt.Errorf("%w: ascii gram length %d", ErrInvalidGramLength, n)
		}
		return asciiCodec{n: n, fold: fold}, nil
	case UTF8:
		if n != 3 {
			return nil, fmt.Errorf("%w: utf8 gram length %d", ErrInvalidGramLength, n)
		}
		return utf8Codec{fold: fold}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlphabet, uint8(alphabet))
}
