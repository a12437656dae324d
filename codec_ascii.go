package ngramdist

import "github.com/fuzzdex/ngramdist/internal/crc"

// asciiCodec reads raw bytes as codepoints and hashes n of them packed into
// a 32-bit word.
type asciiCodec struct {
	n    int
	fold bool
}

// read slides the window forward by readBatch−n+1 bytes.
//
// Window layout for n == 4 (other gram lengths shift the boundary):
//
//	| 0  1  2 | 3  4  5  6  7  8  9 10 11 12 13 14 15 | 16 17 18 |
//	| context |        consumed this batch            |  reread  |
//
// The last n−1 slots of the consumed region are copied down to the front
// first, then readBatch fresh bytes are pulled in after them. The cursor
// only advances readBatch−n+1, so the final n−1 fresh bytes are read again
// next batch; they exist to complete the grams ending at the batch boundary.
func (c asciiCodec) read(cp []uint32, pos *int, data []byte) int {
	shift := readBatch - c.n + 1
	copy(cp[:c.n-1], cp[shift:shift+c.n-1])

	base := *pos
	for j := 0; j < readBatch; j++ {
		var b byte
		if base+j < len(data) {
			b = data[base+j]
		}
		if c.fold {
			b = lowerASCII(b)
		}
		cp[c.n-1+j] = uint32(b)
	}

	*pos += shift
	if *pos > len(data) {
		return readBatch - (*pos - len(data))
	}
	return readBatch
}

// hash packs the window bytes little-endian into a 32-bit word and mixes it
// through CRC32-C, keeping the low 16 bits as the bucket index.
func (c asciiCodec) hash(cp []uint32) uint16 {
	v := cp[0] | cp[1]<<8 | cp[2]<<16
	if c.n == 4 {
		v |= cp[3] << 24
	}
	return uint16(crc.Mix64(uint64(v)))
}

// lowerASCII lowercases 'A'..'Z' and leaves every other byte unchanged.
func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 0x20
	}
	return b
}
