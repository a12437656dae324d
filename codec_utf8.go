package ngramdist

import (
	"math/bits"

	"github.com/fuzzdex/ngramdist/internal/crc"
)

// utf8Codec decodes one UTF-8 sequence per codepoint and hashes windows of
// three codepoints. Gram length is fixed at 3.
type utf8Codec struct {
	fold bool
}

const utf8GramLength = 3

// read carries the last two codepoints of the previous batch to the front,
// then decodes sequences one at a time until the batch region is full or the
// input is exhausted. Unlike the ASCII reader the cursor advances by the
// exact bytes decoded, so nothing is reread.
func (c utf8Codec) read(cp []uint32, pos *int, data []byte) int {
	copy(cp[:utf8GramLength-1], cp[readBatch-utf8GramLength+1:readBatch])

	num := utf8GramLength - 1
	for num < readBatch && *pos < len(data) {
		length := sequenceLength(data[*pos])
		if *pos+length > len(data) {
			length = len(data) - *pos
		}

		// At most four bytes contribute to the codepoint value; an invalid
		// leading byte claiming a longer sequence still advances the cursor
		// by its claimed length.
		nb := min(length, 4)
		var r uint32
		for k := 0; k < nb; k++ {
			r |= uint32(data[*pos+k]) << (8 * k)
		}

		// Approximate case fold: clear bit 5 of each contributing byte.
		// Folds ASCII and most Cyrillic letters; not a true Unicode fold.
		if c.fold {
			switch length {
			case 4:
				r &^= 1<<29 | 1<<21 | 1<<13 | 1<<5
			case 3:
				r &^= 1<<21 | 1<<13 | 1<<5
			case 2:
				r &^= 1<<13 | 1<<5
			default:
				r &^= 1 << 5
			}
		}

		*pos += length
		cp[num] = r
		num++
	}
	return num
}

// hardwareCRC selects the combined-accumulate hash formula on CPUs with a
// CRC32 instruction; others combine two independent mixes. The two formulas
// produce different (equally valid) bucketings, matching the original
// SSE4.2 / portable split.
var hardwareCRC = crc.Hardware

func (c utf8Codec) hash(cp []uint32) uint16 {
	combined := uint64(cp[0])<<32 | uint64(cp[1])
	if hardwareCRC {
		return uint16(crc.Accumulate64(cp[2], combined))
	}
	return uint16(crc.Mix64(combined) ^ crc.Mix64(uint64(cp[2])))
}

// sequenceLength returns the byte length claimed by a UTF-8 leading byte:
// 1 for ASCII and continuation bytes (continuation bytes at the start of a
// sequence resync one byte at a time), otherwise the count of leading one
// bits. Invalid leading bytes can claim up to 8; the reader clips at the end
// of input and packs at most four bytes.
func sequenceLength(b byte) int {
	if b < 0x80 {
		return 1
	}
	return bits.LeadingZeros8(^b)
}
