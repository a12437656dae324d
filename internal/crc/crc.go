// Package crc exposes the raw CRC32-C (Castagnoli) accumulate primitive used
// for n-gram bucket hashing.
//
// "Raw" means the semantics of the dedicated CPU instruction (x86 crc32q,
// ARM crc32cx): the accumulator is neither pre- nor post-inverted. The
// standard library's hash/crc32 applies both inversions, so this package
// undoes them; hash/crc32 in turn uses the hardware instruction when the CPU
// has one, so the arithmetic is accelerated on every path.
package crc

import (
	"encoding/binary"
	"hash/crc32"

	"golang.org/x/sys/cpu"
)

// Hardware reports whether the CPU exposes a CRC32-C instruction. Callers
// use it to pick between hash formulas, not between software and hardware
// arithmetic (hash/crc32 handles that internally).
var Hardware = cpu.X86.HasSSE42 || cpu.ARM64.HasCRC32

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Accumulate64 folds the eight little-endian bytes of v into acc with raw
// CRC32-C semantics, equivalent to the crc32q instruction.
func Accumulate64(acc uint32, v uint64) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return ^crc32.Update(^acc, castagnoli, b[:])
}

// Mix64 is Accumulate64 with an all-ones accumulator: a cheap integer mixing
// hash with good low-bit dispersion.
func Mix64(v uint64) uint32 {
	return Accumulate64(^uint32(0), v)
}
