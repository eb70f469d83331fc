package doboz

import "encoding/binary"

const (
	version = 0 // wire format version this package implements

	wordSize = 4 // bytes in a control word / encoded match word

	minMatchLength         = 3
	maxMatchLength         = 255 + minMatchLength
	maxMatchCandidateCount = 128
	dictionarySize         = 1 << 21 // 2 MiB, must be a power of 2

	tailLength        = 2 * wordSize // keeps fast writes inside the output buffer during decode
	trailingDummySize = wordSize     // zero bytes appended after the last control word
)

// fastRead returns the n bytes at source[offset:] as a little-endian word.
// It may read up to 4 bytes regardless of n; callers must guarantee at least
// 4 readable bytes at source[offset:].
func fastRead(source []byte, offset int, n int) uint32 {
	switch n {
	case 1:
		return uint32(source[offset])
	case 2:
		return uint32(binary.LittleEndian.Uint16(source[offset:]))
	default: // 3 or 4: both read a full word
		return binary.LittleEndian.Uint32(source[offset:])
	}
}

// fastWrite stores the low 8n bits of w at destination[offset:], little-endian.
// It may write up to 4 bytes regardless of n; callers must guarantee at least
// 4 writable bytes at destination[offset:].
func fastWrite(destination []byte, offset int, w uint32, n int) {
	switch n {
	case 1:
		destination[offset] = byte(w)
	case 2:
		binary.LittleEndian.PutUint16(destination[offset:], uint16(w))
	default: // 3 or 4: both write a full word
		binary.LittleEndian.PutUint32(destination[offset:], w)
	}
}

// hashTriple computes the FNV-1a hash of the 3 bytes at data[pos:pos+3].
func hashTriple(data []byte, pos int) uint32 {
	const prime uint32 = 16777619
	var h uint32 = 2166136261

	h = (h ^ uint32(data[pos+0])) * prime
	h = (h ^ uint32(data[pos+1])) * prime
	h = (h ^ uint32(data[pos+2])) * prime

	return h
}
