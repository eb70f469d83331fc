package doboz

import (
	"encoding/binary"
	"math"
)

const maxInt = math.MaxInt

// Match is a single LZ77 back-reference: copy length bytes from offset bytes
// before the current output position. A zero Length means "no match".
type Match struct {
	Length int
	Offset int
}

// Info describes a compressed stream's container header.
type Info struct {
	UncompressedSize uint64
	CompressedSize   uint64
	Version          int
}

type header struct {
	uncompressedSize uint64
	compressedSize   uint64
	version          int
	isStored         bool
}

// MaxCompressedSize returns the maximum compressed size (including the
// container header) of any block of n bytes. Callers use it to size the
// destination buffer passed to Compress.
func MaxCompressedSize(n int) int {
	return headerSize(n) + n
}

func headerSize(maxCompressedSize int) int {
	return 1 + 2*sizeCodedSize(maxCompressedSize)
}

func sizeCodedSize(size int) int {
	switch {
	case size <= 0xff:
		return 1
	case size <= 0xffff:
		return 2
	case uint64(size) <= 0xffffffff:
		return 4
	default:
		return 8
	}
}

func encodeHeader(h header, maxCompressedSize int, destination []byte) {
	attributes := uint(h.version)

	scs := sizeCodedSize(maxCompressedSize)
	attributes |= uint(scs-1) << 3

	if h.isStored {
		attributes |= 0x80
	}

	destination[0] = byte(attributes)
	rest := destination[1:]

	switch scs {
	case 1:
		rest[0] = byte(h.uncompressedSize)
		rest[1] = byte(h.compressedSize)
	case 2:
		binary.LittleEndian.PutUint16(rest, uint16(h.uncompressedSize))
		binary.LittleEndian.PutUint16(rest[2:], uint16(h.compressedSize))
	case 4:
		binary.LittleEndian.PutUint32(rest, uint32(h.uncompressedSize))
		binary.LittleEndian.PutUint32(rest[4:], uint32(h.compressedSize))
	case 8:
		binary.LittleEndian.PutUint64(rest, h.uncompressedSize)
		binary.LittleEndian.PutUint64(rest[8:], h.compressedSize)
	}
}

// decodeHeader parses the container header at the start of source. It
// returns the parsed header and the number of bytes it occupies.
func decodeHeader(source []byte) (header, int, error) {
	var h header

	if len(source) < 1 {
		return h, 0, ErrBufferTooSmall
	}

	attributes := uint(source[0])
	rest := source[1:]

	h.version = int(attributes & 7)
	scs := int((attributes>>3)&7) + 1
	size := 1 + 2*scs

	// scs of 3, 5, 6 or 7 is itself invalid (only 1, 2, 4, 8 are real field
	// widths) and belongs in the switch's default case below; a short buffer
	// is reported first only because we can't even read the fields to check.
	if len(rest) < 2*scs {
		return h, size, ErrBufferTooSmall
	}

	h.isStored = attributes&0x80 != 0

	switch scs {
	case 1:
		h.uncompressedSize = uint64(rest[0])
		h.compressedSize = uint64(rest[1])
	case 2:
		h.uncompressedSize = uint64(binary.LittleEndian.Uint16(rest))
		h.compressedSize = uint64(binary.LittleEndian.Uint16(rest[2:]))
	case 4:
		h.uncompressedSize = uint64(binary.LittleEndian.Uint32(rest))
		h.compressedSize = uint64(binary.LittleEndian.Uint32(rest[4:]))
	case 8:
		h.uncompressedSize = binary.LittleEndian.Uint64(rest)
		h.compressedSize = binary.LittleEndian.Uint64(rest[8:])
	default:
		return h, size, ErrCorruptedData
	}

	return h, size, nil
}
