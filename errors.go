package doboz

import "errors"

// Sentinel errors returned by the core compress/decompress calls.
var (
	// ErrBufferTooSmall is returned when the source is too short to contain a
	// valid header, the destination is smaller than the declared uncompressed
	// size, or the compression output budget would be exceeded (the encoder
	// itself never surfaces this to callers: it pivots to a stored block
	// instead).
	ErrBufferTooSmall = errors.New("doboz: buffer too small")

	// ErrCorruptedData is returned when the decoder encounters a structurally
	// invalid stream: a bad sizeCodedSize attribute, a source shorter than the
	// declared compressed size (including simple truncation), a match offset
	// pointing before the start of the output, a match overrunning the output
	// tail, or a control-word read that would run past the declared
	// compressed size.
	ErrCorruptedData = errors.New("doboz: corrupted data")

	// ErrUnsupportedVersion is returned when the header's version field does
	// not equal the version this package implements.
	ErrUnsupportedVersion = errors.New("doboz: unsupported version")
)
