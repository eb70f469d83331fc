package doboz

import "github.com/sirupsen/logrus"

// Compressor drives the dictionary match finder and lazy-matching heuristic
// to turn a source buffer into a bit-packed doboz stream. NewCompressor
// borrows the dictionary arrays from a pool; the zero value allocates its
// own (unpooled) dictionary on first use. The package-level Compress serves
// one-shot calls.
//
// A Compressor is not safe for concurrent use; distinct Compressors may run
// on different goroutines in parallel.
type Compressor struct {
	dict   *dictionary
	pooled bool
}

// NewCompressor returns a Compressor whose dictionary arrays are borrowed
// from a package-wide pool. Call Release when done to return them.
func NewCompressor() *Compressor {
	return &Compressor{dict: acquireDictionary(), pooled: true}
}

// Release returns the Compressor's dictionary arrays to the pool. The
// Compressor must not be used again afterwards. Release is a no-op on a
// Compressor that did not acquire pooled storage (e.g. the zero value after
// a failed NewCompressor substitute) or one that was already released.
func (c *Compressor) Release() {
	if c.pooled {
		releaseDictionary(c.dict)
		c.dict = nil
		c.pooled = false
	}
}

// SetLogger attaches a logger that receives rebase and stored-fallback
// diagnostic events. A nil logger disables diagnostics (the default).
func (c *Compressor) SetLogger(log *logrus.Logger) {
	c.ensureDict()
	if log == nil {
		c.dict.logger = nil
		return
	}
	c.dict.logger = logrusAdapter{log: log}
}

func (c *Compressor) ensureDict() {
	if c.dict == nil {
		c.dict = newDictionary()
	}
}

// Compress compresses source into destination, which must be at least
// MaxCompressedSize(len(source)) bytes long. On success it returns the
// number of bytes written to destination (the full container, header
// included). Source must be non-empty.
func (c *Compressor) Compress(source []byte, destination []byte) (int, error) {
	if len(source) == 0 {
		return 0, ErrBufferTooSmall
	}

	maxCompressedSize := MaxCompressedSize(len(source))
	if len(destination) < maxCompressedSize {
		return 0, ErrBufferTooSmall
	}

	c.ensureDict()

	outBase := headerSize(maxCompressedSize)
	maxOutputEnd := maxCompressedSize
	outIter := outBase

	c.dict.setBuffer(source)

	const controlWordBitCount = wordSize*8 - 1
	const controlWordGuardBit uint32 = 1 << controlWordBitCount

	controlWord := controlWordGuardBit
	controlWordBit := 0

	controlWordPos := outIter
	outIter += wordSize

	var match Match
	var nextMatch Match // Length 0 == no match

	// The dictionary look-ahead is 1 character ahead of the literal the
	// encoder is about to emit; prime it before the main loop starts.
	c.dict.skip()

	var candidates [maxMatchCandidateCount]Match

	for c.dict.position()-1 < len(source) {
		// Each iteration may write up to 2 words, and the stream ends with
		// a trailing dummy: bail out to a stored block before overflowing.
		if outIter+2*wordSize+trailingDummySize > maxOutputEnd {
			if c.dict.logger != nil {
				c.dict.logger.debugStoredFallback(len(source), outIter+2*wordSize+trailingDummySize-maxOutputEnd)
			}
			return c.store(source, destination)
		}

		if controlWordBit == controlWordBitCount {
			fastWrite(destination, controlWordPos, controlWord, wordSize)

			controlWord = controlWordGuardBit
			controlWordBit = 0

			controlWordPos = outIter
			outIter += wordSize
		}

		match = nextMatch

		n := c.dict.findMatches(candidates[:])
		nextMatch = getBestMatch(candidates[:n])

		// Lazy matching: defer to the next position's match if doing so
		// yields a better length-per-encoded-byte ratio than taking this one.
		if match.Length > 0 && (1+nextMatch.Length)*encodedSize(match) > match.Length*(1+encodedSize(nextMatch)) {
			match.Length = 0
		}

		if match.Length == 0 {
			// The dictionary position is two characters ahead of the
			// literal we're about to emit.
			fastWrite(destination, outIter, uint32(source[c.dict.position()-2]), 1)
			outIter++
		} else {
			controlWord |= uint32(1) << uint(controlWordBit)

			outIter += encodeMatch(match, destination[outIter:])

			// Two look-ahead findMatches calls have already advanced past
			// the first two bytes of the match (the global prime plus the
			// call just made above); skip the rest so the dictionary lands
			// exactly on the byte after the match once more.
			for i := 0; i < match.Length-2; i++ {
				c.dict.skip()
			}

			n = c.dict.findMatches(candidates[:])
			nextMatch = getBestMatch(candidates[:n])
		}

		controlWordBit++
	}

	fastWrite(destination, controlWordPos, controlWord, wordSize)

	fastWrite(destination, outIter, 0, trailingDummySize)
	outIter += trailingDummySize

	compressedSize := outIter

	encodeHeader(header{
		version:          version,
		isStored:         false,
		uncompressedSize: uint64(len(source)),
		compressedSize:   uint64(compressedSize),
	}, maxCompressedSize, destination)

	return compressedSize, nil
}

func (c *Compressor) store(source, destination []byte) (int, error) {
	maxCompressedSize := MaxCompressedSize(len(source))
	hSize := headerSize(maxCompressedSize)
	compressedSize := hSize + len(source)

	encodeHeader(header{
		version:          version,
		isStored:         true,
		uncompressedSize: uint64(len(source)),
		compressedSize:   uint64(compressedSize),
	}, maxCompressedSize, destination)

	copy(destination[hSize:], source)

	return compressedSize, nil
}

// getBestMatch scans candidates (ordered shortest to longest) from the
// longest end and returns the first one whose coded length is actually
// shorter than its match length.
func getBestMatch(candidates []Match) Match {
	for i := len(candidates) - 1; i >= 0; i-- {
		if candidates[i].Length > encodedSize(candidates[i]) {
			return candidates[i]
		}
	}
	return Match{}
}

// encodeMatch writes match's variable-length encoding to destination (which
// may be nil to just compute the size) and returns its size in bytes.
func encodeMatch(match Match, destination []byte) int {
	var word uint32
	var size int

	lengthCode := uint32(match.Length - minMatchLength)
	offsetCode := uint32(match.Offset)

	switch {
	case lengthCode == 0 && offsetCode < 64:
		word = offsetCode<<2 | 0 // 00
		size = 1
	case lengthCode == 0 && offsetCode < 16384:
		word = offsetCode<<2 | 1 // 01
		size = 2
	case lengthCode < 16 && offsetCode < 1024:
		word = offsetCode<<6 | lengthCode<<2 | 2 // 10
		size = 2
	case lengthCode < 32 && offsetCode < 65536:
		word = offsetCode<<8 | lengthCode<<3 | 3 // 011
		size = 3
	default:
		word = offsetCode<<11 | lengthCode<<3 | 7 // 111
		size = 4
	}

	if destination != nil {
		fastWrite(destination, 0, word, size)
	}

	return size
}

func encodedSize(match Match) int {
	return encodeMatch(match, nil)
}

// Compress is a one-shot convenience wrapper around Compressor.Compress that
// borrows a pooled dictionary for the duration of the call.
func Compress(source, destination []byte) (int, error) {
	c := NewCompressor()
	defer c.Release()
	return c.Compress(source, destination)
}
