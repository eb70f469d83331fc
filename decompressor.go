package doboz

// matchLUT describes how to pull offset/length out of a decoded match word
// for one of the 8 possible low-3-bit tag values. Entries for tags 100/101/110
// mirror 000/001/010 so the decoder can always index on 3 bits even though
// the encoder only ever writes a stray high bit for those three short forms.
type matchLUT struct {
	mask        uint32
	offsetShift uint
	lengthMask  uint32
	lengthShift uint
	size        int
}

var literalRunLengthTable = [16]int{4, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0}

var matchTable = [8]matchLUT{
	{mask: 0xff, offsetShift: 2, lengthMask: 0, lengthShift: 0, size: 1},          // (0)00
	{mask: 0xffff, offsetShift: 2, lengthMask: 0, lengthShift: 0, size: 2},        // (0)01
	{mask: 0xffff, offsetShift: 6, lengthMask: 15, lengthShift: 2, size: 2},       // (0)10
	{mask: 0xffffff, offsetShift: 8, lengthMask: 31, lengthShift: 3, size: 3},     // (0)11
	{mask: 0xff, offsetShift: 2, lengthMask: 0, lengthShift: 0, size: 1},          // (1)00 = (0)00
	{mask: 0xffff, offsetShift: 2, lengthMask: 0, lengthShift: 0, size: 2},        // (1)01 = (0)01
	{mask: 0xffff, offsetShift: 6, lengthMask: 15, lengthShift: 2, size: 2},       // (1)10 = (0)10
	{mask: 0xffffffff, offsetShift: 11, lengthMask: 255, lengthShift: 3, size: 4}, // 111
}

// Decompressor decodes a doboz container produced by Compressor.Compress.
// The zero value is ready to use; Decompressor holds no state between calls.
type Decompressor struct{}

// Decompress decompresses source into destination, which must be at least as
// large as the declared uncompressed size.
func (d *Decompressor) Decompress(source []byte, destination []byte) error {
	h, headerLen, err := decodeHeader(source)
	if err != nil {
		return err
	}

	if h.version != version {
		return ErrUnsupportedVersion
	}

	if uint64(len(destination)) < h.uncompressedSize {
		return ErrBufferTooSmall
	}

	uncompressedSize := int(h.uncompressedSize)

	if h.isStored {
		if len(source) < headerLen+uncompressedSize {
			return ErrCorruptedData
		}
		copy(destination[:uncompressedSize], source[headerLen:headerLen+uncompressedSize])
		return nil
	}

	// A compressedSize claiming more than source actually holds is exactly a
	// truncated/corrupted stream; cap inEnd at len(source) so the control-word
	// loop's own bounds checks catch it as CorruptedData instead of this
	// function over-reading or returning a different error for the same
	// defect as a genuinely short compressedSize field.
	inIter := headerLen
	inEnd := min(int(h.compressedSize), len(source))

	outIter := 0
	outEnd := uncompressedSize

	outTail := 0
	if uncompressedSize > tailLength {
		outTail = outEnd - tailLength
	}

	controlWord := uint32(1)

	for {
		if inIter+2*wordSize > inEnd {
			return ErrCorruptedData
		}

		if controlWord == 1 {
			controlWord = fastRead(source, inIter, wordSize)
			inIter += wordSize
		}

		if controlWord&1 == 0 {
			// Literal path.
			if outIter < outTail {
				fastWrite(destination, outIter, fastRead(source, inIter, wordSize), wordSize)

				runLength := literalRunLengthTable[controlWord&0xf]
				inIter += runLength
				outIter += runLength
				controlWord >>= uint(runLength)
			} else {
				for outIter < outEnd {
					if inIter+wordSize+1 > inEnd {
						return ErrCorruptedData
					}

					if controlWord == 1 {
						controlWord = fastRead(source, inIter, wordSize)
						inIter += wordSize
					}

					destination[outIter] = source[inIter]
					outIter++
					inIter++

					controlWord >>= 1
				}

				return nil
			}
		} else {
			// Match path.
			match, matchSize := decodeMatch(source[inIter:])
			inIter += matchSize

			matchSrc := outIter - match.Offset

			if matchSrc < 0 || outIter+match.Length > outTail {
				return ErrCorruptedData
			}

			i := 0

			if match.Offset < wordSize {
				// Force the source/destination gap to at least wordSize
				// bytes so the wide copy below never overlaps.
				for i < 3 {
					fastWrite(destination, outIter+i, fastRead(destination, matchSrc+i, 1), 1)
					i++
				}

				matchSrc -= 2 + (match.Offset & 1)
			}

			for i < match.Length {
				fastWrite(destination, outIter+i, fastRead(destination, matchSrc+i, wordSize), wordSize)
				i += wordSize
			}

			outIter += match.Length

			controlWord >>= 1
		}
	}
}

// decodeMatch decodes one match at the start of source and returns it
// alongside the number of bytes it occupied.
func decodeMatch(source []byte) (Match, int) {
	word := fastRead(source, 0, wordSize)

	lut := matchTable[word&7]

	var m Match
	m.Offset = int((word & lut.mask) >> lut.offsetShift)
	m.Length = int((word>>lut.lengthShift)&lut.lengthMask) + minMatchLength

	return m, lut.size
}

// Decompress is a one-shot convenience wrapper around Decompressor.Decompress.
func Decompress(source, destination []byte) error {
	var d Decompressor
	return d.Decompress(source, destination)
}

// CompressionInfo parses a doboz container's header without decompressing
// its payload.
func CompressionInfo(source []byte) (Info, error) {
	h, _, err := decodeHeader(source)
	if err != nil {
		return Info{}, err
	}

	return Info{
		UncompressedSize: h.uncompressedSize,
		CompressedSize:   h.compressedSize,
		Version:          h.version,
	}, nil
}
