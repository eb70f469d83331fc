package doboz

import "testing"

func TestSizeCodedSize(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{0, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 4},
		{0xFFFFFFFF, 4},
	}
	for _, c := range cases {
		if got := sizeCodedSize(c.size); got != c.want {
			t.Errorf("sizeCodedSize(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	cases := []header{
		{version: 0, isStored: true, uncompressedSize: 1, compressedSize: 3},
		{version: 0, isStored: false, uncompressedSize: 256, compressedSize: 261},
		{version: 0, isStored: false, uncompressedSize: 70000, compressedSize: 70010},
	}

	for _, h := range cases {
		maxCompressedSize := headerSize(maxInt) + int(h.uncompressedSize)
		buf := make([]byte, headerSize(maxCompressedSize))
		encodeHeader(h, maxCompressedSize, buf)

		got, n, err := decodeHeader(buf)
		if err != nil {
			t.Fatalf("decodeHeader failed: %v", err)
		}
		if n != len(buf) {
			t.Fatalf("decoded header length %d, want %d", n, len(buf))
		}
		if got.isStored != h.isStored || got.uncompressedSize != h.uncompressedSize || got.compressedSize != h.compressedSize {
			t.Fatalf("round-trip mismatch: got %+v, want %+v", got, h)
		}
	}
}

func TestDecodeHeaderInvalidSizeCodedSize(t *testing.T) {
	// attribute byte with bits 3-5 == 2 -> sizeCodedSize field decodes to 3, invalid
	buf := []byte{0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, _, err := decodeHeader(buf)
	if err != ErrCorruptedData {
		t.Fatalf("expected ErrCorruptedData, got %v", err)
	}
}

func TestDecodeHeaderBufferTooSmall(t *testing.T) {
	if _, _, err := decodeHeader(nil); err != ErrBufferTooSmall {
		t.Fatalf("expected ErrBufferTooSmall for empty source, got %v", err)
	}

	// attribute claims width 2 (sizeCodedSize=2) but only 2 bytes follow
	buf := []byte{0x08, 0, 0}
	if _, _, err := decodeHeader(buf); err != ErrBufferTooSmall {
		t.Fatalf("expected ErrBufferTooSmall for truncated header, got %v", err)
	}
}

func TestMaxCompressedSize(t *testing.T) {
	for _, n := range []int{0, 1, 255, 256, 70000} {
		got := MaxCompressedSize(n)
		if got < n {
			t.Fatalf("MaxCompressedSize(%d) = %d, smaller than input", n, got)
		}
	}
}
