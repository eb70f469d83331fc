package doboz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractCompressRejectsUndersizedDestination(t *testing.T) {
	_, err := Compress([]byte("some input"), make([]byte, 1))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestContractCompressRejectsEmptySource(t *testing.T) {
	_, err := Compress(nil, make([]byte, 16))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestContractDecompressRejectsUndersizedDestination(t *testing.T) {
	src := bytes.Repeat([]byte("contract"), 32)
	dst := make([]byte, MaxCompressedSize(len(src)))
	n, err := Compress(src, dst)
	require.NoError(t, err)

	err = Decompress(dst[:n], make([]byte, len(src)-1))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestContractDecompressRejectsUnsupportedVersion(t *testing.T) {
	src := []byte("versioned")
	dst := make([]byte, MaxCompressedSize(len(src)))
	n, err := Compress(src, dst)
	require.NoError(t, err)

	compressed := dst[:n]
	compressed[0] |= 0x01

	err = Decompress(compressed, make([]byte, len(src)))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestContractDecompressRejectsCorruptedStream(t *testing.T) {
	src := bytes.Repeat([]byte("corrupt-me"), 128)
	dst := make([]byte, MaxCompressedSize(len(src)))
	n, err := Compress(src, dst)
	require.NoError(t, err)

	compressed := dst[:n]
	require.Greater(t, len(compressed), 8)

	err = Decompress(compressed[:len(compressed)-1], make([]byte, len(src)))
	assert.ErrorIs(t, err, ErrCorruptedData)
}

func TestContractCompressionInfoMatchesCompressedStream(t *testing.T) {
	src := bytes.Repeat([]byte("info"), 64)
	dst := make([]byte, MaxCompressedSize(len(src)))
	n, err := Compress(src, dst)
	require.NoError(t, err)

	info, err := CompressionInfo(dst[:n])
	require.NoError(t, err)
	assert.EqualValues(t, len(src), info.UncompressedSize)
	assert.EqualValues(t, n, info.CompressedSize)
	assert.Equal(t, version, info.Version)
}

func TestContractRoundTripPreservesContent(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog")
	dst := make([]byte, MaxCompressedSize(len(src)))
	n, err := Compress(src, dst)
	require.NoError(t, err)

	out := make([]byte, len(src))
	require.NoError(t, Decompress(dst[:n], out))
	assert.Equal(t, src, out)
}
