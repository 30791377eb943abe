package midi

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawChunkDecode(t *testing.T) {
	data := []byte{'t', 'e', 's', 't', 0x00, 0x00, 0x00, 0x0A,
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	var c Chunk
	require.NoError(t, c.decode(bufio.NewReader(bytes.NewReader(data))))

	require.Equal(t, NewFourByteStr("test"), c.Header.ChunkType)
	require.Equal(t, 10, c.Len())
	require.False(t, c.IsEmpty())
	require.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, c.Data)

	outputBuffer := &bytes.Buffer{}
	require.NoError(t, c.Encode(outputBuffer))
	require.Equal(t, data, outputBuffer.Bytes())
}

func TestRawChunkEmpty(t *testing.T) {
	data := []byte{'M', 'T', 'r', 'k', 0x00, 0x00, 0x00, 0x00}

	var c Chunk
	require.NoError(t, c.decode(bufio.NewReader(bytes.NewReader(data))))
	require.True(t, c.IsEmpty())
	require.Equal(t, 0, c.Len())
}

func TestRawChunkTruncated(t *testing.T) {
	data := []byte{'M', 'T', 'r', 'k', 0x00, 0x00, 0x00, 0x08, 0x01}

	var c Chunk
	require.ErrorIs(t, c.decode(bufio.NewReader(bytes.NewReader(data))), ErrOutOfSpace)
}
