package midi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivisionMetrical(t *testing.T) {
	division := DecodeDivision(0x000A)
	require.Equal(t, MetricalDivision(10), division)

	division = DecodeDivision(0x0180)
	require.Equal(t, MetricalDivision(384), division)
}

func TestDivisionTimeCode(t *testing.T) {
	// -24 fps, 255 ticks per frame
	division := DecodeDivision(0xE8FF)
	require.Equal(t, SMPTEDivision{FrameRate: -24, TicksPerFrame: 255}, division)

	// -25 fps
	division = DecodeDivision(0xE732)
	require.Equal(t, SMPTEDivision{FrameRate: -25, TicksPerFrame: 50}, division)

	division = DecodeDivision(0xFFE8)
	require.Equal(t, SMPTEDivision{FrameRate: -1, TicksPerFrame: 232}, division)

	division = DecodeDivision(0x8BFF)
	require.Equal(t, SMPTEDivision{FrameRate: -117, TicksPerFrame: 255}, division)
}

func TestDivisionRoundTrip(t *testing.T) {
	for _, raw := range []uint16{0x000A, 0x0180, 0x7FFF, 0xE8FF, 0xE732, 0xFFE8, 0x8BFF} {
		require.Equal(t, raw, DecodeDivision(raw).raw(), "division word 0x%04X", raw)
	}
}

func TestHeaderDecode(t *testing.T) {
	data := []byte{0x00, 0x01, 0x00, 0x0A, 0x01, 0x80}
	header, err := DecodeHeader(data)
	require.NoError(t, err)

	expected := HeaderChunk{
		Format:    FormatSimultaneous,
		NumTracks: 10,
		Division:  MetricalDivision(384),
	}
	require.Equal(t, expected, header)
	require.Equal(t, data, header.Encode())
}

func TestHeaderInvalidFormat(t *testing.T) {
	_, err := DecodeHeader([]byte{0x00, 0x03, 0x00, 0x01, 0x00, 0x60})
	require.ErrorIs(t, err, ErrInvalidHeader)
}

func TestHeaderWrongSize(t *testing.T) {
	_, err := DecodeHeader([]byte{0x00, 0x01, 0x00})
	require.ErrorIs(t, err, ErrInvalidHeader)

	_, err = DecodeHeader([]byte{0x00, 0x01, 0x00, 0x01, 0x00, 0x60, 0x00})
	require.ErrorIs(t, err, ErrInvalidHeader)
}
