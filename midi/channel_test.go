package midi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoteOffStatusParsing(t *testing.T) {
	event, err := decodeChannelEvent(NewCursor([]byte{0x8F, 0x55, 0xFF}))
	require.NoError(t, err)
	require.Equal(t, NoteOff{Channel: 15, Key: 0x55, Velocity: 0xFF}, event)
}

func TestChannelEventRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		event Event
		bytes []byte
	}{
		{"note off", NoteOff{Channel: 15, Key: 0x55, Velocity: 0xFF}, []byte{0x8F, 0x55, 0xFF}},
		{"note on", NoteOn{Channel: 0, Key: 0x4C, Velocity: 0x20}, []byte{0x90, 0x4C, 0x20}},
		{"polyphonic key pressure", PolyphonicKeyPressure{Channel: 2, Key: 0x30, Pressure: 0x40}, []byte{0xA2, 0x30, 0x40}},
		{"control change", ControlChange{Channel: 1, Controller: 0x07, Value: 0x64}, []byte{0xB1, 0x07, 0x64}},
		{"program change", ProgramChange{Channel: 0, Program: 0x05}, []byte{0xC0, 0x05}},
		{"channel pressure", ChannelPressure{Channel: 9, Pressure: 0x22}, []byte{0xD9, 0x22}},
		{"pitch wheel", PitchWheelChange{Channel: 3, Value: 0x2000}, []byte{0xE3, 0x00, 0x40}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := decodeChannelEvent(NewCursor(tc.bytes))
			require.NoError(t, err)
			require.Equal(t, tc.event, event)
			require.Equal(t, tc.bytes, event.encode())
		})
	}
}

func TestPitchWheelFourteenBitValue(t *testing.T) {
	// Low 7 bits from the first data byte, high 7 bits from the second.
	event, err := decodeChannelEvent(NewCursor([]byte{0xE0, 0x7F, 0x7F}))
	require.NoError(t, err)
	require.Equal(t, PitchWheelChange{Channel: 0, Value: 0x3FFF}, event)
}

func TestChannelEventTruncated(t *testing.T) {
	_, err := decodeChannelEvent(NewCursor([]byte{0x90, 0x4C}))
	require.ErrorIs(t, err, ErrOutOfSpace)

	_, err = decodeChannelEvent(NewCursor([]byte{0xC0}))
	require.ErrorIs(t, err, ErrOutOfSpace)
}

func TestChannelEventUnsupportedStatus(t *testing.T) {
	// 0xF0 nibble is not a channel voice message.
	_, err := decodeChannelEvent(NewCursor([]byte{0xF0, 0x00, 0x00}))
	require.ErrorIs(t, err, ErrUnsupportedStatus)
}
