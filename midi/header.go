package midi

// Format is the overall organization of the file. Only three values are
// valid on the wire.
type Format uint16

const (
	// FormatSingleTrack is a single multi-channel track.
	FormatSingleTrack Format = iota
	// FormatSimultaneous is one or more simultaneous tracks of a sequence.
	FormatSimultaneous
	// FormatSequential is one or more sequentially independent single-track
	// patterns.
	FormatSequential
)

// Division is the meaning of delta-times: metrical ticks per quarter note,
// or SMPTE time-code based ticks per frame.
type Division interface {
	raw() uint16
}

// MetricalDivision is ticks per quarter note (division bit 15 clear).
type MetricalDivision uint16

// SMPTEDivision is time-code based timing (division bit 15 set): a negative
// SMPTE frame rate in the high byte and ticks per frame in the low byte.
type SMPTEDivision struct {
	FrameRate     int8
	TicksPerFrame uint8
}

func (d MetricalDivision) raw() uint16 {
	return uint16(d) & 0x7FFF
}

func (d SMPTEDivision) raw() uint16 {
	return uint16(uint8(d.FrameRate)|0x80)<<8 | uint16(d.TicksPerFrame)
}

// DecodeDivision splits the raw division word from the header.
func DecodeDivision(value uint16) Division {
	if value&0x8000 == 0 {
		return MetricalDivision(value)
	}
	// The high byte is the two's complement negative frame rate.
	return SMPTEDivision{
		FrameRate:     int8(value >> 8),
		TicksPerFrame: uint8(value),
	}
}

// HeaderChunk is the decoded MThd payload.
type HeaderChunk struct {
	Format    Format
	NumTracks uint16
	Division  Division
}

// DecodeHeader parses the 6 byte MThd payload.
func DecodeHeader(data []byte) (HeaderChunk, error) {
	if len(data) != 6 {
		return HeaderChunk{}, ErrInvalidHeader
	}

	format := uint16(data[0])<<8 | uint16(data[1])
	if format > 2 {
		return HeaderChunk{}, ErrInvalidHeader
	}

	return HeaderChunk{
		Format:    Format(format),
		NumTracks: uint16(data[2])<<8 | uint16(data[3]),
		Division:  DecodeDivision(uint16(data[4])<<8 | uint16(data[5])),
	}, nil
}

// Encode serializes the header back to its 6 byte payload.
func (h HeaderChunk) Encode() []byte {
	division := h.Division.raw()
	return []byte{
		byte(h.Format >> 8), byte(h.Format),
		byte(h.NumTracks >> 8), byte(h.NumTracks),
		byte(division >> 8), byte(division),
	}
}
