package midi

import "unicode/utf8"

// Meta event tags. Wire shape is 0xFF, tag, VLQ length, payload.
const (
	tagSequenceNumber    uint8 = 0x00
	tagText              uint8 = 0x01
	tagCopyright         uint8 = 0x02
	tagTrackName         uint8 = 0x03
	tagInstrumentName    uint8 = 0x04
	tagLyric             uint8 = 0x05
	tagMarker            uint8 = 0x06
	tagCuePoint          uint8 = 0x07
	tagMidiChannelPrefix uint8 = 0x20
	tagEndOfTrack        uint8 = 0x2F
	tagTempo             uint8 = 0x51
	tagSmpteOffset       uint8 = 0x54
	tagTimeSignature     uint8 = 0x58
	tagKeySignature      uint8 = 0x59
	tagSequencerSpecific uint8 = 0x7F
)

// SequenceNumber is meta tag 0x00.
type SequenceNumber uint16

// Text is meta tag 0x01.
type Text string

// Copyright is meta tag 0x02.
type Copyright string

// TrackName is meta tag 0x03.
type TrackName string

// InstrumentName is meta tag 0x04.
type InstrumentName string

// Lyric is meta tag 0x05.
type Lyric string

// Marker is meta tag 0x06.
type Marker string

// CuePoint is meta tag 0x07, kept as raw bytes.
type CuePoint []byte

// MidiChannelPrefix is meta tag 0x20.
type MidiChannelPrefix uint8

// EndOfTrack is meta tag 0x2F, carrying no payload.
type EndOfTrack struct{}

// Tempo is meta tag 0x51: microseconds per quarter note, 24 bit big-endian.
type Tempo uint32

// SmpteOffset is meta tag 0x54.
type SmpteOffset struct {
	Hours     uint8
	Minutes   uint8
	Seconds   uint8
	Frames    uint8
	Subframes uint8
}

// TimeSignature is meta tag 0x58. The denominator is stored on the wire as a
// power-of-two exponent and expanded here.
type TimeSignature struct {
	Numerator               uint8
	Denominator             uint32
	ClocksPerTick           uint8
	ThirtySecondsPerQuarter uint8
}

// KeySignature is meta tag 0x59. SharpsFlats is negative for flats.
type KeySignature struct {
	SharpsFlats int8
	Minor       bool
}

// SequencerSpecific is meta tag 0x7F, kept as raw bytes.
type SequencerSpecific []byte

// UnknownMeta holds any unrecognized tag and its raw payload so that
// re-encoding reproduces the original bytes.
type UnknownMeta struct {
	Tag  uint8
	Data []byte
}

func decodeMetaEvent(c *Cursor) (Event, error) {
	prefix, ok := c.TakeOne()
	if !ok {
		return nil, ErrOutOfSpace
	}
	if prefix != 0xFF {
		return nil, ErrInvalidMetaData
	}

	tag, ok := c.TakeOne()
	if !ok {
		return nil, ErrOutOfSpace
	}

	length, err := DecodeVLQ(c)
	if err != nil {
		return nil, ErrOutOfSpace
	}

	// Take up to length bytes; fixed-length tags reject a shortfall below.
	data := c.TakeN(int(length))

	switch tag {
	case tagSequenceNumber:
		if len(data) != 2 {
			return nil, ErrInvalidMetaData
		}
		return SequenceNumber(uint16(data[0])<<8 | uint16(data[1])), nil

	case tagText, tagCopyright, tagTrackName, tagInstrumentName, tagLyric, tagMarker:
		s, err := metaString(data)
		if err != nil {
			return nil, err
		}
		switch tag {
		case tagText:
			return Text(s), nil
		case tagCopyright:
			return Copyright(s), nil
		case tagTrackName:
			return TrackName(s), nil
		case tagInstrumentName:
			return InstrumentName(s), nil
		case tagLyric:
			return Lyric(s), nil
		default:
			return Marker(s), nil
		}

	case tagCuePoint:
		return CuePoint(data), nil

	case tagMidiChannelPrefix:
		if len(data) != 1 {
			return nil, ErrInvalidMetaData
		}
		return MidiChannelPrefix(data[0]), nil

	case tagEndOfTrack:
		return EndOfTrack{}, nil

	case tagTempo:
		if len(data) != 3 {
			return nil, ErrInvalidMetaData
		}
		return Tempo(uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])), nil

	case tagSmpteOffset:
		if len(data) != 5 {
			return nil, ErrInvalidMetaData
		}
		return SmpteOffset{
			Hours:     data[0],
			Minutes:   data[1],
			Seconds:   data[2],
			Frames:    data[3],
			Subframes: data[4],
		}, nil

	case tagTimeSignature:
		if len(data) != 4 {
			return nil, ErrInvalidMetaData
		}
		return TimeSignature{
			Numerator:               data[0],
			Denominator:             1 << data[1],
			ClocksPerTick:           data[2],
			ThirtySecondsPerQuarter: data[3],
		}, nil

	case tagKeySignature:
		if len(data) != 2 {
			return nil, ErrInvalidMetaData
		}
		return KeySignature{
			SharpsFlats: int8(data[0]),
			Minor:       data[1] != 0,
		}, nil

	case tagSequencerSpecific:
		return SequencerSpecific(data), nil

	default:
		return UnknownMeta{Tag: tag, Data: data}, nil
	}
}

func metaString(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidText
	}
	return string(data), nil
}

func encodeMeta(tag uint8, payload []byte) []byte {
	bytes := []byte{0xFF, tag}
	bytes = append(bytes, EncodeVLQ(uint32(len(payload)))...)
	return append(bytes, payload...)
}

func (e SequenceNumber) encode() []byte {
	return encodeMeta(tagSequenceNumber, []byte{byte(e >> 8), byte(e)})
}

func (e Text) encode() []byte           { return encodeMeta(tagText, []byte(e)) }
func (e Copyright) encode() []byte      { return encodeMeta(tagCopyright, []byte(e)) }
func (e TrackName) encode() []byte      { return encodeMeta(tagTrackName, []byte(e)) }
func (e InstrumentName) encode() []byte { return encodeMeta(tagInstrumentName, []byte(e)) }
func (e Lyric) encode() []byte          { return encodeMeta(tagLyric, []byte(e)) }
func (e Marker) encode() []byte         { return encodeMeta(tagMarker, []byte(e)) }
func (e CuePoint) encode() []byte       { return encodeMeta(tagCuePoint, e) }

func (e MidiChannelPrefix) encode() []byte {
	return encodeMeta(tagMidiChannelPrefix, []byte{byte(e)})
}

func (EndOfTrack) encode() []byte {
	return encodeMeta(tagEndOfTrack, nil)
}

func (e Tempo) encode() []byte {
	return encodeMeta(tagTempo, []byte{byte(e >> 16), byte(e >> 8), byte(e)})
}

func (e SmpteOffset) encode() []byte {
	return encodeMeta(tagSmpteOffset, []byte{e.Hours, e.Minutes, e.Seconds, e.Frames, e.Subframes})
}

func (e TimeSignature) encode() []byte {
	// Collapse the expanded denominator back to its wire exponent.
	var exponent uint8
	for d := e.Denominator; d > 1; d >>= 1 {
		exponent++
	}
	return encodeMeta(tagTimeSignature, []byte{
		e.Numerator, exponent, e.ClocksPerTick, e.ThirtySecondsPerQuarter,
	})
}

func (e KeySignature) encode() []byte {
	minor := byte(0)
	if e.Minor {
		minor = 1
	}
	return encodeMeta(tagKeySignature, []byte{byte(e.SharpsFlats), minor})
}

func (e SequencerSpecific) encode() []byte {
	return encodeMeta(tagSequencerSpecific, e)
}

func (e UnknownMeta) encode() []byte {
	return encodeMeta(e.Tag, e.Data)
}
