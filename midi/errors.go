package midi

import "errors"

// Decode errors. Track decoding is all-or-nothing; any of these aborts the
// track and is reported to the caller, matchable with errors.Is.
var (
	// ErrOutOfSpace means the input ended in the middle of an event or a
	// variable-length quantity. Distinct from the clean end of a track,
	// which is running out of bytes exactly at a delta-time boundary.
	ErrOutOfSpace = errors.New("reached end of chunk before done parsing")

	// ErrUnsupportedStatus means a channel status byte carried an upper
	// nibble outside 0x8..0xE.
	ErrUnsupportedStatus = errors.New("unsupported status code for midi channel event")

	// ErrInvalidFormat means the byte at an event boundary was not a valid
	// event prefix. Running status is not supported, so a data byte here is
	// an error rather than a reuse of the previous status.
	ErrInvalidFormat = errors.New("invalid track event format")

	// ErrInvalidMetaData means a fixed-length meta tag had a payload of the
	// wrong size.
	ErrInvalidMetaData = errors.New("meta event data is in an invalid format")

	// ErrInvalidText means a text-family meta payload was not valid UTF-8.
	ErrInvalidText = errors.New("meta event text is not valid utf-8")

	// ErrInvalidSysexStart means a sysex parse began on a byte other than 0xF0.
	ErrInvalidSysexStart = errors.New("invalid sysex message start")

	// ErrMissingEndOfExclusive means the input ended before the 0xF7
	// terminator of a sysex message.
	ErrMissingEndOfExclusive = errors.New("missing end of system exclusive message 0xF7 byte")

	// ErrUnknownChunkType means a top-level chunk was neither MThd nor MTrk.
	ErrUnknownChunkType = errors.New("unknown chunk type")

	// ErrInvalidHeader means the MThd payload had the wrong size or a format
	// value outside 0..2.
	ErrInvalidHeader = errors.New("invalid header chunk")
)
