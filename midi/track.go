package midi

import (
	"io"

	"github.com/pkg/errors"
)

// TrackEvent pairs a delta-time, in ticks, with the event that fires after
// waiting that long.
type TrackEvent struct {
	DeltaTime uint32
	Event     Event
}

// TrackChunk is the decoded form of an MTrk payload: the events in the order
// they appeared.
type TrackChunk struct {
	Events []TrackEvent
}

// DecodeTrack walks a track payload, decoding (delta-time, event) pairs
// until the input is exhausted. Running out of bytes exactly at a delta-time
// boundary is the clean end of the track; running out anywhere else, or any
// event codec failure, aborts the whole decode.
func DecodeTrack(data []byte) (TrackChunk, error) {
	cursor := NewCursor(data)
	var events []TrackEvent

	for {
		deltaTime, err := DecodeVLQ(cursor)
		if err == io.EOF {
			return TrackChunk{Events: events}, nil
		}
		if err != nil {
			return TrackChunk{}, errors.Wrapf(err, "delta-time at event %d", len(events))
		}

		event, err := decodeEvent(cursor)
		if err != nil {
			return TrackChunk{}, errors.Wrapf(err, "event %d", len(events))
		}

		events = append(events, TrackEvent{DeltaTime: deltaTime, Event: event})
	}
}

// Encode serializes the track back to its payload bytes. A decoded track
// re-encodes to the exact bytes it came from.
func (t *TrackChunk) Encode() []byte {
	var bytes []byte
	for _, e := range t.Events {
		bytes = append(bytes, EncodeVLQ(e.DeltaTime)...)
		bytes = append(bytes, e.Event.encode()...)
	}
	return bytes
}
