package midi

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FileData is a whole decoded Standard MIDI File: exactly one header chunk
// followed by zero or more track chunks.
type FileData struct {
	Header HeaderChunk
	Tracks []TrackChunk
}

func (f *FileData) Decode(r io.Reader) error {
	bufferedReader := bufio.NewReader(r)

	var headerChunk Chunk
	if err := headerChunk.decode(bufferedReader); err != nil {
		return errors.Wrap(err, "header chunk")
	}
	if headerChunk.Header.ChunkType != ChunkTypeHeader {
		return errors.Wrapf(ErrUnknownChunkType, "expected %s, got %s",
			ChunkTypeHeader, headerChunk.Header.ChunkType)
	}
	header, err := DecodeHeader(headerChunk.Data)
	if err != nil {
		return err
	}
	f.Header = header
	logrus.Debugf("Decoded header: format %d, %d tracks", header.Format, header.NumTracks)

	for {
		var c Chunk
		if err := c.decode(bufferedReader); err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrapf(err, "chunk %d", len(f.Tracks)+1)
		}
		if c.Header.ChunkType != ChunkTypeTrack {
			return errors.Wrapf(ErrUnknownChunkType, "chunk %d type %s",
				len(f.Tracks)+1, c.Header.ChunkType)
		}

		track, err := DecodeTrack(c.Data)
		if err != nil {
			return errors.Wrapf(err, "track %d", len(f.Tracks))
		}
		logrus.Debugf("Decoded track %d with %d events", len(f.Tracks), len(track.Events))
		f.Tracks = append(f.Tracks, track)
	}

	return nil
}

func (f *FileData) Encode(w io.Writer) error {
	headerChunk := Chunk{
		Header: ChunkHeader{ChunkType: ChunkTypeHeader, ChunkSize: 6},
		Data:   f.Header.Encode(),
	}
	if err := headerChunk.Encode(w); err != nil {
		return err
	}

	for _, track := range f.Tracks {
		data := track.Encode()
		c := Chunk{
			Header: ChunkHeader{ChunkType: ChunkTypeTrack, ChunkSize: uint32(len(data))},
			Data:   data,
		}
		if err := c.Encode(w); err != nil {
			return err
		}
	}
	return nil
}
