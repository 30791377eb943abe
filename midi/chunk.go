package midi

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func (c *Chunk) decode(r *bufio.Reader) error {
	if err := binary.Read(r, binary.BigEndian, &c.Header); err != nil {
		return err
	}
	ba := make([]byte, c.Header.ChunkSize)
	if err := binary.Read(r, binary.BigEndian, &ba); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.Wrapf(ErrOutOfSpace, "chunk %s payload", c.Header.ChunkType)
		}
		return err
	}
	c.Data = ba
	return nil
}

func (c *Chunk) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, &c.Header); err != nil {
		return err
	}
	if _, err := w.Write(c.Data); err != nil {
		return err
	}
	return nil
}
