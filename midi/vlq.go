package midi

import "io"

// MIDI variable-length quantities: 7 bits per byte, most significant group
// first, high bit set on every byte except the last. Delta-times and meta
// event lengths both use this encoding.

// DecodeVLQ reads one variable-length quantity from the cursor. An exhausted
// cursor at the first byte returns io.EOF, which is the clean end-of-track
// signal; running out after at least one continuation byte is a truncation
// and returns ErrOutOfSpace.
func DecodeVLQ(c *Cursor) (uint32, error) {
	var res uint32
	started := false
	for {
		byt, ok := c.TakeOne()
		if !ok {
			if !started {
				return 0, io.EOF
			}
			return 0, ErrOutOfSpace
		}
		started = true
		res = res<<7 | uint32(byt&0x7F)
		if byt&0x80 == 0 {
			return res, nil
		}
	}
}

// EncodeVLQ emits the minimal encoding of value, at least one byte.
func EncodeVLQ(value uint32) []byte {
	var bytes []byte
	for {
		byt := byte(value & 0x7F)
		value >>= 7
		if len(bytes) > 0 {
			byt |= 0x80
		}
		bytes = append(bytes, byt)
		if value == 0 {
			break
		}
	}
	for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
		bytes[i], bytes[j] = bytes[j], bytes[i]
	}
	return bytes
}
