package midi

// SysexEvent is a system exclusive message: 0xF0, a manufacturer ID, the
// payload, then the 0xF7 terminator. The terminator is not stored. The
// manufacturer ID is a single byte unless that byte is 0x00, in which case
// two more bytes follow to form the extended three byte ID.
type SysexEvent struct {
	ManufacturerID []byte
	Payload        []byte
}

func decodeSysexEvent(c *Cursor) (Event, error) {
	prefix, ok := c.TakeOne()
	if !ok {
		return nil, ErrOutOfSpace
	}
	if prefix != 0xF0 {
		return nil, ErrInvalidSysexStart
	}

	id, err := decodeManufacturerID(c)
	if err != nil {
		return nil, err
	}

	var payload []byte
	for {
		byt, ok := c.TakeOne()
		if !ok {
			return nil, ErrMissingEndOfExclusive
		}
		if byt == 0xF7 {
			break
		}
		payload = append(payload, byt)
	}

	return SysexEvent{ManufacturerID: id, Payload: payload}, nil
}

func decodeManufacturerID(c *Cursor) ([]byte, error) {
	first, ok := c.TakeOne()
	if !ok {
		return nil, ErrOutOfSpace
	}
	if first != 0x00 {
		return []byte{first}, nil
	}
	rest := c.TakeN(2)
	if len(rest) != 2 {
		return nil, ErrOutOfSpace
	}
	return []byte{first, rest[0], rest[1]}, nil
}

func (e SysexEvent) encode() []byte {
	bytes := []byte{0xF0}
	bytes = append(bytes, e.ManufacturerID...)
	bytes = append(bytes, e.Payload...)
	return append(bytes, 0xF7)
}
