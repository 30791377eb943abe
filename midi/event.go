package midi

// Event is one track event payload: a channel voice message, a system
// exclusive message or a meta message. The set of implementations is closed;
// each one serializes itself back to its exact wire bytes.
type Event interface {
	encode() []byte
}

// decodeEvent routes on the prefix byte without consuming it; the selected
// codec re-reads its own prefix.
func decodeEvent(c *Cursor) (Event, error) {
	prefix, ok := c.Peek()
	if !ok {
		return nil, ErrOutOfSpace
	}

	switch {
	case prefix >= 0x80 && prefix <= 0xEF:
		return decodeChannelEvent(c)
	case prefix >= 0xF0 && prefix <= 0xFE:
		return decodeSysexEvent(c)
	case prefix == 0xFF:
		return decodeMetaEvent(c)
	default:
		return nil, ErrInvalidFormat
	}
}
