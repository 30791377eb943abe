package midi

// Channel voice messages. The status byte is (kind<<4)|channel; running
// status is not supported, every event carries its own status byte.
const (
	statusNoteOff uint8 = 0x8 + iota
	statusNoteOn
	statusPolyphonicKeyPressure
	statusControlChange
	statusProgramChange
	statusChannelPressure
	statusPitchWheelChange
)

type NoteOff struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

type NoteOn struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

type PolyphonicKeyPressure struct {
	Channel  uint8
	Key      uint8
	Pressure uint8
}

type ControlChange struct {
	Channel    uint8
	Controller uint8
	Value      uint8
}

type ProgramChange struct {
	Channel uint8
	Program uint8
}

type ChannelPressure struct {
	Channel  uint8
	Pressure uint8
}

// PitchWheelChange carries a 14 bit value, reassembled from two 7 bit data
// bytes, low byte first.
type PitchWheelChange struct {
	Channel uint8
	Value   uint16
}

func decodeChannelEvent(c *Cursor) (Event, error) {
	status, ok := c.TakeOne()
	if !ok {
		return nil, ErrOutOfSpace
	}
	channel := status & 0x0F

	switch status >> 4 {
	case statusNoteOff:
		key, velocity, err := takeTwo(c)
		if err != nil {
			return nil, err
		}
		return NoteOff{Channel: channel, Key: key, Velocity: velocity}, nil

	case statusNoteOn:
		key, velocity, err := takeTwo(c)
		if err != nil {
			return nil, err
		}
		return NoteOn{Channel: channel, Key: key, Velocity: velocity}, nil

	case statusPolyphonicKeyPressure:
		key, pressure, err := takeTwo(c)
		if err != nil {
			return nil, err
		}
		return PolyphonicKeyPressure{Channel: channel, Key: key, Pressure: pressure}, nil

	case statusControlChange:
		controller, value, err := takeTwo(c)
		if err != nil {
			return nil, err
		}
		return ControlChange{Channel: channel, Controller: controller, Value: value}, nil

	case statusProgramChange:
		program, ok := c.TakeOne()
		if !ok {
			return nil, ErrOutOfSpace
		}
		return ProgramChange{Channel: channel, Program: program}, nil

	case statusChannelPressure:
		pressure, ok := c.TakeOne()
		if !ok {
			return nil, ErrOutOfSpace
		}
		return ChannelPressure{Channel: channel, Pressure: pressure}, nil

	case statusPitchWheelChange:
		low, high, err := takeTwo(c)
		if err != nil {
			return nil, err
		}
		value := uint16(low&0x7F) | uint16(high&0x7F)<<7
		return PitchWheelChange{Channel: channel, Value: value}, nil

	default:
		return nil, ErrUnsupportedStatus
	}
}

func takeTwo(c *Cursor) (byte, byte, error) {
	first, ok := c.TakeOne()
	if !ok {
		return 0, 0, ErrOutOfSpace
	}
	second, ok := c.TakeOne()
	if !ok {
		return 0, 0, ErrOutOfSpace
	}
	return first, second, nil
}

func statusByte(kind, channel uint8) byte {
	return kind<<4 | channel&0x0F
}

func (e NoteOff) encode() []byte {
	return []byte{statusByte(statusNoteOff, e.Channel), e.Key, e.Velocity}
}

func (e NoteOn) encode() []byte {
	return []byte{statusByte(statusNoteOn, e.Channel), e.Key, e.Velocity}
}

func (e PolyphonicKeyPressure) encode() []byte {
	return []byte{statusByte(statusPolyphonicKeyPressure, e.Channel), e.Key, e.Pressure}
}

func (e ControlChange) encode() []byte {
	return []byte{statusByte(statusControlChange, e.Channel), e.Controller, e.Value}
}

func (e ProgramChange) encode() []byte {
	return []byte{statusByte(statusProgramChange, e.Channel), e.Program}
}

func (e ChannelPressure) encode() []byte {
	return []byte{statusByte(statusChannelPressure, e.Channel), e.Pressure}
}

func (e PitchWheelChange) encode() []byte {
	return []byte{
		statusByte(statusPitchWheelChange, e.Channel),
		byte(e.Value & 0x7F),
		byte(e.Value >> 7 & 0x7F),
	}
}
