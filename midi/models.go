package midi

// SMF chunk framing: 4 ASCII bytes of type followed by a 32 bit big-endian
// payload length.
type FourByteString [4]byte

var ChunkTypeHeader = NewFourByteStr("MThd")
var ChunkTypeTrack = NewFourByteStr("MTrk")

func NewFourByteStr(str string) FourByteString {
	if len(str) != 4 {
		panic("FourByteString must be 4 bytes")
	}
	res := FourByteString{}
	for i, v := range str {
		res[i] = byte(v)
	}
	return res
}

func (s FourByteString) String() string {
	return string(s[:])
}

type ChunkHeader struct {
	ChunkType FourByteString
	ChunkSize uint32
}

// Chunk is a raw, unparsed chunk: its header plus the payload bytes that
// followed it. Parsing into header or track form happens separately.
type Chunk struct {
	Header ChunkHeader
	Data   []byte
}

func (c *Chunk) Len() int {
	return int(c.Header.ChunkSize)
}

func (c *Chunk) IsEmpty() bool {
	return c.Header.ChunkSize == 0
}
