package utils

import (
	"encoding/binary"
	"errors"
	"math"
)

var (
	ErrUnexpectedEOF = errors.New("unexpected EOF while reading binary data")
	ErrInvalidLength = errors.New("invalid negative length encountered")
)

// ByteCursor walks a packed little-endian payload read from an online store
// field. Read errors stick: once Err is set every subsequent read returns a
// zero value.
type ByteCursor struct {
	Data []byte
	Off  int
	Err  error
}

func NewByteCursor(data []byte) *ByteCursor {
	return &ByteCursor{Data: data}
}

func (c *ByteCursor) HasMore() bool {
	return c.Err == nil && c.Off < len(c.Data)
}

func (c *ByteCursor) Remaining() int {
	if c.Err != nil {
		return 0
	}
	return len(c.Data) - c.Off
}

func (c *ByteCursor) ReadUint8() uint8 {
	if c.Err != nil || c.Off+1 > len(c.Data) {
		c.Err = ErrUnexpectedEOF
		return 0
	}
	v := c.Data[c.Off]
	c.Off++
	return v
}

func (c *ByteCursor) ReadUint32() uint32 {
	if c.Err != nil || c.Off+4 > len(c.Data) {
		c.Err = ErrUnexpectedEOF
		return 0
	}
	v := binary.LittleEndian.Uint32(c.Data[c.Off:])
	c.Off += 4
	return v
}

func (c *ByteCursor) ReadUint64() uint64 {
	if c.Err != nil || c.Off+8 > len(c.Data) {
		c.Err = ErrUnexpectedEOF
		return 0
	}
	v := binary.LittleEndian.Uint64(c.Data[c.Off:])
	c.Off += 8
	return v
}

func (c *ByteCursor) ReadInt32() int32 {
	return int32(c.ReadUint32())
}

func (c *ByteCursor) ReadInt64() int64 {
	return int64(c.ReadUint64())
}

func (c *ByteCursor) ReadFloat32() float32 {
	return math.Float32frombits(c.ReadUint32())
}

func (c *ByteCursor) ReadFloat64() float64 {
	return math.Float64frombits(c.ReadUint64())
}

func (c *ByteCursor) ReadBool() bool {
	return c.ReadUint8() == 1
}

func (c *ByteCursor) ReadBytes(n int) []byte {
	if c.Err != nil {
		return nil
	}
	if n == 0 {
		return []byte{}
	}
	if n < 0 || c.Off+n > len(c.Data) {
		c.Err = ErrUnexpectedEOF
		return nil
	}
	v := c.Data[c.Off : c.Off+n]
	c.Off += n
	return v
}

// ReadInt32s decodes the remainder of the payload as packed int32 values.
func (c *ByteCursor) ReadInt32s() []int32 {
	n := c.Remaining() / 4
	res := make([]int32, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, c.ReadInt32())
	}
	return res
}

// ReadInt64s decodes the remainder of the payload as packed int64 values.
func (c *ByteCursor) ReadInt64s() []int64 {
	n := c.Remaining() / 8
	res := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, c.ReadInt64())
	}
	return res
}

// ReadFloat32s decodes the remainder of the payload as a packed float32
// vector. Embedding fields are stored this way.
func (c *ByteCursor) ReadFloat32s() []float32 {
	n := c.Remaining() / 4
	res := make([]float32, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, c.ReadFloat32())
	}
	return res
}

// ReadFloat64s decodes the remainder of the payload as packed float64 values.
func (c *ByteCursor) ReadFloat64s() []float64 {
	n := c.Remaining() / 8
	res := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, c.ReadFloat64())
	}
	return res
}

// ReadString reads a uint32 length prefix followed by that many bytes.
func (c *ByteCursor) ReadString() string {
	l := int(c.ReadUint32())
	if c.Err != nil {
		return ""
	}
	return string(c.ReadBytes(l))
}

// ReadStrings decodes a string array stored as a uint32 count, count+1
// uint32 offsets and the concatenated string bytes.
func (c *ByteCursor) ReadStrings() []string {
	count := int(c.ReadUint32())
	if c.Err != nil {
		return nil
	}
	if count == 0 {
		return []string{}
	}
	if count < 0 || c.Off+((count+1)*4) > len(c.Data) {
		c.Err = ErrUnexpectedEOF
		return nil
	}

	offsets := make([]uint32, count+1)
	for i := 0; i <= count; i++ {
		offsets[i] = c.ReadUint32()
	}

	totalByteLen := int(offsets[count])
	data := c.ReadBytes(totalByteLen)
	if c.Err != nil {
		return nil
	}

	res := make([]string, count)
	for i := 0; i < count; i++ {
		start, end := offsets[i], offsets[i+1]
		if start > end || int(end) > len(data) {
			c.Err = ErrInvalidLength
			return nil
		}
		res[i] = string(data[start:end])
	}
	return res
}
