package utils

import (
	"encoding/binary"
	"testing"

	"fortio.org/assert"
)

func TestPackReadRoundTrip(t *testing.T) {
	assert.Equal(t, NewByteCursor(PackInt32s([]int32{1, -2, 3})).ReadInt32s(), []int32{1, -2, 3})
	assert.Equal(t, NewByteCursor(PackInt64s([]int64{1 << 40, -5})).ReadInt64s(), []int64{1 << 40, -5})
	assert.Equal(t, NewByteCursor(PackFloat32s([]float32{0.25, -1.5})).ReadFloat32s(), []float32{0.25, -1.5})
	assert.Equal(t, NewByteCursor(PackFloat64s([]float64{3.5, 0})).ReadFloat64s(), []float64{3.5, 0})
}

func TestPackStringsRoundTrip(t *testing.T) {
	testcases := [][]string{
		{"new", "sale", ""},
		{"single"},
		{},
	}
	for _, tcase := range testcases {
		assert.Equal(t, NewByteCursor(PackStrings(tcase)).ReadStrings(), tcase)
	}
}

func TestReadString(t *testing.T) {
	data := binary.LittleEndian.AppendUint32(nil, 5)
	data = append(data, []byte("hello")...)
	c := NewByteCursor(data)
	assert.Equal(t, c.ReadString(), "hello")
	assert.Equal(t, c.HasMore(), false)
}

func TestCursorTruncatedPayload(t *testing.T) {
	c := NewByteCursor([]byte{1, 2})
	assert.Equal(t, c.ReadUint32(), uint32(0))
	assert.Equal(t, c.Err, ErrUnexpectedEOF)
	// errors stick
	assert.Equal(t, c.ReadUint8(), uint8(0))
	assert.Equal(t, c.HasMore(), false)
}

func TestReadStringsTruncatedPayload(t *testing.T) {
	packed := PackStrings([]string{"new", "sale"})
	c := NewByteCursor(packed[:len(packed)-2])
	if got := c.ReadStrings(); got != nil {
		t.Fatalf("expected nil for a truncated payload, got %v", got)
	}
	if c.Err == nil {
		t.Fatal("expected the cursor error to be set")
	}
}
