package utils

import (
	"encoding/binary"
	"math"
)

// Pack* build the packed little-endian payloads ByteCursor reads. Ingestion
// tooling and test fixtures write array fields with these.

func PackInt32s(values []int32) []byte {
	buf := make([]byte, 0, len(values)*4)
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
	}
	return buf
}

func PackInt64s(values []int64) []byte {
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
	return buf
}

func PackFloat32s(values []float32) []byte {
	buf := make([]byte, 0, len(values)*4)
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

func PackFloat64s(values []float64) []byte {
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}

// PackStrings writes a uint32 count, count+1 uint32 offsets and the
// concatenated string bytes.
func PackStrings(values []string) []byte {
	total := 0
	for _, v := range values {
		total += len(v)
	}
	buf := make([]byte, 0, 4+(len(values)+1)*4+total)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(values)))
	if len(values) == 0 {
		return buf
	}
	offset := uint32(0)
	buf = binary.LittleEndian.AppendUint32(buf, offset)
	for _, v := range values {
		offset += uint32(len(v))
		buf = binary.LittleEndian.AppendUint32(buf, offset)
	}
	for _, v := range values {
		buf = append(buf, v...)
	}
	return buf
}
