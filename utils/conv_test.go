package utils

import (
	"testing"

	"fortio.org/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, ToString("abc", ""), "abc")
	assert.Equal(t, ToString([]byte("abc"), ""), "abc")
	assert.Equal(t, ToString(int64(42), ""), "42")
	assert.Equal(t, ToString(2.5, ""), "2.5")
	assert.Equal(t, ToString(true, ""), "true")
	assert.Equal(t, ToString(nil, "fallback"), "fallback")
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, ToInt64("42", 0), int64(42))
	assert.Equal(t, ToInt64(42.9, 0), int64(42))
	assert.Equal(t, ToInt64([]byte("7"), 0), int64(7))
	assert.Equal(t, ToInt64("not a number", -1), int64(-1))
	assert.Equal(t, ToInt64(true, 0), int64(1))
}

func TestToFloat64(t *testing.T) {
	assert.Equal(t, ToFloat64("2.5", 0), 2.5)
	assert.Equal(t, ToFloat64(int32(2), 0), 2.0)
	assert.Equal(t, ToFloat64("oops", 1.5), 1.5)
}

func TestToBool(t *testing.T) {
	assert.Equal(t, ToBool("true", false), true)
	assert.Equal(t, ToBool("1", false), true)
	assert.Equal(t, ToBool(int64(0), true), false)
	assert.Equal(t, ToBool("invalid", true), true)
}

func TestMd5(t *testing.T) {
	// well known digest
	assert.Equal(t, Md5("abc"), "900150983cd24fb0d6963f7d28e17f72")
}
