package dao

import (
	"testing"

	"fortio.org/assert"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
)

func TestDecodeSQLValue(t *testing.T) {
	// text protocols scan column values as []byte
	assert.Equal(t, decodeSQLValue(constants.FS_INT32, []byte("29")), int32(29))
	assert.Equal(t, decodeSQLValue(constants.FS_INT64, int64(7)), int64(7))
	assert.Equal(t, decodeSQLValue(constants.FS_FLOAT, []byte("0.5")), float32(0.5))
	assert.Equal(t, decodeSQLValue(constants.FS_DOUBLE, []byte("19.99")), 19.99)
	assert.Equal(t, decodeSQLValue(constants.FS_BOOLEAN, []byte("true")), true)
	assert.Equal(t, decodeSQLValue(constants.FS_BOOLEAN, []byte("1")), true)
	assert.Equal(t, decodeSQLValue(constants.FS_STRING, []byte("hangzhou")), "hangzhou")

	assert.Equal(t, decodeSQLValue(constants.FS_ARRAY_INT32, []byte("{1,2,3}")), []int32{1, 2, 3})
	assert.Equal(t, decodeSQLValue(constants.FS_ARRAY_DOUBLE, []byte("[0.5, 1.5]")), []float64{0.5, 1.5})
	assert.Equal(t, decodeSQLValue(constants.FS_ARRAY_STRING, []byte(`{"new","sale"}`)), []string{"new", "sale"})

	assert.Equal(t, decodeSQLValue(constants.FS_MAP_STRING_INT64, []byte(`{"clicks":12}`)), map[string]int64{"clicks": 12})
	assert.Equal(t, decodeSQLValue(constants.FS_MAP_STRING_STRING, []byte("broken")), "broken")

	// types without a column decoding keep the raw text
	assert.Equal(t, decodeSQLValue(constants.FS_TIMESTAMP, []byte("2024-01-01 00:00:00")), "2024-01-01 00:00:00")
}

func TestSplitListLiteral(t *testing.T) {
	testcases := []struct {
		literal string
		expect  []string
	}{
		{literal: "{1,2,3}", expect: []string{"1", "2", "3"}},
		{literal: "[a, b]", expect: []string{"a", "b"}},
		{literal: "a,b", expect: []string{"a", "b"}},
		{literal: `{"x","y"}`, expect: []string{"x", "y"}},
		{literal: "{}", expect: nil},
		{literal: "", expect: nil},
	}
	for _, tcase := range testcases {
		assert.Equal(t, splitListLiteral(tcase.literal), tcase.expect)
	}
}
