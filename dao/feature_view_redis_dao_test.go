package dao

import (
	"encoding/json"
	"testing"

	"fortio.org/assert"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/utils"
)

func TestRedisDaoDecodeValue(t *testing.T) {
	d := &FeatureViewRedisDao{
		fieldTypeMap: map[string]constants.FSType{
			"age":        constants.FS_INT32,
			"click_7d":   constants.FS_INT64,
			"ctr":        constants.FS_FLOAT,
			"price":      constants.FS_DOUBLE,
			"in_stock":   constants.FS_BOOLEAN,
			"city":       constants.FS_STRING,
			"item_ids":   constants.FS_ARRAY_INT64,
			"embedding":  constants.FS_ARRAY_FLOAT,
			"tags":       constants.FS_ARRAY_STRING,
			"attributes": constants.FS_MAP_STRING_STRING,
			"weights":    constants.FS_MAP_STRING_DOUBLE,
		},
	}

	assert.Equal(t, d.decodeValue("age", "29"), int32(29))
	assert.Equal(t, d.decodeValue("click_7d", "1024"), int64(1024))
	assert.Equal(t, d.decodeValue("ctr", "0.5"), float32(0.5))
	assert.Equal(t, d.decodeValue("price", "19.99"), 19.99)
	assert.Equal(t, d.decodeValue("in_stock", "true"), true)
	assert.Equal(t, d.decodeValue("city", "hangzhou"), "hangzhou")

	// array fields hold packed little-endian payloads
	assert.Equal(t, d.decodeValue("item_ids", string(utils.PackInt64s([]int64{1, 2, 3}))), []int64{1, 2, 3})
	assert.Equal(t, d.decodeValue("embedding", string(utils.PackFloat32s([]float32{0.25, 0.5}))), []float32{0.25, 0.5})
	assert.Equal(t, d.decodeValue("tags", string(utils.PackStrings([]string{"new", "sale"}))), []string{"new", "sale"})

	// map fields hold JSON
	attributes, err := json.Marshal(map[string]string{"color": "red"})
	assert.NoError(t, err)
	assert.Equal(t, d.decodeValue("attributes", string(attributes)), map[string]string{"color": "red"})
	weights, err := json.Marshal(map[string]float64{"a": 0.5})
	assert.NoError(t, err)
	assert.Equal(t, d.decodeValue("weights", string(weights)), map[string]float64{"a": 0.5})

	// a broken map payload falls back to the raw string
	assert.Equal(t, d.decodeValue("attributes", "not json"), "not json")
	// fields without a declared type stay strings
	assert.Equal(t, d.decodeValue("mystery", "whatever"), "whatever")
}
