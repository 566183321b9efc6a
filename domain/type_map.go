package domain

import (
	"fmt"
	"time"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
)

// SampleValueForType returns the canonical probe value used to build the
// synthetic row batch for schema inference.
func SampleValueForType(t constants.FSType) interface{} {
	switch t {
	case constants.FS_INT32:
		return int32(1)
	case constants.FS_INT64:
		return int64(1)
	case constants.FS_FLOAT:
		return float32(1.0)
	case constants.FS_DOUBLE:
		return float64(1.0)
	case constants.FS_STRING:
		return "hello world"
	case constants.FS_BOOLEAN:
		return true
	case constants.FS_TIMESTAMP:
		return time.Now().UTC()
	case constants.FS_ARRAY_INT32:
		return []int32{1}
	case constants.FS_ARRAY_INT64:
		return []int64{1}
	case constants.FS_ARRAY_FLOAT:
		return []float32{1.0}
	case constants.FS_ARRAY_DOUBLE:
		return []float64{1.0}
	case constants.FS_ARRAY_STRING:
		return []string{"hello world"}
	case constants.FS_ARRAY_ARRAY_FLOAT:
		return [][]float32{{1.0}}
	case constants.FS_MAP_INT32_INT32:
		return map[int32]int32{1: 1}
	case constants.FS_MAP_INT32_INT64:
		return map[int32]int64{1: 1}
	case constants.FS_MAP_INT32_FLOAT:
		return map[int32]float32{1: 1.0}
	case constants.FS_MAP_INT32_DOUBLE:
		return map[int32]float64{1: 1.0}
	case constants.FS_MAP_INT32_STRING:
		return map[int32]string{1: "hello world"}
	case constants.FS_MAP_INT64_INT32:
		return map[int64]int32{1: 1}
	case constants.FS_MAP_INT64_INT64:
		return map[int64]int64{1: 1}
	case constants.FS_MAP_INT64_FLOAT:
		return map[int64]float32{1: 1.0}
	case constants.FS_MAP_INT64_DOUBLE:
		return map[int64]float64{1: 1.0}
	case constants.FS_MAP_INT64_STRING:
		return map[int64]string{1: "hello world"}
	case constants.FS_MAP_STRING_INT32:
		return map[string]int32{"hello world": 1}
	case constants.FS_MAP_STRING_INT64:
		return map[string]int64{"hello world": 1}
	case constants.FS_MAP_STRING_FLOAT:
		return map[string]float32{"hello world": 1.0}
	case constants.FS_MAP_STRING_DOUBLE:
		return map[string]float64{"hello world": 1.0}
	case constants.FS_MAP_STRING_STRING:
		return map[string]string{"hello world": "hello world"}
	default:
		return "hello world"
	}
}

// InferTypeOf reverse-maps a runtime value to its declared value type.
// Plain ints widen to FS_INT64.
func InferTypeOf(value interface{}) (constants.FSType, error) {
	switch value.(type) {
	case int32:
		return constants.FS_INT32, nil
	case int, int64:
		return constants.FS_INT64, nil
	case float32:
		return constants.FS_FLOAT, nil
	case float64:
		return constants.FS_DOUBLE, nil
	case string:
		return constants.FS_STRING, nil
	case bool:
		return constants.FS_BOOLEAN, nil
	case time.Time:
		return constants.FS_TIMESTAMP, nil
	case []int32:
		return constants.FS_ARRAY_INT32, nil
	case []int, []int64:
		return constants.FS_ARRAY_INT64, nil
	case []float32:
		return constants.FS_ARRAY_FLOAT, nil
	case []float64:
		return constants.FS_ARRAY_DOUBLE, nil
	case []string:
		return constants.FS_ARRAY_STRING, nil
	case [][]float32:
		return constants.FS_ARRAY_ARRAY_FLOAT, nil
	case map[int32]int32:
		return constants.FS_MAP_INT32_INT32, nil
	case map[int32]int64:
		return constants.FS_MAP_INT32_INT64, nil
	case map[int32]float32:
		return constants.FS_MAP_INT32_FLOAT, nil
	case map[int32]float64:
		return constants.FS_MAP_INT32_DOUBLE, nil
	case map[int32]string:
		return constants.FS_MAP_INT32_STRING, nil
	case map[int64]int32:
		return constants.FS_MAP_INT64_INT32, nil
	case map[int64]int64:
		return constants.FS_MAP_INT64_INT64, nil
	case map[int64]float32:
		return constants.FS_MAP_INT64_FLOAT, nil
	case map[int64]float64:
		return constants.FS_MAP_INT64_DOUBLE, nil
	case map[int64]string:
		return constants.FS_MAP_INT64_STRING, nil
	case map[string]int32:
		return constants.FS_MAP_STRING_INT32, nil
	case map[string]int64:
		return constants.FS_MAP_STRING_INT64, nil
	case map[string]float32:
		return constants.FS_MAP_STRING_FLOAT, nil
	case map[string]float64:
		return constants.FS_MAP_STRING_DOUBLE, nil
	case map[string]string:
		return constants.FS_MAP_STRING_STRING, nil
	default:
		return 0, fmt.Errorf("cannot infer feature value type from go type %T", value)
	}
}
