package utils

import (
	"fmt"
	"strconv"
)

func ToString(i interface{}, defaultVal string) string {
	switch value := i.(type) {
	case string:
		return value
	case []byte:
		return string(value)
	case int:
		return strconv.Itoa(value)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case nil:
		return defaultVal
	default:
		return fmt.Sprintf("%v", value)
	}
}

func ToInt(i interface{}, defaultVal int) int {
	return int(ToInt64(i, int64(defaultVal)))
}

func ToInt32(i interface{}, defaultVal int32) int32 {
	return int32(ToInt64(i, int64(defaultVal)))
}

func ToInt64(i interface{}, defaultVal int64) int64 {
	switch value := i.(type) {
	case int:
		return int64(value)
	case int32:
		return int64(value)
	case int64:
		return value
	case uint32:
		return int64(value)
	case uint64:
		return int64(value)
	case float32:
		return int64(value)
	case float64:
		return int64(value)
	case bool:
		if value {
			return 1
		}
		return 0
	case string:
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
		return defaultVal
	case []byte:
		if v, err := strconv.ParseInt(string(value), 10, 64); err == nil {
			return v
		}
		return defaultVal
	default:
		return defaultVal
	}
}

func ToFloat32(i interface{}, defaultVal float32) float32 {
	return float32(ToFloat64(i, float64(defaultVal)))
}

func ToFloat64(i interface{}, defaultVal float64) float64 {
	switch value := i.(type) {
	case float32:
		return float64(value)
	case float64:
		return value
	case int:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
		return defaultVal
	case []byte:
		if v, err := strconv.ParseFloat(string(value), 64); err == nil {
			return v
		}
		return defaultVal
	default:
		return defaultVal
	}
}

func ToBool(i interface{}, defaultVal bool) bool {
	switch value := i.(type) {
	case bool:
		return value
	case int:
		return value != 0
	case int32:
		return value != 0
	case int64:
		return value != 0
	case string:
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
		return defaultVal
	case []byte:
		if v, err := strconv.ParseBool(string(value)); err == nil {
			return v
		}
		return defaultVal
	default:
		return defaultVal
	}
}
