package dao

import (
	"encoding/json"
	"strings"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/utils"
)

// decodeSQLValue converts a scanned column value to the field's declared
// type. Text protocols hand most values back as []byte; array columns come
// as postgres array literals or JSON lists, map columns as JSON objects.
func decodeSQLValue(fieldType constants.FSType, value interface{}) interface{} {
	switch fieldType {
	case constants.FS_INT32:
		return utils.ToInt32(value, 0)
	case constants.FS_INT64:
		return utils.ToInt64(value, 0)
	case constants.FS_FLOAT:
		return utils.ToFloat32(value, 0)
	case constants.FS_DOUBLE:
		return utils.ToFloat64(value, 0)
	case constants.FS_BOOLEAN:
		return utils.ToBool(value, false)
	case constants.FS_STRING:
		return utils.ToString(value, "")
	case constants.FS_ARRAY_INT32:
		items := splitListLiteral(utils.ToString(value, ""))
		result := make([]int32, len(items))
		for i, item := range items {
			result[i] = utils.ToInt32(item, 0)
		}
		return result
	case constants.FS_ARRAY_INT64:
		items := splitListLiteral(utils.ToString(value, ""))
		result := make([]int64, len(items))
		for i, item := range items {
			result[i] = utils.ToInt64(item, 0)
		}
		return result
	case constants.FS_ARRAY_FLOAT:
		items := splitListLiteral(utils.ToString(value, ""))
		result := make([]float32, len(items))
		for i, item := range items {
			result[i] = utils.ToFloat32(item, 0)
		}
		return result
	case constants.FS_ARRAY_DOUBLE:
		items := splitListLiteral(utils.ToString(value, ""))
		result := make([]float64, len(items))
		for i, item := range items {
			result[i] = utils.ToFloat64(item, 0)
		}
		return result
	case constants.FS_ARRAY_STRING:
		return splitListLiteral(utils.ToString(value, ""))
	case constants.FS_MAP_STRING_INT32:
		m := make(map[string]int32)
		if err := json.Unmarshal([]byte(utils.ToString(value, "")), &m); err == nil {
			return m
		}
		return utils.ToString(value, "")
	case constants.FS_MAP_STRING_INT64:
		m := make(map[string]int64)
		if err := json.Unmarshal([]byte(utils.ToString(value, "")), &m); err == nil {
			return m
		}
		return utils.ToString(value, "")
	case constants.FS_MAP_STRING_FLOAT:
		m := make(map[string]float32)
		if err := json.Unmarshal([]byte(utils.ToString(value, "")), &m); err == nil {
			return m
		}
		return utils.ToString(value, "")
	case constants.FS_MAP_STRING_DOUBLE:
		m := make(map[string]float64)
		if err := json.Unmarshal([]byte(utils.ToString(value, "")), &m); err == nil {
			return m
		}
		return utils.ToString(value, "")
	case constants.FS_MAP_STRING_STRING:
		m := make(map[string]string)
		if err := json.Unmarshal([]byte(utils.ToString(value, "")), &m); err == nil {
			return m
		}
		return utils.ToString(value, "")
	default:
		if b, ok := value.([]byte); ok {
			return string(b)
		}
		return value
	}
}

// splitListLiteral splits "{a,b,c}" or "[a,b,c]" or "a,b,c" into elements.
func splitListLiteral(s string) []string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '{' && s[len(s)-1] == '}') || (s[0] == '[' && s[len(s)-1] == ']') {
			s = s[1 : len(s)-1]
		}
	}
	if s == "" {
		return nil
	}
	items := strings.Split(s, ",")
	for i := range items {
		items[i] = strings.Trim(strings.TrimSpace(items[i]), `"`)
	}
	return items
}
