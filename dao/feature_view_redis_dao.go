package dao

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/datasource/redisdb"
	"github.com/featuremesh/featuremesh-go-sdk/utils"
)

type FeatureViewRedisDao struct {
	redisClient     *redis.Client
	prefix          string
	primaryKeyField string
	fieldTypeMap    map[string]constants.FSType
	fields          []string
}

func NewFeatureViewRedisDao(config DaoConfig) *FeatureViewRedisDao {
	dao := FeatureViewRedisDao{
		prefix:          config.RedisPrefix,
		primaryKeyField: config.PrimaryKeyField,
		fieldTypeMap:    config.FieldTypeMap,
		fields:          config.Fields,
	}
	redisInstance, err := redisdb.GetRedis(config.RedisName)
	if err != nil {
		return nil
	}

	dao.redisClient = redisInstance.Client

	return &dao
}

func (d *FeatureViewRedisDao) GetFeatures(keys []interface{}, selectFields []string) ([]map[string]interface{}, error) {
	// the primary key is the redis key itself, not a hash field
	hashFields := make([]string, 0, len(selectFields))
	for _, field := range selectFields {
		if field == d.primaryKeyField {
			continue
		}
		hashFields = append(hashFields, field)
	}

	result := make([]map[string]interface{}, 0, len(keys))
	var wg sync.WaitGroup
	var mu sync.Mutex
	const groupSize = 200
	errChan := make(chan error, len(keys)/groupSize+1)
	for i := 0; i < len(keys); i += groupSize {
		end := i + groupSize
		if end > len(keys) {
			end = len(keys)
		}
		ks := keys[i:end]
		wg.Add(1)
		go func(ks []interface{}) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			pipeline := d.redisClient.Pipeline()
			cmds := make([]*redis.SliceCmd, len(ks))
			for i, key := range ks {
				cmds[i] = pipeline.HMGet(ctx, d.prefix+utils.ToString(key, ""), hashFields...)
			}
			if _, err := pipeline.Exec(ctx); err != nil && err != redis.Nil {
				errChan <- err
				return
			}

			innerResult := make([]map[string]interface{}, 0, len(ks))
			for i, cmd := range cmds {
				values := cmd.Val()
				properties := make(map[string]interface{}, len(values)+1)
				for j, value := range values {
					if value == nil {
						continue
					}
					properties[hashFields[j]] = d.decodeValue(hashFields[j], utils.ToString(value, ""))
				}
				// a key with no stored fields does not exist
				if len(properties) == 0 && len(hashFields) > 0 {
					continue
				}
				properties[d.primaryKeyField] = ks[i]
				innerResult = append(innerResult, properties)
			}
			mu.Lock()
			result = append(result, innerResult...)
			mu.Unlock()
		}(ks)
	}
	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// decodeValue converts a stored hash value to the field's declared type.
// Array values are packed little-endian payloads, map values are JSON.
func (d *FeatureViewRedisDao) decodeValue(field, value string) interface{} {
	switch d.fieldTypeMap[field] {
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
	case constants.FS_ARRAY_INT32:
		return utils.NewByteCursor([]byte(value)).ReadInt32s()
	case constants.FS_ARRAY_INT64:
		return utils.NewByteCursor([]byte(value)).ReadInt64s()
	case constants.FS_ARRAY_FLOAT:
		return utils.NewByteCursor([]byte(value)).ReadFloat32s()
	case constants.FS_ARRAY_DOUBLE:
		return utils.NewByteCursor([]byte(value)).ReadFloat64s()
	case constants.FS_ARRAY_STRING:
		return utils.NewByteCursor([]byte(value)).ReadStrings()
	case constants.FS_MAP_STRING_INT32:
		m := make(map[string]int32)
		if err := json.Unmarshal([]byte(value), &m); err == nil {
			return m
		}
		return value
	case constants.FS_MAP_STRING_INT64:
		m := make(map[string]int64)
		if err := json.Unmarshal([]byte(value), &m); err == nil {
			return m
		}
		return value
	case constants.FS_MAP_STRING_FLOAT:
		m := make(map[string]float32)
		if err := json.Unmarshal([]byte(value), &m); err == nil {
			return m
		}
		return value
	case constants.FS_MAP_STRING_DOUBLE:
		m := make(map[string]float64)
		if err := json.Unmarshal([]byte(value), &m); err == nil {
			return m
		}
		return value
	case constants.FS_MAP_STRING_STRING:
		m := make(map[string]string)
		if err := json.Unmarshal([]byte(value), &m); err == nil {
			return m
		}
		return value
	default:
		return value
	}
}
