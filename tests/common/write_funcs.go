package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/datasource/mysqldb"
	"github.com/featuremesh/featuremesh-go-sdk/datasource/postgresdb"
	"github.com/featuremesh/featuremesh-go-sdk/datasource/redisdb"
	"github.com/featuremesh/featuremesh-go-sdk/domain"
	"github.com/featuremesh/featuremesh-go-sdk/featurestore"
	"github.com/featuremesh/featuremesh-go-sdk/utils"
)

// RandomKVFeatures generates one feature row per join id with random values
// matching the declared types.
func RandomKVFeatures(joinIdName string, featureNameMap map[string]constants.FSType, joinIds []interface{}) ([]map[string]interface{}, error) {
	var data []map[string]interface{}
	for _, joinId := range joinIds {
		row := make(map[string]interface{})
		row[joinIdName] = joinId
		for featureName, featureType := range featureNameMap {
			switch featureType {
			case constants.FS_INT32:
				row[featureName] = int32(rand.Intn(100))
			case constants.FS_INT64:
				row[featureName] = int64(rand.Intn(100))
			case constants.FS_FLOAT:
				row[featureName] = 100 * rand.Float32()
			case constants.FS_DOUBLE:
				row[featureName] = 100 * rand.Float64()
			case constants.FS_STRING:
				row[featureName] = fmt.Sprintf("test_%d", rand.Intn(100))
			case constants.FS_BOOLEAN:
				row[featureName] = rand.Intn(2) == 1
			case constants.FS_ARRAY_INT32:
				row[featureName] = []int32{int32(rand.Intn(100)), int32(rand.Intn(100))}
			case constants.FS_ARRAY_INT64:
				row[featureName] = []int64{int64(rand.Intn(100)), int64(rand.Intn(100))}
			case constants.FS_ARRAY_FLOAT:
				row[featureName] = []float32{100 * rand.Float32(), 100 * rand.Float32()}
			case constants.FS_ARRAY_DOUBLE:
				row[featureName] = []float64{100 * rand.Float64(), 100 * rand.Float64()}
			case constants.FS_ARRAY_STRING:
				row[featureName] = []string{fmt.Sprintf("test_%d", rand.Intn(100)), fmt.Sprintf("test_%d", rand.Intn(100))}
			case constants.FS_MAP_STRING_INT32:
				row[featureName] = map[string]int32{fmt.Sprintf("test_%d", rand.Intn(100)): int32(rand.Intn(100))}
			case constants.FS_MAP_STRING_INT64:
				row[featureName] = map[string]int64{fmt.Sprintf("test_%d", rand.Intn(100)): int64(rand.Intn(100))}
			case constants.FS_MAP_STRING_FLOAT:
				row[featureName] = map[string]float32{fmt.Sprintf("test_%d", rand.Intn(100)): 100 * rand.Float32()}
			case constants.FS_MAP_STRING_DOUBLE:
				row[featureName] = map[string]float64{fmt.Sprintf("test_%d", rand.Intn(100)): 100 * rand.Float64()}
			case constants.FS_MAP_STRING_STRING:
				row[featureName] = map[string]string{fmt.Sprintf("test_%d", rand.Intn(100)): fmt.Sprintf("test_%d", rand.Intn(100))}
			default:
				return nil, fmt.Errorf("unsupported feature type: %v", featureType)
			}
		}
		data = append(data, row)
	}
	return data, nil
}

// SeedKVFeatures writes feature rows straight into the project's online
// store, so reads can be checked against known data.
func SeedKVFeatures(client *featurestore.FeatureStoreClient, projectName, featureViewName, joinIdName string, rows []map[string]interface{}) error {
	project, err := client.GetProject(projectName)
	if err != nil {
		return err
	}
	featureView := project.GetFeatureView(featureViewName)
	if featureView == nil {
		return errors.New("feature view not found")
	}
	baseFeatureView, ok := featureView.(*domain.BaseFeatureView)
	if !ok {
		return fmt.Errorf("feature view %s does not support seeding", featureViewName)
	}

	fieldTypeMap := make(map[string]constants.FSType)
	for _, field := range featureView.GetFields() {
		fieldTypeMap[field.Name] = field.Type
	}

	tableName := project.OnlineStore.GetTableName(baseFeatureView)
	datasourceName := project.OnlineStore.GetDatasourceName()

	switch project.OnlineDatasourceType {
	case constants.Datasource_Type_Redis:
		return seedRedisFeatures(datasourceName, tableName, joinIdName, fieldTypeMap, rows)
	case constants.Datasource_Type_Mysql:
		return seedSQLFeatures(sqlbuilder.MySQL, datasourceName, tableName, joinIdName, fieldTypeMap, rows)
	case constants.Datasource_Type_Postgres:
		return seedSQLFeatures(sqlbuilder.PostgreSQL, datasourceName, tableName, joinIdName, fieldTypeMap, rows)
	default:
		return fmt.Errorf("unsupported onlinestore type :%s", project.OnlineDatasourceType)
	}
}

func seedRedisFeatures(datasourceName, prefix, joinIdName string, fieldTypeMap map[string]constants.FSType, rows []map[string]interface{}) error {
	redisInstance, err := redisdb.GetRedis(datasourceName)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := redisInstance.Client.Pipeline()
	for _, row := range rows {
		key := prefix + utils.ToString(row[joinIdName], "")
		values := make([]interface{}, 0, 2*len(row))
		for field, value := range row {
			if field == joinIdName {
				continue
			}
			encoded, err := encodeRedisValue(fieldTypeMap[field], value)
			if err != nil {
				return fmt.Errorf("field %s: %w", field, err)
			}
			values = append(values, field, encoded)
		}
		pipeline.HSet(ctx, key, values...)
	}
	_, err = pipeline.Exec(ctx)
	return err
}

// encodeRedisValue stores array values as packed little-endian payloads and
// map values as JSON, mirroring the read side.
func encodeRedisValue(fieldType constants.FSType, value interface{}) (interface{}, error) {
	switch fieldType {
	case constants.FS_ARRAY_INT32:
		return utils.PackInt32s(value.([]int32)), nil
	case constants.FS_ARRAY_INT64:
		return utils.PackInt64s(value.([]int64)), nil
	case constants.FS_ARRAY_FLOAT:
		return utils.PackFloat32s(value.([]float32)), nil
	case constants.FS_ARRAY_DOUBLE:
		return utils.PackFloat64s(value.([]float64)), nil
	case constants.FS_ARRAY_STRING:
		return utils.PackStrings(value.([]string)), nil
	case constants.FS_MAP_STRING_INT32, constants.FS_MAP_STRING_INT64, constants.FS_MAP_STRING_FLOAT,
		constants.FS_MAP_STRING_DOUBLE, constants.FS_MAP_STRING_STRING:
		return json.Marshal(value)
	default:
		return utils.ToString(value, ""), nil
	}
}

func seedSQLFeatures(flavor sqlbuilder.Flavor, datasourceName, tableName, joinIdName string, fieldTypeMap map[string]constants.FSType, rows []map[string]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	columns := make([]string, 0, len(rows[0]))
	columns = append(columns, joinIdName)
	for field := range rows[0] {
		if field == joinIdName {
			continue
		}
		switch fieldTypeMap[field] {
		case constants.FS_INT32, constants.FS_INT64, constants.FS_FLOAT, constants.FS_DOUBLE,
			constants.FS_STRING, constants.FS_BOOLEAN:
		default:
			return fmt.Errorf("unsupported feature type for sql seeding: %v", fieldTypeMap[field])
		}
		columns = append(columns, field)
	}
	sort.Strings(columns[1:])

	ib := flavor.NewInsertBuilder()
	ib.InsertInto(tableName)
	ib.Cols(columns...)
	for _, row := range rows {
		values := make([]interface{}, len(columns))
		for i, column := range columns {
			values[i] = row[column]
		}
		ib.Values(values...)
	}
	query, args := ib.Build()

	switch flavor {
	case sqlbuilder.MySQL:
		mysqlInstance, err := mysqldb.GetMysql(datasourceName)
		if err != nil {
			return err
		}
		_, err = mysqlInstance.DB.Exec(query, args...)
		return err
	default:
		postgresInstance, err := postgresdb.GetPostgres(datasourceName)
		if err != nil {
			return err
		}
		_, err = postgresInstance.DB.Exec(query, args...)
		return err
	}
}
