package testcases

import (
	"testing"
	"time"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/tests/common"
)

func TestRedisReadKVFeatures(t *testing.T) {
	featureViewName := "user_table"
	joinIdName := "user_id"

	joinIds := []interface{}{}
	for i := 0; i < 10; i++ {
		joinIds = append(joinIds, i)
	}

	featureNameMap := map[string]constants.FSType{
		"age":           constants.FS_INT32,
		"gender":        constants.FS_STRING,
		"follow_cnt":    constants.FS_INT64,
		"register_time": constants.FS_INT64,
		"is_active":     constants.FS_BOOLEAN,
		"score":         constants.FS_DOUBLE,
	}

	fsClient := getRedisFsClient(t)
	rows, err := common.RandomKVFeatures(joinIdName, featureNameMap, joinIds)
	if err != nil {
		t.Fatalf("RandomKVFeatures failed, err: %v", err)
	}
	if err := common.SeedKVFeatures(fsClient, redisProjectName, featureViewName, joinIdName, rows); err != nil {
		t.Fatalf("SeedKVFeatures failed, err: %v", err)
	}

	result, err := common.ReadKVFeaturesFromFeatureView(fsClient, redisProjectName, featureViewName, joinIds, []string{"*"})
	if err != nil {
		t.Errorf("Failed to read features from feature view: %v", err)
	}

	correct, err := common.CheckResults(joinIdName, result, rows)
	if err != nil {
		t.Errorf("Failed to check results: %v", err)
	}
	if !correct {
		t.Logf("Results: %v", result)
		t.Errorf("Results are not correct")
	}
}

func TestRedisReadAllTypeKVFeatures(t *testing.T) {
	featureViewName := "type_table"
	joinIdName := "user_id"

	joinIds := []interface{}{}
	for i := 0; i < 10; i++ {
		joinIds = append(joinIds, i)
	}

	featureNameMap := map[string]constants.FSType{
		"field_int32":             constants.FS_INT32,
		"field_int64":             constants.FS_INT64,
		"field_float":             constants.FS_FLOAT,
		"field_double":            constants.FS_DOUBLE,
		"field_string":            constants.FS_STRING,
		"field_bool":              constants.FS_BOOLEAN,
		"field_array_int32":       constants.FS_ARRAY_INT32,
		"field_array_int64":       constants.FS_ARRAY_INT64,
		"field_array_float":       constants.FS_ARRAY_FLOAT,
		"field_array_double":      constants.FS_ARRAY_DOUBLE,
		"field_array_string":      constants.FS_ARRAY_STRING,
		"field_map_string_int32":  constants.FS_MAP_STRING_INT32,
		"field_map_string_double": constants.FS_MAP_STRING_DOUBLE,
		"field_map_string_string": constants.FS_MAP_STRING_STRING,
	}

	fsClient := getRedisFsClient(t)
	rows, err := common.RandomKVFeatures(joinIdName, featureNameMap, joinIds)
	if err != nil {
		t.Fatalf("RandomKVFeatures failed, err: %v", err)
	}
	if err := common.SeedKVFeatures(fsClient, redisProjectName, featureViewName, joinIdName, rows); err != nil {
		t.Fatalf("SeedKVFeatures failed, err: %v", err)
	}
	time.Sleep(time.Second)

	result, err := common.ReadKVFeaturesFromFeatureView(fsClient, redisProjectName, featureViewName, joinIds, []string{"*"})
	if err != nil {
		t.Errorf("Failed to read features from feature view: %v", err)
	}

	correct, err := common.CheckResults(joinIdName, result, rows)
	if err != nil {
		t.Errorf("Failed to check results: %v", err)
	}
	if !correct {
		t.Logf("Results: %v", result)
		t.Errorf("Results are not correct")
	}
}

func TestRedisReadPartialFields(t *testing.T) {
	featureViewName := "user_table"
	joinIdName := "user_id"

	joinIds := []interface{}{}
	for i := 100; i < 110; i++ {
		joinIds = append(joinIds, i)
	}

	featureNameMap := map[string]constants.FSType{
		"age":           constants.FS_INT32,
		"gender":        constants.FS_STRING,
		"follow_cnt":    constants.FS_INT64,
		"register_time": constants.FS_INT64,
		"is_active":     constants.FS_BOOLEAN,
		"score":         constants.FS_DOUBLE,
	}

	fsClient := getRedisFsClient(t)
	rows, err := common.RandomKVFeatures(joinIdName, featureNameMap, joinIds)
	if err != nil {
		t.Fatalf("RandomKVFeatures failed, err: %v", err)
	}
	if err := common.SeedKVFeatures(fsClient, redisProjectName, featureViewName, joinIdName, rows); err != nil {
		t.Fatalf("SeedKVFeatures failed, err: %v", err)
	}

	result, err := common.ReadKVFeaturesFromFeatureView(fsClient, redisProjectName, featureViewName, joinIds, []string{"age", "gender"})
	if err != nil {
		t.Errorf("Failed to read features from feature view: %v", err)
	}

	for _, row := range result {
		if len(row) != 3 {
			t.Errorf("expected join id, age and gender, got %v", row)
		}
	}
	correct, err := common.CheckResults(joinIdName, result, rows)
	if err != nil {
		t.Errorf("Failed to check results: %v", err)
	}
	if !correct {
		t.Logf("Results: %v", result)
		t.Errorf("Results are not correct")
	}
}
