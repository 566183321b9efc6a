package testcases

import (
	"testing"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/tests/common"
)

func TestPostgresReadKVFeatures(t *testing.T) {
	featureViewName := "item_table"
	joinIdName := "item_id"

	joinIds := []interface{}{}
	for i := 0; i < 10; i++ {
		joinIds = append(joinIds, i)
	}

	featureNameMap := map[string]constants.FSType{
		"price":    constants.FS_DOUBLE,
		"brand":    constants.FS_STRING,
		"click_7d": constants.FS_INT64,
		"in_stock": constants.FS_BOOLEAN,
	}

	fsClient := getPostgresFsClient(t)
	rows, err := common.RandomKVFeatures(joinIdName, featureNameMap, joinIds)
	if err != nil {
		t.Fatalf("RandomKVFeatures failed, err: %v", err)
	}
	if err := common.SeedKVFeatures(fsClient, postgresProjectName, featureViewName, joinIdName, rows); err != nil {
		t.Fatalf("SeedKVFeatures failed, err: %v", err)
	}

	result, err := common.ReadKVFeaturesFromFeatureView(fsClient, postgresProjectName, featureViewName, joinIds, []string{"*"})
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
