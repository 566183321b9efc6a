package testcases

import (
	"testing"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/domain"
	"github.com/featuremesh/featuremesh-go-sdk/frame"
	"github.com/featuremesh/featuremesh-go-sdk/tests/common"
	"github.com/featuremesh/featuremesh-go-sdk/utils"
)

// The redis test project registers an on-demand feature view "user_activity"
// over user_table[age, follow_cnt] plus a request source with visit_cnt. Its
// transformation is the function "user_activity_calc" declared below, which
// produces activity_score (double).
func init() {
	domain.RegisterRowFunction("user_activity_calc", func(input *frame.Frame) (*frame.Frame, error) {
		ages, _ := input.Column("age")
		followCnts, _ := input.Column("follow_cnt")
		visitCnts, _ := input.Column("visit_cnt")

		scores := make([]interface{}, input.Len())
		for i := range scores {
			scores[i] = activityScore(ages[i], followCnts[i], visitCnts[i])
		}

		output := input.Copy()
		if err := output.AddColumn("activity_score", scores); err != nil {
			return nil, err
		}
		return output, nil
	})
}

func activityScore(age, followCnt, visitCnt interface{}) float64 {
	return utils.ToFloat64(age, 0)*0.1 + utils.ToFloat64(followCnt, 0) + utils.ToFloat64(visitCnt, 0)
}

func TestListOnDemandFeatureViews(t *testing.T) {
	fsClient := getRedisFsClient(t)

	views, err := fsClient.ListOnDemandFeatureViews(redisProjectName, true)
	if err != nil {
		t.Fatalf("ListOnDemandFeatureViews failed, err: %v", err)
	}

	found := false
	for _, view := range views {
		if view.GetName() == "user_activity" {
			found = true
		}
	}
	if !found {
		t.Errorf("on-demand feature view user_activity not registered, got %d views", len(views))
	}
}

func TestGetRequestDataSchema(t *testing.T) {
	fsClient := getRedisFsClient(t)

	schema, err := fsClient.GetRequestDataSchema(redisProjectName, "user_activity")
	if err != nil {
		t.Fatalf("GetRequestDataSchema failed, err: %v", err)
	}
	if _, ok := schema["visit_cnt"]; !ok {
		t.Errorf("request data schema missing visit_cnt: %v", schema)
	}
}

func TestGetRequestedOnDemandFeatureViews(t *testing.T) {
	fsClient := getRedisFsClient(t)

	views, err := fsClient.GetRequestedOnDemandFeatureViews(redisProjectName, []string{"user_activity:activity_score", "user_table:age"})
	if err != nil {
		t.Fatalf("GetRequestedOnDemandFeatureViews failed, err: %v", err)
	}
	if len(views) != 1 || views[0].GetName() != "user_activity" {
		t.Errorf("expected the user_activity view, got %v", views)
	}
}

func TestServeOnDemandFeatures(t *testing.T) {
	featureViewName := "user_table"
	joinIdName := "user_id"

	joinIds := []interface{}{}
	for i := 200; i < 210; i++ {
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

	entityRows := make([]map[string]interface{}, 0, len(joinIds))
	expected := make([]map[string]interface{}, 0, len(joinIds))
	for i, joinId := range joinIds {
		visitCnt := int64(i * 3)
		entityRows = append(entityRows, map[string]interface{}{joinIdName: joinId, "visit_cnt": visitCnt})
		expected = append(expected, map[string]interface{}{
			joinIdName:       joinId,
			"visit_cnt":      visitCnt,
			"age":            rows[i]["age"],
			"activity_score": activityScore(rows[i]["age"], rows[i]["follow_cnt"], visitCnt),
		})
	}

	result, err := common.ReadOnlineFeatures(fsClient, redisProjectName,
		[]string{"user_table:age", "user_activity:activity_score"}, entityRows, false)
	if err != nil {
		t.Fatalf("ReadOnlineFeatures failed, err: %v", err)
	}

	correct, err := common.CheckResults(joinIdName, result, expected)
	if err != nil {
		t.Errorf("Failed to check results: %v", err)
	}
	if !correct {
		t.Logf("Results: %v", result)
		t.Errorf("Results are not correct")
	}

	// full feature names qualify every output column
	fullResult, err := common.ReadOnlineFeatures(fsClient, redisProjectName,
		[]string{"user_activity:activity_score"}, entityRows, true)
	if err != nil {
		t.Fatalf("ReadOnlineFeatures failed, err: %v", err)
	}
	for _, row := range fullResult {
		if _, ok := row["user_activity__activity_score"]; !ok {
			t.Errorf("expected qualified output column, got %v", row)
		}
	}
}
