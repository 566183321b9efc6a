package common

import (
	"context"
	"errors"

	"github.com/featuremesh/featuremesh-go-sdk/featurestore"
)

func ReadKVFeaturesFromFeatureView(client *featurestore.FeatureStoreClient, projectName, featureViewName string, joinIds []interface{}, features []string) ([]map[string]interface{}, error) {
	project, err := client.GetProject(projectName)
	if err != nil {
		return nil, err
	}
	featureView := project.GetFeatureView(featureViewName)
	if featureView == nil {
		return nil, errors.New("feature view not found")
	}

	return featureView.GetOnlineFeatures(joinIds, features, nil)
}

// ReadOnlineFeatures goes through the serving surface, so feature refs may
// name on-demand feature views as well as plain feature views.
func ReadOnlineFeatures(client *featurestore.FeatureStoreClient, projectName string, featureRefs []string, entityRows []map[string]interface{}, fullFeatureNames bool) ([]map[string]interface{}, error) {
	return client.GetOnlineFeatures(context.Background(), projectName, featureRefs, entityRows, fullFeatureNames)
}
