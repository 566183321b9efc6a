package testcases

import (
	"os"
	"testing"

	"github.com/featuremesh/featuremesh-go-sdk/featurestore"
)

// The cases below run against a live registry and its online stores. Project
// names follow the shared test fixtures.
var (
	registryAddress = os.Getenv("FEATUREMESH_ADDRESS")
	registryToken   = os.Getenv("FEATUREMESH_TOKEN")

	redisProjectName    = "redis_test_case"
	mysqlProjectName    = "mysql_test_case"
	postgresProjectName = "pg_test_case"
)

func initClient(t *testing.T, projectName string) *featurestore.FeatureStoreClient {
	if registryAddress == "" || registryToken == "" {
		t.Skip("FEATUREMESH_ADDRESS / FEATUREMESH_TOKEN not set")
	}
	client, err := featurestore.NewFeatureStoreClient(registryAddress, registryToken, projectName,
		featurestore.WithTestMode(), featurestore.WithNoProjectRefresh())
	if err != nil {
		t.Fatalf("init client for project %s error: %v", projectName, err)
	}
	return client
}

var redisFsClient *featurestore.FeatureStoreClient

func getRedisFsClient(t *testing.T) *featurestore.FeatureStoreClient {
	if redisFsClient == nil {
		redisFsClient = initClient(t, redisProjectName)
	}
	return redisFsClient
}

var mysqlFsClient *featurestore.FeatureStoreClient

func getMysqlFsClient(t *testing.T) *featurestore.FeatureStoreClient {
	if mysqlFsClient == nil {
		mysqlFsClient = initClient(t, mysqlProjectName)
	}
	return mysqlFsClient
}

var postgresFsClient *featurestore.FeatureStoreClient

func getPostgresFsClient(t *testing.T) *featurestore.FeatureStoreClient {
	if postgresFsClient == nil {
		postgresFsClient = initClient(t, postgresProjectName)
	}
	return postgresFsClient
}
