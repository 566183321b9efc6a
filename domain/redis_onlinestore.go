package domain

import (
	"fmt"

	"github.com/featuremesh/featuremesh-go-sdk/api"
	"github.com/featuremesh/featuremesh-go-sdk/utils"
)

type RedisOnlineStore struct {
	*api.Datasource
}

// GetTableName returns the redis key prefix of the feature view. The full
// table name is hashed so keys stay short.
func (s *RedisOnlineStore) GetTableName(featureView *BaseFeatureView) string {
	project := featureView.Project
	name := fmt.Sprintf("%s_%s_online", project.ProjectName, featureView.Name)
	md5 := utils.Md5(name)
	return md5[:4] + "_"
}

func (s *RedisOnlineStore) GetDatasourceName() string {
	return s.Name
}
