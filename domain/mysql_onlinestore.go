package domain

import (
	"fmt"

	"github.com/featuremesh/featuremesh-go-sdk/api"
)

type MysqlOnlineStore struct {
	*api.Datasource
}

func (s *MysqlOnlineStore) GetTableName(featureView *BaseFeatureView) string {
	project := featureView.Project
	return fmt.Sprintf("%s_%s_online", project.ProjectName, featureView.Name)
}

func (s *MysqlOnlineStore) GetDatasourceName() string {
	return s.Name
}
