package domain

import (
	"fmt"

	"github.com/featuremesh/featuremesh-go-sdk/api"
)

type PostgresOnlineStore struct {
	*api.Datasource
}

func (s *PostgresOnlineStore) GetTableName(featureView *BaseFeatureView) string {
	project := featureView.Project
	return fmt.Sprintf("%s_%s_online", project.ProjectName, featureView.Name)
}

func (s *PostgresOnlineStore) GetDatasourceName() string {
	return s.Name
}
