package dao

import (
	"github.com/featuremesh/featuremesh-go-sdk/constants"
)

type FeatureViewDao interface {
	GetFeatures(keys []interface{}, selectFields []string) ([]map[string]interface{}, error)
}

func NewFeatureViewDao(config DaoConfig) FeatureViewDao {
	if config.DatasourceType == constants.Datasource_Type_Redis {
		return NewFeatureViewRedisDao(config)
	} else if config.DatasourceType == constants.Datasource_Type_Mysql {
		return NewFeatureViewMysqlDao(config)
	} else if config.DatasourceType == constants.Datasource_Type_Postgres {
		return NewFeatureViewPostgresDao(config)
	}

	panic("not found FeatureViewDao implement")
}
