package domain

import (
	"github.com/featuremesh/featuremesh-go-sdk/api"
	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/datasource/mysqldb"
	"github.com/featuremesh/featuremesh-go-sdk/datasource/postgresdb"
	"github.com/featuremesh/featuremesh-go-sdk/datasource/redisdb"
)

type Project struct {
	*api.Project
	OnlineStore            OnlineStore
	FeatureViewMap         map[string]FeatureView
	FeatureEntityMap       map[string]*FeatureEntity
	OnDemandFeatureViewMap map[string]*OnDemandFeatureView
}

func NewProject(p *api.Project, isInitClient bool) *Project {
	project := Project{
		Project:                p,
		FeatureViewMap:         make(map[string]FeatureView),
		FeatureEntityMap:       make(map[string]*FeatureEntity),
		OnDemandFeatureViewMap: make(map[string]*OnDemandFeatureView),
	}

	switch p.OnlineDatasourceType {
	case constants.Datasource_Type_Redis:
		onlineStore := &RedisOnlineStore{
			Datasource: p.OnlineDataSource,
		}
		if isInitClient {
			dsn := onlineStore.Datasource.GenerateDSN(constants.Datasource_Type_Redis)
			redisdb.RegisterRedis(onlineStore.Name, dsn)
		}
		project.OnlineStore = onlineStore
	case constants.Datasource_Type_Mysql:
		onlineStore := &MysqlOnlineStore{
			Datasource: p.OnlineDataSource,
		}
		if isInitClient {
			dsn := onlineStore.Datasource.GenerateDSN(constants.Datasource_Type_Mysql)
			mysqldb.RegisterMysql(onlineStore.Name, dsn)
		}
		project.OnlineStore = onlineStore
	case constants.Datasource_Type_Postgres:
		onlineStore := &PostgresOnlineStore{
			Datasource: p.OnlineDataSource,
		}
		if isInitClient {
			dsn := onlineStore.Datasource.GenerateDSN(constants.Datasource_Type_Postgres)
			postgresdb.RegisterPostgres(onlineStore.Name, dsn)
		}
		project.OnlineStore = onlineStore
	default:
		panic("not support onlinestore type")
	}

	return &project
}

func (p *Project) GetFeatureView(name string) FeatureView {
	return p.FeatureViewMap[name]
}

func (p *Project) GetFeatureEntity(name string) *FeatureEntity {
	return p.FeatureEntityMap[name]
}

func (p *Project) GetOnDemandFeatureView(name string) *OnDemandFeatureView {
	return p.OnDemandFeatureViewMap[name]
}

// ListOnDemandFeatureViews returns the registered on-demand feature views.
func (p *Project) ListOnDemandFeatureViews() []*OnDemandFeatureView {
	views := make([]*OnDemandFeatureView, 0, len(p.OnDemandFeatureViewMap))
	for _, view := range p.OnDemandFeatureViewMap {
		views = append(views, view)
	}
	return views
}
