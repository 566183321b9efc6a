package domain

import (
	"fmt"

	"github.com/featuremesh/featuremesh-go-sdk/api"
	"github.com/featuremesh/featuremesh-go-sdk/constants"
	"github.com/featuremesh/featuremesh-go-sdk/dao"
)

type BaseFeatureView struct {
	*api.FeatureView
	Project         *Project
	FeatureEntity   *FeatureEntity
	featureFields   []string
	primaryKeyField api.FeatureViewFields
	eventTimeField  api.FeatureViewFields
	featureViewDao  dao.FeatureViewDao
}

func NewBaseFeatureView(view *api.FeatureView, p *Project, entity *FeatureEntity) *BaseFeatureView {
	featureView := &BaseFeatureView{
		FeatureView:   view,
		Project:       p,
		FeatureEntity: entity,
	}
	for _, field := range view.Fields {
		if field.IsEventTime {
			featureView.eventTimeField = *field
			featureView.featureFields = append(featureView.featureFields, field.Name)
		} else if field.IsPartition {
			continue
		} else if field.IsPrimaryKey {
			featureView.primaryKeyField = *field
		} else {
			featureView.featureFields = append(featureView.featureFields, field.Name)
		}
	}

	fieldTypeMap := make(map[string]constants.FSType, len(view.Fields))
	for _, field := range view.Fields {
		if field.IsPartition {
			continue
		}
		fieldTypeMap[field.Name] = field.Type
	}

	daoConfig := dao.DaoConfig{
		DatasourceType:  p.OnlineDatasourceType,
		PrimaryKeyField: featureView.primaryKeyField.Name,
		EventTimeField:  featureView.eventTimeField.Name,
		TTL:             view.Ttl,
		FieldTypeMap:    fieldTypeMap,
		Fields:          featureView.featureFields,
	}

	switch p.OnlineDatasourceType {
	case constants.Datasource_Type_Redis:
		daoConfig.RedisPrefix = p.OnlineStore.GetTableName(featureView)
		daoConfig.RedisName = p.OnlineStore.GetDatasourceName()
	case constants.Datasource_Type_Mysql:
		daoConfig.MysqlTableName = p.OnlineStore.GetTableName(featureView)
		daoConfig.MysqlName = p.OnlineStore.GetDatasourceName()
	case constants.Datasource_Type_Postgres:
		daoConfig.PostgresTableName = p.OnlineStore.GetTableName(featureView)
		daoConfig.PostgresName = p.OnlineStore.GetDatasourceName()
	}

	featureViewDao := dao.NewFeatureViewDao(daoConfig)
	featureView.featureViewDao = featureViewDao

	return featureView
}

func (f *BaseFeatureView) GetOnlineFeatures(joinIds []interface{}, features []string, alias map[string]string) ([]map[string]interface{}, error) {
	var selectFields []string
	selectFields = append(selectFields, f.primaryKeyField.Name)
	seenFields := make(map[string]bool)
	seenFields[f.primaryKeyField.Name] = true
	for _, featureName := range features {
		if featureName == "*" {
			selectFields = append(selectFields, f.featureFields...)
		} else {
			if seenFields[featureName] {
				continue
			}
			found := false
			for _, field := range f.featureFields {
				if field == featureName {
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("feature name :%s not found in the featureview fields", featureName)
			}

			selectFields = append(selectFields, featureName)
			seenFields[featureName] = true
		}
	}

	for featureName := range alias {
		found := false

		for _, field := range f.featureFields {
			if field == featureName {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("feature name :%s not found in the featureview fields", featureName)
		}
	}

	featureResult, err := f.featureViewDao.GetFeatures(joinIds, selectFields)

	if f.primaryKeyField.Name != f.FeatureEntity.FeatureEntityJoinid {
		for _, featureMap := range featureResult {
			featureMap[f.FeatureEntity.FeatureEntityJoinid] = featureMap[f.primaryKeyField.Name]
			delete(featureMap, f.primaryKeyField.Name)
		}
	}

	for featureName, aliasName := range alias {
		for _, featureMap := range featureResult {
			if _, ok := featureMap[featureName]; ok {
				featureMap[aliasName] = featureMap[featureName]
				delete(featureMap, featureName)
			}
		}
	}

	return featureResult, err

}

func (f *BaseFeatureView) GetName() string {
	return f.Name
}

func (f *BaseFeatureView) GetFeatureEntityName() string {
	return f.FeatureEntityName
}

func (f *BaseFeatureView) GetType() string {
	return f.Type
}

func (f *BaseFeatureView) GetFields() []api.FeatureViewFields {
	fields := make([]api.FeatureViewFields, len(f.Fields))
	for i, field := range f.Fields {
		if field != nil {
			fields[i] = *field
		}
	}
	return fields
}

func (f *BaseFeatureView) GetTTL() int {
	return f.Ttl
}

// Projection returns the default projection over the view's feature
// fields, so the view can be declared as an on-demand source.
func (f *BaseFeatureView) Projection() *FeatureViewProjection {
	features := make([]Field, 0, len(f.featureFields))
	for _, name := range f.featureFields {
		for _, field := range f.Fields {
			if field.Name == name {
				features = append(features, Field{Name: field.Name, Type: field.Type})
				break
			}
		}
	}
	return &FeatureViewProjection{
		Name:     f.Name,
		Features: features,
	}
}
