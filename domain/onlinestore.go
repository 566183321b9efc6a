package domain

type OnlineStore interface {
	GetTableName(featureView *BaseFeatureView) string
	GetDatasourceName() string
}
