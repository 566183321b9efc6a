package api

type ListProjectsResponse struct {
	TotalCount int        `json:"total_count"`
	Projects   []*Project `json:"projects"`
}

type GetDatasourceResponse struct {
	Datasource *Datasource `json:"datasource"`
}

type ListFeatureEntitiesResponse struct {
	TotalCount      int              `json:"total_count"`
	FeatureEntities []*FeatureEntity `json:"feature_entities"`
}

type ListFeatureViewsResponse struct {
	TotalCount   int            `json:"total_count"`
	FeatureViews []*FeatureView `json:"feature_views"`
}

type GetFeatureViewResponse struct {
	FeatureView *FeatureView `json:"feature_view"`
}

type ListOnDemandFeatureViewsResponse struct {
	TotalCount           int                    `json:"total_count"`
	OnDemandFeatureViews []*OnDemandFeatureView `json:"on_demand_feature_views"`
}
