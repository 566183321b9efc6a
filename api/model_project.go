package api

type Project struct {
	ProjectId            int    `json:"project_id"`
	ProjectName          string `json:"project_name"`
	Description          string `json:"description,omitempty"`
	OnlineDatasourceType string `json:"online_datasource_type"`
	OnlineDatasourceId   int    `json:"online_datasource_id"`

	OnlineDataSource *Datasource `json:"-"`
}
