package api

import (
	"fmt"
)

type DatasourceApiService service

/*
DatasourceApiService Get datasource By datasource_id
  - @param datasourceId

@return GetDatasourceResponse
*/
func (a *DatasourceApiService) DatasourceDatasourceIdGet(datasourceId int) (GetDatasourceResponse, error) {
	var (
		localVarReturnValue GetDatasourceResponse
	)

	err := a.client.get(fmt.Sprintf("/api/v1/datasources/%d", datasourceId), nil, &localVarReturnValue)
	if err != nil {
		return localVarReturnValue, err
	}
	if localVarReturnValue.Datasource != nil {
		localVarReturnValue.Datasource.DatasourceId = datasourceId
	}

	return localVarReturnValue, nil
}
