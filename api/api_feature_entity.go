package api

import (
	"net/url"
)

type FeatureEntityApiService service

/*
FeatureEntityApiService List FeatureEntities
  - @param projectId

@return ListFeatureEntitiesResponse
*/
func (a *FeatureEntityApiService) ListFeatureEntities(projectId string) (ListFeatureEntitiesResponse, error) {
	var (
		localVarReturnValue ListFeatureEntitiesResponse
	)

	query := url.Values{}
	query.Set("project_id", projectId)

	err := a.client.get("/api/v1/featureentities", query, &localVarReturnValue)
	return localVarReturnValue, err
}
