package api

import (
	"net/url"
	"strconv"
)

type FeatureViewApiService service

/*
FeatureViewApiService List FeatureViews
  - @param pagesize
  - @param pagenumber
  - @param projectId

@return ListFeatureViewsResponse
*/
func (a *FeatureViewApiService) ListFeatureViews(pagesize, pagenumber int32, projectId string) (ListFeatureViewsResponse, error) {
	var (
		localVarReturnValue ListFeatureViewsResponse
	)

	query := url.Values{}
	query.Set("project_id", projectId)
	query.Set("page_size", strconv.Itoa(int(pagesize)))
	query.Set("page_number", strconv.Itoa(int(pagenumber)))

	err := a.client.get("/api/v1/featureviews", query, &localVarReturnValue)
	return localVarReturnValue, err
}

/*
FeatureViewApiService Get FeatureView By ID
  - @param featureViewId

@return GetFeatureViewResponse
*/
func (a *FeatureViewApiService) GetFeatureViewByID(featureViewId string) (GetFeatureViewResponse, error) {
	var (
		localVarReturnValue GetFeatureViewResponse
	)

	err := a.client.get("/api/v1/featureviews/"+featureViewId, nil, &localVarReturnValue)
	return localVarReturnValue, err
}
