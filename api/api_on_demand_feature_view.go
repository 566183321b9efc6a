package api

import (
	"net/url"
	"strconv"

	"github.com/antihax/optional"
)

type OnDemandFeatureViewApiService service

type OnDemandFeatureViewApiListOpts struct {
	Owner optional.String
	Tag   optional.String
}

/*
OnDemandFeatureViewApiService List OnDemandFeatureViews
  - @param pagesize
  - @param pagenumber
  - @param projectId
  - @param optional nil or *OnDemandFeatureViewApiListOpts - Optional Parameters:
  - @param "Owner" (optional.String) - filter by owner
  - @param "Tag" (optional.String) - filter by tag, formatted key:value

@return ListOnDemandFeatureViewsResponse
*/
func (a *OnDemandFeatureViewApiService) ListOnDemandFeatureViews(pagesize, pagenumber int32, projectId string, opts *OnDemandFeatureViewApiListOpts) (ListOnDemandFeatureViewsResponse, error) {
	var (
		localVarReturnValue ListOnDemandFeatureViewsResponse
	)

	query := url.Values{}
	query.Set("project_id", projectId)
	query.Set("page_size", strconv.Itoa(int(pagesize)))
	query.Set("page_number", strconv.Itoa(int(pagenumber)))
	if opts != nil && opts.Owner.IsSet() {
		query.Set("owner", opts.Owner.Value())
	}
	if opts != nil && opts.Tag.IsSet() {
		query.Set("tag", opts.Tag.Value())
	}

	err := a.client.get("/api/v1/ondemandfeatureviews", query, &localVarReturnValue)
	return localVarReturnValue, err
}
