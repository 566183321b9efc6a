package api

type ProjectApiService service

/*
ProjectApiService List Projects

@return ListProjectsResponse
*/
func (a *ProjectApiService) ListProjects() (ListProjectsResponse, error) {
	var (
		localVarReturnValue ListProjectsResponse
	)

	err := a.client.get("/api/v1/projects", nil, &localVarReturnValue)
	return localVarReturnValue, err
}
