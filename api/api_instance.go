package api

type InstanceApiService service

/*
InstanceApiService Check the registry instance is reachable and the token is
accepted.
*/
func (a *InstanceApiService) GetInstance() error {
	return a.client.get("/api/v1/instance", nil, nil)
}
