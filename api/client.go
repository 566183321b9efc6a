package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// APIClient talks to the feature registry service. Every service shares the
// same underlying HTTP client and configuration.
type APIClient struct {
	cfg        *Configuration
	httpClient *http.Client

	common service

	DatasourceApi          *DatasourceApiService
	FeatureEntityApi       *FeatureEntityApiService
	FeatureViewApi         *FeatureViewApiService
	InstanceApi            *InstanceApiService
	OnDemandFeatureViewApi *OnDemandFeatureViewApiService
	ProjectApi             *ProjectApiService
}

type service struct {
	client *APIClient
}

func NewAPIClient(cfg *Configuration) *APIClient {
	c := &APIClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	c.common.client = c

	c.DatasourceApi = (*DatasourceApiService)(&c.common)
	c.FeatureEntityApi = (*FeatureEntityApiService)(&c.common)
	c.FeatureViewApi = (*FeatureViewApiService)(&c.common)
	c.InstanceApi = (*InstanceApiService)(&c.common)
	c.OnDemandFeatureViewApi = (*OnDemandFeatureViewApiService)(&c.common)
	c.ProjectApi = (*ProjectApiService)(&c.common)

	return c
}

func (c *APIClient) GetConfig() *Configuration {
	return c.cfg
}

func (c *APIClient) get(path string, query url.Values, localVarReturnValue interface{}) error {
	localVarURL := c.cfg.BaseURL() + path
	if len(query) > 0 {
		localVarURL += "?" + query.Encode()
	}

	request, err := http.NewRequest(http.MethodGet, localVarURL, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.Token != "" {
		request.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("request %s failed, status:%d, body:%s", path, response.StatusCode, string(body))
	}
	if localVarReturnValue == nil {
		return nil
	}

	return json.Unmarshal(body, localVarReturnValue)
}
