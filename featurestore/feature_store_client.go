package featurestore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/featuremesh/featuremesh-go-sdk/api"
	"github.com/featuremesh/featuremesh-go-sdk/domain"
)

type ClientOption func(c *FeatureStoreClient)

func WithLogger(l Logger) ClientOption {
	return func(e *FeatureStoreClient) {
		e.Logger = l
	}
}

func WithErrorLogger(l Logger) ClientOption {
	return func(e *FeatureStoreClient) {
		e.ErrorLogger = l
	}
}

// WithDomain set custom domain
func WithDomain(domain string) ClientOption {
	return func(e *FeatureStoreClient) {
		e.domain = domain
	}
}

// WithNoProjectRefresh disables the background project data refresh.
func WithNoProjectRefresh() ClientOption {
	return func(e *FeatureStoreClient) {
		e.loopLoadData = false
	}
}

func WithNoDatasourceInitClient() ClientOption {
	return func(e *FeatureStoreClient) {
		e.datasourceInitClient = false
	}
}

func WithTestMode() ClientOption {
	return func(e *FeatureStoreClient) {
		e.testMode = true
	}
}

// WithRegistrySnapshot makes the client persist loaded project data to
// path and fall back to it when the registry is unreachable.
func WithRegistrySnapshot(path string) ClientOption {
	return func(e *FeatureStoreClient) {
		e.snapshotPath = path
	}
}

type FeatureStoreClient struct {
	// loopLoadData flag to invoke loopLoadProjectData function
	loopLoadData bool

	// datasourceInitClient flag to init onlinestore client
	datasourceInitClient bool

	domain string

	client *api.APIClient

	projectMap map[string]*domain.Project

	// snapshotPath is the registry snapshot location, empty disables it
	snapshotPath string

	// Logger specifies a logger used to report internal changes within the writer
	Logger Logger

	// ErrorLogger is the logger to report errors
	ErrorLogger Logger

	// testMode marks datasources so they connect over public addresses
	testMode bool
}

func NewFeatureStoreClient(address, token, projectName string, opts ...ClientOption) (*FeatureStoreClient, error) {
	client := FeatureStoreClient{
		projectMap:           make(map[string]*domain.Project, 0),
		loopLoadData:         true,
		datasourceInitClient: true,
	}

	for _, opt := range opts {
		opt(&client)
	}

	if client.Logger == nil {
		client.Logger = emptyLogger{}
	}

	cfg := api.NewConfiguration(address, token, projectName)

	if client.domain != "" {
		cfg.SetDomain(client.domain)
	}

	apiClient := api.NewAPIClient(cfg)

	client.client = apiClient

	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := client.LoadProjectData(); err != nil {
		return nil, err
	}

	if client.loopLoadData {
		go client.loopLoadProjectData()
	}

	return &client, nil
}

// Validate check the FeatureStoreClient value
func (e *FeatureStoreClient) Validate() error {
	// check instance
	if err := e.client.InstanceApi.GetInstance(); err != nil {
		return err
	}

	return nil
}

func (c *FeatureStoreClient) GetProject(name string) (*domain.Project, error) {
	project, ok := c.projectMap[name]
	if ok {
		return project, nil
	}

	return nil, fmt.Errorf("not found project, name:%s", name)
}

func (c *FeatureStoreClient) logError(err error) {
	if c.ErrorLogger != nil {
		c.ErrorLogger.Printf(err.Error())
		return
	}

	if c.Logger != nil {
		c.Logger.Printf(err.Error())
	}
}

func (c *FeatureStoreClient) logInfo(format string, v ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, v...)
	}
}

// LoadProjectData fetches project data from the registry and rebuilds the
// project cache. When a snapshot path is configured, a successful load is
// persisted and an unreachable registry falls back to the last snapshot.
func (c *FeatureStoreClient) LoadProjectData() error {
	snapshot, err := c.fetchProjectData()
	if err != nil {
		if c.snapshotPath != "" {
			restored, restoreErr := readRegistrySnapshot(c.snapshotPath)
			if restoreErr != nil {
				c.logError(fmt.Errorf("read registry snapshot error, err=%v", restoreErr))
				return err
			}
			c.logInfo("registry unreachable, serving project data from snapshot %s", c.snapshotPath)
			snapshot = restored
		} else {
			return err
		}
	} else if c.snapshotPath != "" {
		if writeErr := writeRegistrySnapshot(c.snapshotPath, snapshot); writeErr != nil {
			c.logError(fmt.Errorf("write registry snapshot error, err=%v", writeErr))
		}
	}

	projectData := c.buildProjectData(snapshot)
	if len(projectData) > 0 {
		c.projectMap = projectData
	}

	return nil
}

// fetchProjectData pulls the configured project with its datasource,
// entities and view definitions from the registry.
func (c *FeatureStoreClient) fetchProjectData() (*registrySnapshot, error) {
	snapshot := &registrySnapshot{}

	listProjectsResponse, err := c.client.ProjectApi.ListProjects()
	if err != nil {
		c.logError(fmt.Errorf("list projects error, err=%v", err))
		return nil, err
	}

	for _, p := range listProjectsResponse.Projects {
		if p.ProjectName != c.client.GetConfig().ProjectName {
			continue
		}
		// get datasource
		getDataSourceResponse, err := c.client.DatasourceApi.DatasourceDatasourceIdGet(p.OnlineDatasourceId)
		if err != nil {
			c.logError(fmt.Errorf("get datasource error, err=%v", err))
			return nil, err
		}

		p.OnlineDataSource = getDataSourceResponse.Datasource
		p.OnlineDataSource.TestMode = c.testMode

		projectEntry := &projectSnapshot{Project: p}

		// get feature entities
		listFeatureEntitiesResponse, err := c.client.FeatureEntityApi.ListFeatureEntities(strconv.Itoa(p.ProjectId))
		if err != nil {
			c.logError(fmt.Errorf("list feature entities error, err=%v", err))
			return nil, err
		}
		projectEntry.FeatureEntities = listFeatureEntitiesResponse.FeatureEntities

		var (
			pagesize   = int32(100)
			pagenumber = int32(1)
		)
		// get feature views
		for {
			listFeatureViews, err := c.client.FeatureViewApi.ListFeatureViews(pagesize, pagenumber, strconv.Itoa(p.ProjectId))
			if err != nil {
				c.logError(fmt.Errorf("list feature views error, err=%v", err))
				return nil, err
			}

			for _, view := range listFeatureViews.FeatureViews {
				getFeatureViewResponse, err := c.client.FeatureViewApi.GetFeatureViewByID(strconv.Itoa(view.FeatureViewId))
				if err != nil {
					c.logError(fmt.Errorf("get feature view error, err=%v", err))
					return nil, err
				}
				projectEntry.FeatureViews = append(projectEntry.FeatureViews, getFeatureViewResponse.FeatureView)
			}

			if len(listFeatureViews.FeatureViews) == 0 || int(pagesize*pagenumber) > listFeatureViews.TotalCount {
				break
			}

			pagenumber++
		}

		pagenumber = 1
		// get on-demand feature views
		for {
			listOnDemandFeatureViews, err := c.client.OnDemandFeatureViewApi.ListOnDemandFeatureViews(pagesize, pagenumber, strconv.Itoa(p.ProjectId), nil)
			if err != nil {
				c.logError(fmt.Errorf("list on demand feature views error, err=%v", err))
				return nil, err
			}

			projectEntry.OnDemandFeatureViews = append(projectEntry.OnDemandFeatureViews, listOnDemandFeatureViews.OnDemandFeatureViews...)

			if len(listOnDemandFeatureViews.OnDemandFeatureViews) == 0 || int(pagesize*pagenumber) > listOnDemandFeatureViews.TotalCount {
				break
			}

			pagenumber++
		}

		snapshot.Projects = append(snapshot.Projects, projectEntry)
	}

	return snapshot, nil
}

// buildProjectData lifts fetched or restored registry payloads into the
// domain project map.
func (c *FeatureStoreClient) buildProjectData(snapshot *registrySnapshot) map[string]*domain.Project {
	projectData := make(map[string]*domain.Project, len(snapshot.Projects))

	for _, entry := range snapshot.Projects {
		project := domain.NewProject(entry.Project, c.datasourceInitClient)
		projectData[project.ProjectName] = project

		for _, entity := range entry.FeatureEntities {
			if entity.ProjectId == project.ProjectId {
				project.FeatureEntityMap[entity.FeatureEntityName] = domain.NewFeatureEntity(entity)
			}
		}

		for _, view := range entry.FeatureViews {
			featureViewDomain := domain.NewFeatureView(view, project, project.FeatureEntityMap[view.FeatureEntityName])
			project.FeatureViewMap[view.Name] = featureViewDomain
		}

		for _, serialized := range entry.OnDemandFeatureViews {
			onDemandFeatureView, err := domain.OnDemandFeatureViewFromInterchange(serialized)
			if err != nil {
				c.logError(fmt.Errorf("load on demand feature view error, err=%v", err))
				continue
			}
			project.OnDemandFeatureViewMap[onDemandFeatureView.Name] = onDemandFeatureView
		}
	}

	return projectData
}

func (c *FeatureStoreClient) loopLoadProjectData() {
	for {
		time.Sleep(time.Minute)
		c.LoadProjectData()
	}
}

// ListOnDemandFeatureViews returns the on-demand feature views of the named
// project. allowCache=false forces a registry reload before listing.
func (c *FeatureStoreClient) ListOnDemandFeatureViews(projectName string, allowCache bool) ([]*domain.OnDemandFeatureView, error) {
	if !allowCache {
		if err := c.LoadProjectData(); err != nil {
			return nil, err
		}
	}

	project, err := c.GetProject(projectName)
	if err != nil {
		return nil, err
	}

	return project.ListOnDemandFeatureViews(), nil
}

// GetRequestedOnDemandFeatureViews resolves view:feature refs to the
// on-demand feature views they name. A view is included once no matter how
// many of its features are requested.
func (c *FeatureStoreClient) GetRequestedOnDemandFeatureViews(projectName string, featureRefs []string) ([]*domain.OnDemandFeatureView, error) {
	views, err := c.ListOnDemandFeatureViews(projectName, true)
	if err != nil {
		return nil, err
	}

	refSet := make(map[string]bool, len(featureRefs))
	for _, ref := range featureRefs {
		refSet[ref] = true
	}

	var requested []*domain.OnDemandFeatureView
	for _, view := range views {
		for _, feature := range view.Features() {
			if refSet[view.Name+":"+feature.Name] {
				requested = append(requested, view)
				break
			}
		}
	}

	return requested, nil
}

// GetRequestDataSchema returns the request-time input schema of the named
// on-demand feature view.
func (c *FeatureStoreClient) GetRequestDataSchema(projectName, viewName string) (map[string]string, error) {
	project, err := c.GetProject(projectName)
	if err != nil {
		return nil, err
	}

	view := project.GetOnDemandFeatureView(viewName)
	if view == nil {
		return nil, &domain.OnDemandFeatureViewNotFoundError{Name: viewName}
	}

	schema := make(map[string]string)
	for name, fsType := range view.GetRequestDataSchema() {
		schema[name] = fsType.String()
	}
	return schema, nil
}

// splitFeatureRef splits a view:feature ref. The feature part may be "*".
func splitFeatureRef(ref string) (viewName, featureName string, err error) {
	parts := strings.SplitN(ref, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid feature ref :%s, expected view:feature", ref)
	}
	return parts[0], parts[1], nil
}
