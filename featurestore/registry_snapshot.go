package featurestore

import (
	"encoding/json"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/featuremesh/featuremesh-go-sdk/api"
)

// registrySnapshot is the persisted form of everything LoadProjectData
// pulls from the registry, so the client can start against a dead registry.
type registrySnapshot struct {
	Projects []*projectSnapshot `json:"projects"`
}

type projectSnapshot struct {
	Project              *api.Project               `json:"project"`
	Datasource           *api.Datasource            `json:"datasource,omitempty"`
	FeatureEntities      []*api.FeatureEntity       `json:"feature_entities"`
	FeatureViews         []*api.FeatureView         `json:"feature_views"`
	OnDemandFeatureViews []*api.OnDemandFeatureView `json:"on_demand_feature_views"`
}

func writeRegistrySnapshot(path string, snapshot *registrySnapshot) error {
	for _, entry := range snapshot.Projects {
		// OnlineDataSource is json:"-" on the project, persist it alongside
		entry.Datasource = entry.Project.OnlineDataSource
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	compressed := encoder.EncodeAll(payload, nil)
	encoder.Close()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, compressed, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func readRegistrySnapshot(path string) (*registrySnapshot, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	payload, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, err
	}

	snapshot := &registrySnapshot{}
	if err := json.Unmarshal(payload, snapshot); err != nil {
		return nil, err
	}

	for _, entry := range snapshot.Projects {
		if entry.Project != nil && entry.Project.OnlineDataSource == nil {
			entry.Project.OnlineDataSource = entry.Datasource
		}
	}

	return snapshot, nil
}
