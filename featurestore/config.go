package featurestore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ClientConfig is the yaml client configuration.
//
//	address: https://featuremesh.example.com
//	token: ${FEATUREMESH_TOKEN}
//	project: fraud
//	snapshot_path: /var/cache/featuremesh/registry.snapshot
type ClientConfig struct {
	Address          string `yaml:"address"`
	Token            string `yaml:"token"`
	Project          string `yaml:"project"`
	Domain           string `yaml:"domain,omitempty"`
	SnapshotPath     string `yaml:"snapshot_path,omitempty"`
	NoProjectRefresh bool   `yaml:"no_project_refresh,omitempty"`
}

func (c *ClientConfig) validate() error {
	if c.Address == "" {
		return fmt.Errorf("missing address in the client config")
	}
	if c.Token == "" {
		return fmt.Errorf("missing token in the client config")
	}
	if c.Project == "" {
		return fmt.Errorf("missing project in the client config")
	}
	return nil
}

// LoadClientConfig reads a yaml client configuration. Values of the form
// ${NAME} are replaced with the environment variable NAME.
func LoadClientConfig(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read client config %s error: %w", path, err)
	}

	config := &ClientConfig{}
	if err := yaml.Unmarshal([]byte(os.Expand(string(data), lookupEnv)), config); err != nil {
		return nil, fmt.Errorf("parse client config %s error: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func lookupEnv(name string) string {
	return os.Getenv(name)
}

// NewFeatureStoreClientFromConfig builds a client from a yaml configuration
// file. Options passed here run after the configured ones and win.
func NewFeatureStoreClientFromConfig(path string, opts ...ClientOption) (*FeatureStoreClient, error) {
	config, err := LoadClientConfig(path)
	if err != nil {
		return nil, err
	}

	options := make([]ClientOption, 0, len(opts)+3)
	if config.Domain != "" {
		options = append(options, WithDomain(config.Domain))
	}
	if config.SnapshotPath != "" {
		options = append(options, WithRegistrySnapshot(config.SnapshotPath))
	}
	if config.NoProjectRefresh {
		options = append(options, WithNoProjectRefresh())
	}
	options = append(options, opts...)

	return NewFeatureStoreClient(config.Address, config.Token, config.Project, options...)
}
