package featurestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fortio.org/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "featuremesh.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadClientConfig(t *testing.T) {
	t.Setenv("FEATUREMESH_TEST_TOKEN", "secret-token")
	path := writeConfigFile(t, `
address: https://featuremesh.example.com
token: ${FEATUREMESH_TEST_TOKEN}
project: fraud
snapshot_path: /var/cache/featuremesh/registry.snapshot
no_project_refresh: true
`)

	config, err := LoadClientConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, config.Address, "https://featuremesh.example.com")
	assert.Equal(t, config.Token, "secret-token")
	assert.Equal(t, config.Project, "fraud")
	assert.Equal(t, config.SnapshotPath, "/var/cache/featuremesh/registry.snapshot")
	assert.Equal(t, config.NoProjectRefresh, true)
}

func TestLoadClientConfigMissingFields(t *testing.T) {
	testcases := []struct {
		content string
		expect  string
	}{
		{content: "token: t\nproject: p\n", expect: "missing address"},
		{content: "address: a\nproject: p\n", expect: "missing token"},
		{content: "address: a\ntoken: t\n", expect: "missing project"},
	}
	for _, tcase := range testcases {
		_, err := LoadClientConfig(writeConfigFile(t, tcase.content))
		if err == nil {
			t.Fatalf("expected an error for config %q", tcase.content)
		}
		if !strings.Contains(err.Error(), tcase.expect) {
			t.Errorf("unexpected error message: %v", err)
		}
	}
}

func TestLoadClientConfigMissingFile(t *testing.T) {
	if _, err := LoadClientConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadClientConfigInvalidYaml(t *testing.T) {
	_, err := LoadClientConfig(writeConfigFile(t, "address: [unclosed"))
	if err == nil {
		t.Fatal("expected an error for invalid yaml")
	}
	if !strings.Contains(err.Error(), "parse client config") {
		t.Errorf("unexpected error message: %v", err)
	}
}
