package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaultConfigResetsOverrides(t *testing.T) {
	defer SetDefaultConfig()

	Config.Fetcher.UserAgent = "overridden"
	SetDefaultConfig()
	assert.Equal(t, "web-based-search-engine-24 crawler", Config.Fetcher.UserAgent)
	assert.Equal(t, 5, Config.Fetcher.MaxRedirects)
}

func TestReadConfigFileOverlaysYAML(t *testing.T) {
	defer SetDefaultConfig()

	path := filepath.Join(t.TempDir(), "searchengine.yaml")
	yamlBody := "fetcher:\n  user_agent: Test Agent\ncrawler:\n  default_max_pages: 42\n  seeds:\n    - http://a.example/\n    - http://b.example/\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0644))

	require.NoError(t, ReadConfigFile(path))
	assert.Equal(t, "Test Agent", Config.Fetcher.UserAgent)
	assert.Equal(t, 42, Config.Crawler.DefaultMaxPages)
	assert.Equal(t, []string{"http://a.example/", "http://b.example/"}, Config.Crawler.Seeds)
}

func TestReadConfigFileMissingReturnsError(t *testing.T) {
	defer SetDefaultConfig()
	err := ReadConfigFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestAssertConfigInvariantsRejectsBadTimeout(t *testing.T) {
	defer SetDefaultConfig()
	SetDefaultConfig()
	Config.Fetcher.ConnectTimeout = "not-a-duration"
	assert.Error(t, assertConfigInvariants())
}
