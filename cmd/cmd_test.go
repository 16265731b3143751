package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frejajensen9/web-based-search-engine-24/config"
)

func TestOpenStoreUsesConfiguredPath(t *testing.T) {
	defer config.SetDefaultConfig()
	config.Config.Index.StorePath = filepath.Join(t.TempDir(), "index.db")

	s := openStore()
	defer s.Close()
	require.NotNil(t, s)
}

func TestRunCrawlFailsFastWithNoSeed(t *testing.T) {
	defer config.SetDefaultConfig()
	config.Config.Index.StorePath = filepath.Join(t.TempDir(), "index.db")
	config.Config.Crawler.Seeds = nil
	oldSeedURL := seedURL
	seedURL = ""
	defer func() { seedURL = oldSeedURL }()

	oldExit := commander.streams.Exit
	exitCode := -1
	commander.streams.Exit = func(code int) { exitCode = code }
	defer func() { commander.streams.Exit = oldExit }()

	runCrawl()

	assert.Equal(t, 1, exitCode)
}
