package pactool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	oldRoot, oldDebug := rootDir, Debug
	t.Cleanup(func() { rootDir, Debug = oldRoot, oldDebug })
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pactool.conf")
	content := `# pactool settings

PACTOOL_CACHE_KEEP = "5"
PACTOOL_LOG_DAYS='10'
not a setting
PACTOOL_DEBUG=0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("PACTOOL_DEBUG", "1")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "5", cfg.Values["PACTOOL_CACHE_KEEP"])
	assert.Equal(t, "10", cfg.Values["PACTOOL_LOG_DAYS"])
	assert.Equal(t, "1", cfg.Values["PACTOOL_DEBUG"], "environment overrides the file")
	assert.NotContains(t, cfg.Values, "not a setting")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.conf"))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Values)
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]string
		root      string
		debug     bool
		cacheKeep uint16
		logDays   uint16
	}{
		{"defaults", map[string]string{}, "/", false, 3, 3},
		{
			"overrides",
			map[string]string{"PACTOOL_ROOT": "/mnt", "PACTOOL_DEBUG": "1", "PACTOOL_CACHE_KEEP": "1", "PACTOOL_LOG_DAYS": "30"},
			"/mnt", true, 1, 30,
		},
		{"invalid retention falls back", map[string]string{"PACTOOL_CACHE_KEEP": "many", "PACTOOL_LOG_DAYS": "-2"}, "/", false, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			cfg := &Config{Values: tt.values}

			initConfig(cfg)

			assert.Equal(t, tt.root, rootDir)
			assert.Equal(t, tt.debug, Debug)
			assert.Equal(t, tt.cacheKeep, cfg.CacheKeep)
			assert.Equal(t, tt.logDays, cfg.LogDays)
		})
	}
}
