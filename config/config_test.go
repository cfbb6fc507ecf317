package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ferricsort/bench"
	"ferricsort/kvdb"
	"ferricsort/sort"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ferricsort.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
	require.Equal(t, sort.EngineQuick, cfg.Sort.Engine)
	require.Equal(t, kvdb.BackendBbolt, cfg.Store.Backend)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[sort]
engine = "merge"

[log]
level = "debug"
format = "json"
max-backups = 3

[store]
backend = "pebble"
path = "/tmp/sequences"

[bench]
sizes = [10, 20]
runs = 1
file-mode = true
patterns = ["few_unique"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, sort.EngineMerge, cfg.Sort.Engine)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 3, cfg.Log.MaxBackups)
	require.Equal(t, 512, cfg.Log.MaxSize)
	require.Equal(t, kvdb.BackendPebble, cfg.Store.Backend)
	require.Equal(t, "/tmp/sequences", cfg.Store.Path)
	require.Equal(t, uint64(kvdb.DefaultExpectedNames), cfg.Store.ExpectedNames)
	require.Equal(t, []int{10, 20}, cfg.Bench.Sizes)
	require.Equal(t, 1, cfg.Bench.Runs)
	require.True(t, cfg.Bench.FileMode)
	require.Equal(t, []string{bench.PatternFewUnique}, cfg.Bench.Patterns)
	// 지정하지 않은 값은 기본값 유지
	require.Equal(t, bench.DefaultConfig().Algorithms, cfg.Bench.Algorithms)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"engine", "[sort]\nengine = \"bogo\"\n"},
		{"backend", "[store]\nbackend = \"sqlite\"\n"},
		{"empty path", "[store]\npath = \"\"\n"},
		{"runs", "[bench]\nruns = 0\n"},
		{"sizes", "[bench]\nsizes = [-1]\n"},
		{"pattern", "[bench]\npatterns = [\"zigzag\"]\n"},
		{"unknown key", "[sort]\nengin = \"quick\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "[sort\nengine ="))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidateBenchWrapsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"runs", func(c *Config) { c.Bench.Runs = 0 }},
		{"sizes", func(c *Config) { c.Bench.Sizes = []int{0} }},
		{"pattern", func(c *Config) { c.Bench.Patterns = []string{"zigzag"} }},
		{"algorithm", func(c *Config) { c.Bench.Algorithms = []string{"bogo"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			require.True(t, stderrors.Is(err, ErrInvalid))
			require.Contains(t, err.Error(), "bench")
		})
	}
}
