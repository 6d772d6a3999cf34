package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconlabs/beacon/pkg/config"
)

type agentConfig struct {
	VisitsURL string        `env:"TEST_BEACON_VISITS_URL" envDefault:"http://localhost:8080/ahoy/visits"`
	VisitTTL  time.Duration `env:"TEST_BEACON_VISIT_TTL" envDefault:"4h"`
	Namespace string        `env:"TEST_BEACON_NAMESPACE"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg agentConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "http://localhost:8080/ahoy/visits", cfg.VisitsURL)
	assert.Equal(t, 4*time.Hour, cfg.VisitTTL)
	assert.Empty(t, cfg.Namespace)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_BEACON_VISITS_URL", "https://collector.example.com/ahoy/visits")
	t.Setenv("TEST_BEACON_VISIT_TTL", "30m")

	var cfg agentConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://collector.example.com/ahoy/visits", cfg.VisitsURL)
	assert.Equal(t, 30*time.Minute, cfg.VisitTTL)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	var cfg *agentConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("TEST_BEACON_VISIT_TTL", "not-a-duration")

	var cfg agentConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
}

type fileConfig struct {
	Addr        string `yaml:"addr"`
	DatabaseURL string `yaml:"database_url"`
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "collector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\ndatabase_url: postgres://localhost/beacon\n"), 0o600))

	cfg := fileConfig{Addr: ":8080"}
	require.NoError(t, config.LoadFile(path, &cfg))

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://localhost/beacon", cfg.DatabaseURL)
}

func TestLoadFile_KeepsDefaultsForMissingKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "collector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o600))

	cfg := fileConfig{DatabaseURL: "postgres://default/beacon"}
	require.NoError(t, config.LoadFile(path, &cfg))

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://default/beacon", cfg.DatabaseURL)
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()

	var cfg fileConfig
	assert.ErrorIs(t, config.LoadFile("/nonexistent/collector.yaml", &cfg), config.ErrReadingFile)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "collector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o600))

	var cfg fileConfig
	assert.ErrorIs(t, config.LoadFile(path, &cfg), config.ErrParsingFile)
}
