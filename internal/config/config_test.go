package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port":9090,"database_url":"postgres://localhost/glowup"}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/glowup", cfg.DatabaseURL)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{port:`), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Port: 8080, DatabaseURL: "postgres://localhost/glowup"}
	assert.NoError(t, valid.Validate())

	missingDB := Config{Port: 8080}
	assert.Error(t, missingDB.Validate())

	badPort := Config{Port: 70000, DatabaseURL: "postgres://localhost/glowup"}
	assert.Error(t, badPort.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{Port: 8080, DatabaseURL: "postgres://localhost/glowup"})

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "postgres://localhost/glowup", merged.DatabaseURL)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("PORT", "7070")

	cfg := FromEnv()
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, 7070, cfg.Port)
}
