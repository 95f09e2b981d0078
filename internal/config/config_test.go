package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SIM_SCENARIO_PATH", "SIM_JOURNAL_PATH", "SIM_LOG_LEVEL", "SIM_LOG_FORMAT", "SIM_DETERMINISTIC"} {
		t.Setenv(k, "")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+): change into dir and restore the
// previous working directory when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Scenario.Path)
	assert.Empty(t, cfg.Journal.SQLitePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.False(t, cfg.Presentation.Deterministic)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `scenario:
  path: scenarios/sg.yaml
journal:
  sqlite_path: data/journal.db
log:
  level: info
  format: json
presentation:
  deterministic: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "scenarios/sg.yaml", cfg.Scenario.Path)
	assert.Equal(t, "data/journal.db", cfg.Journal.SQLitePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Presentation.Deterministic)

	t.Setenv("SIM_LOG_LEVEL", "debug")
	t.Setenv("SIM_JOURNAL_PATH", "/tmp/other.db")
	t.Setenv("SIM_DETERMINISTIC", "false")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/other.db", cfg.Journal.SQLitePath)
	assert.False(t, cfg.Presentation.Deterministic)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "loud"
	cfg.Log.Format = "pretty"
	assert.ErrorContains(t, cfg.Validate(), "log.level")

	cfg.Log.Level = "error"
	cfg.Log.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "log.format")

	cfg.Log.Format = "json"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DotEnvFillsUnsetVariables(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("SIM_JOURNAL_PATH"))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SIM_JOURNAL_PATH=from-dotenv.db\n"), 0644))
	chdir(t, dir)

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.db", cfg.Journal.SQLitePath)
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0644))
	chdir(t, dir)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "parse .env")
}

func TestLoad_InvalidDeterministicFlag(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_DETERMINISTIC", "sometimes")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "SIM_DETERMINISTIC")
}
