package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Input)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Nil(t, cfg.Lint)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `input: migrations/0001_init.sql
verbose: true
output: markdown
lint:
  disabled:
    - PG03
  severity:
    PG02: warning
  rules:
    PG03:
      window_lines: 20
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pgvet.yaml"), []byte(content), 0o644))
	chdir(t, dir)
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "migrations/0001_init.sql", cfg.Input)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, "pgvet.yaml", GetConfigFileUsed())

	require.NotNil(t, cfg.Lint)
	assert.Equal(t, []string{"PG03"}, cfg.Lint.Disabled)
	assert.Equal(t, "warning", cfg.Lint.Severity["PG02"])
	require.NotNil(t, cfg.Lint.Rules["PG03"])
	assert.EqualValues(t, 20, cfg.Lint.Rules["PG03"]["window_lines"])
}

func TestLoadConfigYmlFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pgvet.yml"), []byte("output: json\n"), 0o644))
	chdir(t, dir)
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "pgvet.yml", GetConfigFileUsed())
}

func TestLoadConfigExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: schema.sql\n"), 0o644))
	chdir(t, t.TempDir())
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "schema.sql", cfg.Input)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Cleanup(ResetConfig)

	_, err := LoadConfig("does-not-exist.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pgvet.yaml"), []byte("output: markdown\n"), 0o644))
	chdir(t, dir)
	t.Setenv("PGVET_OUTPUT", "json")
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PGVET_OUTPUT", "json")
	t.Cleanup(ResetConfig)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", DefaultOutput, "")
	require.NoError(t, flags.Set("output", "text"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.OutputFormat)
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PGVET_OUTPUT", "json")
	t.Cleanup(ResetConfig)

	// Flag exists but was never set; env value wins
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", DefaultOutput, "")

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestResetConfig(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := LoadConfig("", nil)
	require.NoError(t, err)
	require.NotNil(t, GetCurrentConfig())

	ResetConfig()

	assert.Nil(t, GetCurrentConfig())
	assert.Empty(t, GetConfigFileUsed())
}
