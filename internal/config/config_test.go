package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TADA_LABEL", "TADA_THEME", "TADA_LOG_LEVEL", "TADA_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func parsedFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load(parsedFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, DefaultFileName, `
label = "From file"
theme = "neon"
log_level = "info"
log_format = "logfmt"
group = true
`)

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(parsedFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "From file", cfg.Label)
		assert.Equal(t, "neon", cfg.Theme)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "logfmt", cfg.LogFormat)
		assert.True(t, cfg.Group)
		assert.Equal(t, DefaultFileName, cfg.File)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("TADA_THEME", "mono")
		t.Setenv("TADA_LABEL", "From env")
		cfg, err := Load(parsedFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "mono", cfg.Theme)
		assert.Equal(t, "From env", cfg.Label)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("TADA_THEME", "mono")
		cfg, err := Load(parsedFlags(t, "--theme", "classic", "--log-level", "debug", "--group=false"))
		require.NoError(t, err)
		assert.Equal(t, "classic", cfg.Theme)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.False(t, cfg.Group)
	})
}

func TestLoadExplicitFile(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	p := writeFile(t, t.TempDir(), "custom.toml", `label = "Custom"`)

	cfg, err := Load(parsedFlags(t, "--config", p))
	require.NoError(t, err)
	assert.Equal(t, "Custom", cfg.Label)
	assert.Equal(t, p, cfg.File)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing explicit file", args: []string{"--config", filepath.Join(dir, "nope.toml")}},
		{name: "unknown key", args: []string{"--config", writeFile(t, dir, "unknown.toml", `colour = "red"`)}},
		{name: "bad syntax", args: []string{"--config", writeFile(t, dir, "bad.toml", `label = `)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(parsedFlags(t, tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestNormalizeTheme(t *testing.T) {
	assert.Equal(t, "neon", NormalizeTheme(" NEON "))
	assert.Equal(t, "mono", NormalizeTheme("mono"))
	assert.Equal(t, "classic", NormalizeTheme("classic"))
	assert.Equal(t, "classic", NormalizeTheme("sparkly"))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
