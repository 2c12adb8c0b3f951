package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintcfg/internal/adapters/config"
	"go.trai.ch/lintcfg/internal/core/domain"
)

func writeSettings(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "", "")
	fs.Bool("internal", false, "")
	fs.Bool("no-cache", false, "")
	fs.Duration("cache-ttl", 0, "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	profile, err := config.NewLoader().Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, domain.CacheOptions{Enabled: true, ExpiresAfter: config.DefaultExpiresAfter}, profile.Cache)
	assert.False(t, profile.ConvertToInternal)
	assert.Equal(t, config.DefaultFormat, profile.Format)
	assert.Nil(t, profile.User.Rules)
}

func TestLoad_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, config.SettingsFile, `
cache:
  enabled: false
  expiresAfter: 30m
convertToInternal: true
format: json
extends: [prettier]
rules:
  no-console: off
  curly: [error, all]
  eqeqeq: warn
overrides:
  - files: ["scripts/**"]
    rules:
      no-console: off
  - files: ["**/*.test.ts"]
    overrideType: jest
    rules:
      jest/expect-expect: error
`)

	profile, err := config.NewLoader().Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.CacheOptions{Enabled: false, ExpiresAfter: 30 * time.Minute}, profile.Cache)
	assert.True(t, profile.ConvertToInternal)
	assert.Equal(t, "json", profile.Format)

	assert.Equal(t, []string{"prettier"}, profile.User.Extends)
	assert.Equal(t, []string{"no-console", "curly", "eqeqeq"}, profile.User.Rules.Keys())
	curly, _ := profile.User.Rules.Get("curly")
	assert.Equal(t, []any{"error", "all"}, curly)

	require.Len(t, profile.User.Overrides, 2)
	assert.Equal(t, domain.OverrideUntagged, profile.User.Overrides[0].OverrideType)
	assert.Equal(t, domain.OverrideJest, profile.User.Overrides[1].OverrideType)
	assert.Equal(t, []string{"jest/expect-expect"}, profile.User.Overrides[1].Rules.Keys())
}

func TestLoad_AltFileName(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, config.SettingsFileAlt, "format: json\n")

	loader := config.NewLoader()
	assert.Equal(t, filepath.Join(dir, config.SettingsFileAlt), loader.SettingsPath(dir))

	profile, err := loader.Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", profile.Format)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, config.SettingsFile, "format: json\nconvertToInternal: false\n")

	t.Setenv("LINTCFG_FORMAT", "table")
	t.Setenv("LINTCFG_CONVERT_TO_INTERNAL", "true")
	t.Setenv("LINTCFG_CACHE_EXPIRES_AFTER", "2m")
	t.Setenv("LINTCFG_UNRELATED", "ignored")

	profile, err := config.NewLoader().Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "table", profile.Format)
	assert.True(t, profile.ConvertToInternal)
	assert.Equal(t, 2*time.Minute, profile.Cache.ExpiresAfter)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--format", "yaml", "--no-cache", "--cache-ttl", "10s"}))

	profile, err = config.NewLoader().Load(dir, flags)
	require.NoError(t, err)
	assert.Equal(t, "yaml", profile.Format)
	assert.False(t, profile.Cache.Enabled)
	assert.Equal(t, 10*time.Second, profile.Cache.ExpiresAfter)
	assert.True(t, profile.ConvertToInternal, "unset flags keep lower layers")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeSettings(t, dir, config.SettingsFile, "rules: [unclosed\n")

		_, err := config.NewLoader().Load(dir, nil)
		require.ErrorContains(t, err, domain.ErrSettingsParseFailed.Error())
	})

	t.Run("rules not a mapping", func(t *testing.T) {
		dir := t.TempDir()
		writeSettings(t, dir, config.SettingsFile, "rules:\n  - no-console\n")

		_, err := config.NewLoader().Load(dir, nil)
		require.ErrorContains(t, err, domain.ErrSettingsParseFailed.Error())
	})

	t.Run("settings path is a directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, config.SettingsFile), 0o750))

		_, err := config.NewLoader().Load(dir, nil)
		require.ErrorContains(t, err, domain.ErrSettingsReadFailed.Error())
	})
}
