// Package config loads lintcfg settings from lintcfg.yaml, the environment and
// command-line flags.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/zerr"
	yamlv3 "gopkg.in/yaml.v3"
)

// Settings file names, in lookup order.
const (
	SettingsFile    = "lintcfg.yaml"
	SettingsFileAlt = "lintcfg.yml"
)

// EnvPrefix prefixes environment variables read as settings.
const EnvPrefix = "LINTCFG_"

// Defaults for tool settings.
const (
	DefaultExpiresAfter = time.Hour
	DefaultFormat       = "yaml"
)

// envKeys maps environment variables to settings keys.
var envKeys = map[string]string{
	EnvPrefix + "CACHE_ENABLED":       "cache.enabled",
	EnvPrefix + "CACHE_EXPIRES_AFTER": "cache.expiresAfter",
	EnvPrefix + "CONVERT_TO_INTERNAL": "convertToInternal",
	EnvPrefix + "FORMAT":              "format",
}

// toolSettings is the koanf-managed part of a profile.
type toolSettings struct {
	Cache             domain.CacheOptions `koanf:"cache"`
	ConvertToInternal bool                `koanf:"convertToInternal"`
	Format            string              `koanf:"format"`
}

// Loader implements ports.ProfileLoader.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// SettingsPath returns the settings file in dir, preferring lintcfg.yaml.
func (l *Loader) SettingsPath(dir string) string {
	for _, name := range []string{SettingsFile, SettingsFileAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filepath.Join(dir, SettingsFile)
}

// Load reads the profile for dir.
// Precedence (highest to lowest): flags > env vars > settings file > defaults.
func (l *Loader) Load(dir string, flags *pflag.FlagSet) (*domain.Profile, error) {
	path := l.SettingsPath(dir)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project directory
	switch {
	case errors.Is(err, fs.ErrNotExist):
		data = nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"cache.enabled":      true,
		"cache.expiresAfter": DefaultExpiresAfter,
		"convertToInternal":  false,
		"format":             DefaultFormat,
	}, "."), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to load defaults")
	}

	if data != nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to load environment")
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags)), nil); err != nil {
			return nil, zerr.Wrap(err, "failed to load flags")
		}
	}

	var settings toolSettings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	user, err := decodeUser(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	return &domain.Profile{
		Cache:             settings.Cache,
		ConvertToInternal: settings.ConvertToInternal,
		Format:            settings.Format,
		User:              user,
	}, nil
}

// flagKey maps explicitly set command-line flags to settings keys.
// Unknown or unchanged flags are skipped.
func flagKey(flags *pflag.FlagSet) func(f *pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}

		switch f.Name {
		case "no-cache":
			disabled, _ := flags.GetBool(f.Name)
			return "cache.enabled", !disabled
		case "cache-ttl":
			return "cache.expiresAfter", posflag.FlagVal(flags, f)
		case "internal":
			return "convertToInternal", posflag.FlagVal(flags, f)
		case "format":
			return "format", posflag.FlagVal(flags, f)
		default:
			return "", nil
		}
	}
}

// decodeUser reads the rule payload of the settings file with yaml.v3 so rule
// order is preserved.
func decodeUser(data []byte) (domain.UserConfig, error) {
	var user domain.UserConfig
	if len(data) == 0 {
		return user, nil
	}
	if err := yamlv3.Unmarshal(data, &user); err != nil {
		return domain.UserConfig{}, err
	}
	return user, nil
}
