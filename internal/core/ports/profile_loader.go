package ports

import (
	"github.com/spf13/pflag"
	"go.trai.ch/lintcfg/internal/core/domain"
)

// ProfileLoader loads the lintcfg settings of a project.
//
//go:generate mockgen -source=profile_loader.go -destination=mocks/mock_profile_loader.go -package=mocks
type ProfileLoader interface {
	// Load reads the settings for the project in dir.
	// A project without a settings file yields the defaults. Flags that were
	// explicitly set on the command line take precedence; flags may be nil.
	Load(dir string, flags *pflag.FlagSet) (*domain.Profile, error)

	// SettingsPath returns the settings file location for dir.
	SettingsPath(dir string) string
}
