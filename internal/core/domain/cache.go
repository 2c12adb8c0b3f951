package domain

import "time"

// CacheOptions controls memoization of composed configurations.
type CacheOptions struct {
	Enabled      bool          `json:"enabled" koanf:"enabled"`
	ExpiresAfter time.Duration `json:"expiresAfter" koanf:"expiresAfter"`
}

// Fingerprint is the structural snapshot of composition inputs.
// Two fingerprints are equal when their serialized forms are equal.
type Fingerprint struct {
	Cache  CacheOptions `json:"cacheOptions"`
	Inputs any          `json:"inputs"`
}

// CacheState records the last successful composition.
// It is owned by a single caller and mutated only by the staleness tracker.
type CacheState struct {
	CreatedAt time.Time `yaml:"createdAt"`
	Config    *Config   `yaml:"config"`
	// Dependencies is the digest of the fingerprint recorded with Config.
	// It is empty when the fingerprint could not be serialized.
	Dependencies string `yaml:"dependencies"`
}

// Profile holds the project's lintcfg settings.
type Profile struct {
	Cache             CacheOptions
	ConvertToInternal bool
	Format            string
	User              UserConfig
}
