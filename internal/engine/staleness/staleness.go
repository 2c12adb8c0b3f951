// Package staleness decides whether a memoized configuration must be recomputed.
package staleness

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lintcfg/internal/core/domain"
)

// NewCache returns an empty cache record.
func NewCache() *domain.CacheState {
	return &domain.CacheState{}
}

// MustInvalidate reports whether the cached configuration cannot be reused for fp at now.
// It never mutates cache.
func MustInvalidate(cache *domain.CacheState, now time.Time, fp domain.Fingerprint) bool {
	if !fp.Cache.Enabled || cache == nil || cache.Config == nil {
		return true
	}

	digest, ok := Digest(fp)
	if !ok || cache.Dependencies == "" || digest != cache.Dependencies {
		return true
	}

	return now.Add(-fp.Cache.ExpiresAfter).After(cache.CreatedAt)
}

// Set records cfg as computed at now for fp, overwriting any previous entry.
// A nil cache records nothing.
func Set(cache *domain.CacheState, now time.Time, cfg *domain.Config, fp domain.Fingerprint) {
	if cache == nil {
		return
	}
	digest, _ := Digest(fp)
	cache.CreatedAt = now
	cache.Config = cfg
	cache.Dependencies = digest
}

// Digest returns the hex xxhash of the serialized fingerprint.
// Serialization is structural: maps are written with sorted keys and rule maps in
// insertion order, so equal inputs always produce equal digests.
func Digest(fp domain.Fingerprint) (string, bool) {
	data, err := json.Marshal(fp)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), true
}
