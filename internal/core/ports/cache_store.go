package ports

import "go.trai.ch/lintcfg/internal/core/domain"

// CacheStore persists composed configurations between runs.
//
//go:generate mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Get returns the cache record for the project in dir, or nil if none is stored.
	Get(dir string) (*domain.CacheState, error)

	// Put stores the cache record for the project in dir.
	Put(dir string, state *domain.CacheState) error
}
