package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintcfg/internal/adapters/store"
	"go.trai.ch/lintcfg/internal/core/domain"
)

func sampleState() *domain.CacheState {
	return &domain.CacheState{
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Config: &domain.Config{
			Extends: []string{"eslint:recommended"},
			Rules: domain.NewRuleMap(
				domain.On("no-console", domain.SeverityWarn),
				domain.On("eqeqeq", domain.SeverityError, "smart"),
			),
			Overrides: []domain.Fragment{{
				Files:        []string{"**/*.ts"},
				OverrideType: domain.OverrideTypeScript,
				Rules:        domain.NewRuleMap(domain.On("no-undef", domain.SeverityOff)),
			}},
		},
		Dependencies: "00000000deadbeef",
	}
}

func TestStore_PutAndGet(t *testing.T) {
	s, err := store.NewStore(filepath.Join(t.TempDir(), store.FileName))
	require.NoError(t, err)

	got, err := s.Get("project")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Put("project", sampleState()))

	got, err = s.Get("project")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "00000000deadbeef", got.Dependencies)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", store.FileName)

	s1, err := store.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Put("project", sampleState()))

	s2, err := store.NewStore(path)
	require.NoError(t, err)

	got, err := s2.Get("project")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, sampleState().CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, []string{"eslint:recommended"}, got.Config.Extends)
	assert.Equal(t, []string{"no-console", "eqeqeq"}, got.Config.Rules.Keys())

	v, _ := got.Config.Rules.Get("eqeqeq")
	assert.Equal(t, []any{"error", "smart"}, v)

	require.Len(t, got.Config.Overrides, 1)
	assert.Equal(t, domain.OverrideTypeScript, got.Config.Overrides[0].OverrideType)
}

func TestStore_KeysByAbsoluteDirectory(t *testing.T) {
	s, err := store.NewStore(filepath.Join(t.TempDir(), store.FileName))
	require.NoError(t, err)

	abs, err := filepath.Abs("project")
	require.NoError(t, err)

	require.NoError(t, s.Put("project", sampleState()))

	got, err := s.Get(abs)
	require.NoError(t, err)
	assert.NotNil(t, got)

	other, err := s.Get("other")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.FileName)
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))

	s, err := store.NewStore(path)
	require.NoError(t, err)

	got, err := s.Get("project")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "cache")

	s, err := store.NewStore(filepath.Join(blocker, store.FileName))
	require.NoError(t, err)

	// The cache directory cannot be created once a file takes its place.
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err = s.Put("project", sampleState())
	require.ErrorContains(t, err, domain.ErrCacheStoreFailed.Error())
}
