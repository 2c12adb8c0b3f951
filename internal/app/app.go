// Package app implements the application layer for lintcfg.
package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/lintcfg/internal/build"
	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/lintcfg/internal/core/ports"
	"go.trai.ch/lintcfg/internal/engine/composer"
	"go.trai.ch/lintcfg/internal/engine/overrides"
	"go.trai.ch/lintcfg/internal/engine/severity"
	"go.trai.ch/lintcfg/internal/engine/staleness"
	"go.trai.ch/lintcfg/internal/engine/version"
	"go.trai.ch/zerr"
)

const tracerName = "go.trai.ch/lintcfg"

// App composes lint configurations for a project directory.
type App struct {
	detector ports.CapabilityDetector
	loader   ports.ProfileLoader
	renderer ports.Renderer
	watcher  ports.Watcher
	store    ports.CacheStore
	logger   ports.Logger
	builder  *overrides.Builder
	versions *version.Evaluator

	mu       sync.Mutex
	caches   map[string]*domain.CacheState
	now      func() time.Time
	debounce time.Duration
}

// New creates a new App instance.
func New(
	detector ports.CapabilityDetector,
	loader ports.ProfileLoader,
	renderer ports.Renderer,
	watcher ports.Watcher,
	store ports.CacheStore,
	log ports.Logger,
	versions *version.Evaluator,
	builder *overrides.Builder,
) *App {
	return &App{
		detector: detector,
		loader:   loader,
		renderer: renderer,
		watcher:  watcher,
		store:    store,
		logger:   log,
		builder:  builder,
		versions: versions,
		caches:   make(map[string]*domain.CacheState),
		now:      time.Now,
		debounce: defaultDebounce,
	}
}

// WithClock replaces the clock used for cache expiry.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithDebounce sets how long Watch waits for file events to settle.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// BuildResult is the outcome of a build.
type BuildResult struct {
	Config  *domain.Config
	Profile *domain.Profile
	// Fresh is false when Config was served from the cache.
	Fresh bool
}

// fingerprintInputs are the composition inputs that decide cache validity.
// ToolVersion invalidates persisted records written by another build.
type fingerprintInputs struct {
	ToolVersion       string              `json:"toolVersion"`
	Capabilities      domain.Capabilities `json:"capabilities"`
	User              domain.UserConfig   `json:"user"`
	ConvertToInternal bool                `json:"convertToInternal"`
}

// Build detects the project in dir, loads its settings and composes the
// configuration, reusing the previous result while it is still valid.
func (a *App) Build(ctx context.Context, dir string, flags *pflag.FlagSet) (*BuildResult, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "build", trace.WithAttributes(attribute.String("dir", dir)))
	defer span.End()

	caps, err := a.detector.Detect(dir)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to detect project capabilities")
	}

	profile, err := a.loader.Load(dir, flags)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load settings")
	}

	fp := domain.Fingerprint{
		Cache: profile.Cache,
		Inputs: fingerprintInputs{
			ToolVersion:       build.Version,
			Capabilities:      caps,
			User:              profile.User,
			ConvertToInternal: profile.ConvertToInternal,
		},
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.cacheFor(dir)
	now := a.now()
	if !staleness.MustInvalidate(cache, now, fp) {
		span.SetAttributes(attribute.Bool("cached", true))
		return &BuildResult{Config: cache.Config, Profile: profile, Fresh: false}, nil
	}

	cfg := a.compose(caps, profile)
	staleness.Set(cache, now, cfg, fp)

	if profile.Cache.Enabled {
		if err := a.store.Put(dir, cache); err != nil {
			a.logger.Warn("could not persist cache: " + err.Error())
		}
	}

	span.SetAttributes(
		attribute.Bool("cached", false),
		attribute.Int("overrides", len(cfg.Overrides)),
	)
	return &BuildResult{Config: cfg, Profile: profile, Fresh: true}, nil
}

// cacheFor returns the cache record for dir, restoring it from the store on
// first use. Callers must hold a.mu.
func (a *App) cacheFor(dir string) *domain.CacheState {
	if cache, ok := a.caches[dir]; ok {
		return cache
	}

	cache, err := a.store.Get(dir)
	if err != nil {
		a.logger.Warn("could not read cache: " + err.Error())
	}
	if cache == nil {
		cache = staleness.NewCache()
	}
	a.caches[dir] = cache
	return cache
}

// compose builds the internal fragments, folds the user's overrides into them
// and normalizes severities.
func (a *App) compose(caps domain.Capabilities, profile *domain.Profile) *domain.Config {
	cfg := overrides.WithUser(overrides.Base(caps), profile.User)

	fragments := a.builder.Fragments(caps)
	for _, f := range profile.User.Overrides {
		fragments = append(fragments, domain.Some(f))
	}

	opts := severity.Options{ConvertToInternal: profile.ConvertToInternal}
	cfg.Rules = severity.Normalize(cfg.Rules, opts)
	cfg.Overrides = severity.NormalizeFragments(composer.Compose(fragments), opts)

	return &cfg
}

// Render writes the result in its profile's format.
func (a *App) Render(w io.Writer, res *BuildResult) error {
	return a.renderer.Render(w, res.Config, res.Profile.Format)
}

// RenderOverrides writes the composed overrides as a table.
func (a *App) RenderOverrides(w io.Writer, res *BuildResult) error {
	return a.renderer.RenderOverrides(w, res.Config.Overrides)
}

// CheckVersion reports whether declared meets floor, given as major[.minor[.patch]].
func (a *App) CheckVersion(declared, floor string) (bool, error) {
	f, err := version.ParseFloor(floor)
	if err != nil {
		return false, err
	}
	ok := a.versions.Satisfies(declared, f)
	a.logger.Info(fmt.Sprintf("%q against %s: %t", declared, f, ok))
	return ok, nil
}
