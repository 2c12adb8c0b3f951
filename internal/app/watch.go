package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"go.trai.ch/lintcfg/internal/adapters/watcher"
	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const defaultDebounce = watcher.DefaultDebounceWindow

// Watch builds once, then rebuilds whenever the manifest or settings files of
// dir change. fn receives the first configuration and every configuration a
// rebuild actually recomposed. Rebuild failures are logged and watching
// continues. Watch returns when ctx is done.
func (a *App) Watch(ctx context.Context, dir string, flags *pflag.FlagSet, fn func(*BuildResult) error) error {
	first, err := a.Build(ctx, dir, flags)
	if err != nil {
		return err
	}
	if err := fn(first); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	paths := append(a.detector.ManifestPaths(dir), a.loader.SettingsPath(dir))
	if err := a.watcher.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	changed := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case changed <- paths:
		default:
		}
	})

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		debouncer.Flush()
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-changed:
				a.logger.Info(fmt.Sprintf("change detected in %v, rebuilding", paths))
				if err := a.rebuild(ctx, dir, flags, fn); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}

// rebuild runs one watch iteration. Only errors returned by fn stop the watch.
func (a *App) rebuild(ctx context.Context, dir string, flags *pflag.FlagSet, fn func(*BuildResult) error) error {
	start := time.Now()

	res, err := a.Build(ctx, dir, flags)
	if err != nil {
		a.logger.Error(err)
		return nil
	}
	if !res.Fresh {
		a.logger.Info("configuration unchanged")
		return nil
	}

	a.logger.Info(fmt.Sprintf("rebuilt in %s", time.Since(start).Round(time.Millisecond)))
	return fn(res)
}
