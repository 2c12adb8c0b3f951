package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lintcfg/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lintcfg/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/lintcfg/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lintcfg/internal/adapters/render"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lintcfg/internal/adapters/store"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lintcfg/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/lintcfg/internal/core/ports"
	"go.trai.ch/lintcfg/internal/engine/overrides"
	"go.trai.ch/lintcfg/internal/engine/version"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			detector.NodeID,
			config.NodeID,
			render.NodeID,
			watcher.NodeID,
			store.NodeID,
			logger.NodeID,
			version.NodeID,
			overrides.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	det, err := graft.Dep[ports.CapabilityDetector](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ProfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	cacheStore, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	versions, err := graft.Dep[*version.Evaluator](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*overrides.Builder](ctx)
	if err != nil {
		return nil, err
	}

	return New(det, loader, renderer, w, cacheStore, log, versions, builder), nil
}
