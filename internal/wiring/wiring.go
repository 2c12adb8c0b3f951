// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lintcfg/internal/adapters/config"
	_ "go.trai.ch/lintcfg/internal/adapters/detector"
	_ "go.trai.ch/lintcfg/internal/adapters/logger"
	_ "go.trai.ch/lintcfg/internal/adapters/render"
	_ "go.trai.ch/lintcfg/internal/adapters/store"
	_ "go.trai.ch/lintcfg/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/lintcfg/internal/app"
	_ "go.trai.ch/lintcfg/internal/engine/overrides"
	_ "go.trai.ch/lintcfg/internal/engine/version"
)
