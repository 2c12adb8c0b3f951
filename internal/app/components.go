package app

import "go.trai.ch/lintcfg/internal/core/ports"

// Components holds what the CLI needs to run.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a Components.
func NewComponents(a *App, log ports.Logger) *Components {
	return &Components{App: a, Logger: log}
}
