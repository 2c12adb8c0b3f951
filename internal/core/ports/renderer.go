package ports

import (
	"io"

	"go.trai.ch/lintcfg/internal/core/domain"
)

// Renderer writes composed configurations for humans and linters.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes cfg to w in the given format ("yaml", "json" or "table").
	Render(w io.Writer, cfg *domain.Config, format string) error

	// RenderOverrides writes a table summarizing the composed overrides.
	RenderOverrides(w io.Writer, overrides []domain.Fragment) error
}
