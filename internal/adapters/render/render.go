// Package render encodes composed configurations as YAML, JSON or a table.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatTable = "table"
)

const indent = 2

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes cfg to w. Override tags are internal and are not written.
func (r *Renderer) Render(w io.Writer, cfg *domain.Config, format string) error {
	switch format {
	case FormatYAML:
		return encodeYAML(w, forOutput(cfg))
	case FormatJSON:
		return encodeJSON(w, forOutput(cfg))
	case FormatTable:
		return r.RenderOverrides(w, cfg.Overrides)
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", format)
	}
}

// RenderOverrides writes one row per composed override, in output order.
func (r *Renderer) RenderOverrides(w io.Writer, overrides []domain.Fragment) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Priority", "Files", "Rules"})

	for i, f := range overrides {
		kind := string(f.OverrideType)
		if !f.OverrideType.Tagged() {
			kind = "(user)"
		}
		t.AppendRow(table.Row{i + 1, kind, f.OverrideType.Priority(), strings.Join(f.Files, ", "), f.Rules.Len()})
	}

	t.Render()
	if _, err := fmt.Fprintf(w, "(%d overrides)\n", len(overrides)); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

func encodeYAML(w io.Writer, cfg *domain.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(cfg); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

func encodeJSON(w io.Writer, cfg *domain.Config) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(cfg); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

// forOutput returns a copy of cfg with override tags removed and empty
// required fields filled, so linters always see extends, rules and overrides.
func forOutput(cfg *domain.Config) *domain.Config {
	out := *cfg
	if out.Extends == nil {
		out.Extends = []string{}
	}
	if out.Rules == nil {
		out.Rules = domain.NewRuleMap()
	}
	out.Overrides = untag(cfg.Overrides)
	if out.Overrides == nil {
		out.Overrides = []domain.Fragment{}
	}
	return &out
}

func untag(fragments []domain.Fragment) []domain.Fragment {
	if fragments == nil {
		return nil
	}
	out := make([]domain.Fragment, len(fragments))
	for i, f := range fragments {
		f.OverrideType = domain.OverrideUntagged
		f.Overrides = untag(f.Overrides)
		out[i] = f
	}
	return out
}
