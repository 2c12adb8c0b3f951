package domain

import "fmt"

// VersionFloor is the minimum acceptable version of a dependency.
type VersionFloor struct {
	Major int
	Minor int
	Patch int
}

// String formats the floor as major.minor.patch.
func (f VersionFloor) String() string {
	return fmt.Sprintf("%d.%d.%d", f.Major, f.Minor, f.Patch)
}

// ReactCapabilities describes the detected React setup.
type ReactCapabilities struct {
	HasReact         bool   `json:"hasReact"`
	IsNext           bool   `json:"isNext"`
	IsCreateReactApp bool   `json:"isCreateReactApp"`
	Version          string `json:"version,omitempty"`
}

// TypeScriptCapabilities describes the detected TypeScript setup.
type TypeScriptCapabilities struct {
	HasTypeScript bool   `json:"hasTypeScript"`
	Version       string `json:"version,omitempty"`
}

// Capabilities is the set of project features that decide which fragments are built.
type Capabilities struct {
	HasTypeScript     bool                   `json:"hasTypeScript"`
	HasJest           bool                   `json:"hasJest"`
	HasJestDom        bool                   `json:"hasJestDom"`
	HasTestingLibrary bool                   `json:"hasTestingLibrary"`
	HasStorybook      bool                   `json:"hasStorybook"`
	React             ReactCapabilities      `json:"react"`
	TypeScript        TypeScriptCapabilities `json:"typescript"`
}

// UserConfig carries the caller-supplied parts of the configuration.
// Overrides without an overrideType stay foreign; tagged ones merge with the
// internal fragment of the same kind.
type UserConfig struct {
	Rules         *RuleMap        `yaml:"rules,omitempty" json:"rules,omitempty"`
	Overrides     []Fragment      `yaml:"overrides,omitempty" json:"overrides,omitempty"`
	Extends       []string        `yaml:"extends,omitempty" json:"extends,omitempty"`
	Plugins       []string        `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Env           map[string]bool `yaml:"env,omitempty" json:"env,omitempty"`
	ParserOptions map[string]any  `yaml:"parserOptions,omitempty" json:"parserOptions,omitempty"`
	Settings      map[string]any  `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// Config is the composed configuration handed to the linter.
type Config struct {
	Extends       []string        `yaml:"extends" json:"extends"`
	Plugins       []string        `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Env           map[string]bool `yaml:"env,omitempty" json:"env,omitempty"`
	ParserOptions map[string]any  `yaml:"parserOptions,omitempty" json:"parserOptions,omitempty"`
	Settings      map[string]any  `yaml:"settings,omitempty" json:"settings,omitempty"`
	Rules         *RuleMap        `yaml:"rules" json:"rules"`
	Overrides     []Fragment      `yaml:"overrides" json:"overrides"`
}
