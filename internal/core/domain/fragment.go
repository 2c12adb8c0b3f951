package domain

// OverrideType tags a fragment as one of the internally managed kinds.
// Fragments without a tag are caller-supplied and never merged.
type OverrideType string

const (
	// OverrideUntagged marks a caller-supplied fragment.
	OverrideUntagged OverrideType = ""
	// OverrideJest scopes rules to test files.
	OverrideJest OverrideType = "jest"
	// OverrideJestConfig scopes rules to jest configuration and setup files.
	OverrideJestConfig OverrideType = "jest-config"
	// OverrideStorybook scopes rules to stories.
	OverrideStorybook OverrideType = "storybook"
	// OverrideTypeScript scopes rules to TypeScript sources.
	OverrideTypeScript OverrideType = "typescript"
	// OverrideReact scopes rules to JSX sources.
	OverrideReact OverrideType = "react"
)

// Priority tokens outside the priority table. Both are lower than every
// table value, and untagged fragments always sort after tagged ones.
const (
	// UnlistedPriority is the token of tagged kinds missing from the table.
	UnlistedPriority = -1
	// UntaggedPriority is the token of caller-supplied fragments.
	UntaggedPriority = -2
)

var overridePriority = map[OverrideType]int{
	OverrideJest:       0,
	OverrideStorybook:  0,
	OverrideTypeScript: 1,
	OverrideReact:      2,
}

// Priority returns the priority token used to order composed fragments.
// Tags missing from the table get UnlistedPriority and untagged fragments
// get UntaggedPriority.
func (t OverrideType) Priority() int {
	if !t.Tagged() {
		return UntaggedPriority
	}
	if p, ok := overridePriority[t]; ok {
		return p
	}
	return UnlistedPriority
}

// Tagged reports whether the fragment kind is managed by the composer.
func (t OverrideType) Tagged() bool {
	return t != OverrideUntagged
}

// Fragment is a scoped rule-configuration patch applying to files matching Files.
type Fragment struct {
	Files         []string        `yaml:"files,omitempty" json:"files,omitempty"`
	OverrideType  OverrideType    `yaml:"overrideType,omitempty" json:"overrideType,omitempty"`
	Extends       []string        `yaml:"extends,omitempty" json:"extends,omitempty"`
	Plugins       []string        `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Env           map[string]bool `yaml:"env,omitempty" json:"env,omitempty"`
	ParserOptions map[string]any  `yaml:"parserOptions,omitempty" json:"parserOptions,omitempty"`
	Settings      map[string]any  `yaml:"settings,omitempty" json:"settings,omitempty"`
	Rules         *RuleMap        `yaml:"rules,omitempty" json:"rules,omitempty"`
	Overrides     []Fragment      `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// Optional holds a value that may be absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether a value is held.
func (o Optional[T]) Present() bool {
	return o.ok
}
