// Package overrides builds the internal, capability-conditioned override
// fragments and the base configuration they are composed into.
package overrides

import (
	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/lintcfg/internal/engine/version"
)

// File scopes of the internal fragments.
var (
	JestFiles       = []string{"**/*.test.{js,jsx,ts,tsx}", "**/*.spec.{js,jsx,ts,tsx}", "**/__tests__/**"}
	JestConfigFiles = []string{"jest.config.{js,cjs,mjs,ts}", "jest.setup.{js,ts}"}
	StorybookFiles  = []string{"**/*.stories.{js,jsx,ts,tsx,mdx}"}
	TypeScriptFiles = []string{"**/*.ts", "**/*.tsx"}
	ReactFiles      = []string{"**/*.jsx", "**/*.tsx"}
)

// Version floors that switch rule sets.
var (
	// NewJSXTransform is the first React release that no longer needs React in scope.
	NewJSXTransform = domain.VersionFloor{Major: 17}
	// TypeScriptExpectError is the first TypeScript release with @ts-expect-error.
	TypeScriptExpectError = domain.VersionFloor{Major: 3, Minor: 9}
)

// Builder creates fragments for a detected project.
type Builder struct {
	versions *version.Evaluator
}

// NewBuilder creates a Builder that gates version-dependent rules with versions.
func NewBuilder(versions *version.Evaluator) *Builder {
	return &Builder{versions: versions}
}

// Fragments returns one entry per internal kind, absent when the project
// lacks the capability.
func (b *Builder) Fragments(caps domain.Capabilities) []domain.Optional[domain.Fragment] {
	return []domain.Optional[domain.Fragment]{
		b.React(caps),
		b.TypeScript(caps),
		Jest(caps),
		JestConfig(caps),
		Storybook(caps),
	}
}

// Jest scopes test globals and test-library rules to test files.
func Jest(caps domain.Capabilities) domain.Optional[domain.Fragment] {
	if !caps.HasJest {
		return domain.None[domain.Fragment]()
	}

	f := domain.Fragment{
		Files:        JestFiles,
		OverrideType: domain.OverrideJest,
		Env:          map[string]bool{"jest": true, "node": true},
		Extends:      []string{"plugin:jest/recommended"},
		Plugins:      []string{"jest"},
		Rules: domain.NewRuleMap(
			domain.On("jest/no-disabled-tests", domain.SeverityWarn),
			domain.On("jest/no-focused-tests", domain.SeverityError),
			domain.On("jest/valid-expect", domain.SeverityError),
			domain.On("jest/prefer-to-have-length", domain.SeverityWarn),
			domain.On("max-lines-per-function", domain.SeverityOff),
		),
	}

	if caps.HasJestDom {
		f.Plugins = append(f.Plugins, "jest-dom")
		f.Rules.Set("jest-dom/prefer-checked", domain.SeverityWarn)
		f.Rules.Set("jest-dom/prefer-to-have-text-content", domain.SeverityWarn)
	}

	if caps.HasTestingLibrary {
		f.Plugins = append(f.Plugins, "testing-library")
		f.Rules.Set("testing-library/await-async-queries", domain.SeverityError)
		f.Rules.Set("testing-library/no-debugging-utils", domain.SeverityWarn)
		if caps.React.HasReact {
			f.Rules.Set("testing-library/no-container", domain.SeverityError)
			f.Rules.Set("testing-library/render-result-naming-convention", domain.SeverityWarn)
		}
	}

	return domain.Some(f)
}

// JestConfig relaxes module rules for jest configuration and setup files.
func JestConfig(caps domain.Capabilities) domain.Optional[domain.Fragment] {
	if !caps.HasJest {
		return domain.None[domain.Fragment]()
	}

	return domain.Some(domain.Fragment{
		Files:        JestConfigFiles,
		OverrideType: domain.OverrideJestConfig,
		Env:          map[string]bool{"node": true},
		Rules: domain.NewRuleMap(
			domain.On("import/no-commonjs", domain.SeverityOff),
			domain.On("import/no-extraneous-dependencies", domain.SeverityOff),
		),
	})
}

// Storybook allows default exports and anonymous stories in story files.
func Storybook(caps domain.Capabilities) domain.Optional[domain.Fragment] {
	if !caps.HasStorybook {
		return domain.None[domain.Fragment]()
	}

	return domain.Some(domain.Fragment{
		Files:        StorybookFiles,
		OverrideType: domain.OverrideStorybook,
		Extends:      []string{"plugin:storybook/recommended"},
		Rules: domain.NewRuleMap(
			domain.On("import/no-default-export", domain.SeverityOff),
			domain.On("import/no-anonymous-default-export", domain.SeverityOff),
		),
	})
}

// TypeScript adds the typed parser and rules replacing their untyped counterparts.
func (b *Builder) TypeScript(caps domain.Capabilities) domain.Optional[domain.Fragment] {
	if !caps.HasTypeScript && !caps.TypeScript.HasTypeScript {
		return domain.None[domain.Fragment]()
	}

	f := domain.Fragment{
		Files:        TypeScriptFiles,
		OverrideType: domain.OverrideTypeScript,
		Plugins:      []string{"@typescript-eslint"},
		ParserOptions: map[string]any{
			"project":    "./tsconfig.json",
			"sourceType": "module",
		},
		Rules: domain.NewRuleMap(
			domain.On("no-unused-vars", domain.SeverityOff),
			domain.On("@typescript-eslint/no-unused-vars", domain.SeverityWarn, map[string]any{"argsIgnorePattern": "^_"}),
			domain.On("no-shadow", domain.SeverityOff),
			domain.On("@typescript-eslint/no-shadow", domain.SeverityError),
			domain.On("@typescript-eslint/consistent-type-imports", domain.SeverityWarn),
			domain.On("@typescript-eslint/no-explicit-any", domain.SeverityWarn),
		),
	}

	if b.versions.Satisfies(caps.TypeScript.Version, TypeScriptExpectError) {
		f.Rules.Set("@typescript-eslint/ban-ts-comment", []any{
			domain.SeverityError,
			map[string]any{"ts-expect-error": "allow-with-description"},
		})
	} else {
		f.Rules.Set("@typescript-eslint/ban-ts-comment", domain.SeverityWarn)
	}

	return domain.Some(f)
}

// React adds JSX rules, adjusted for Next.js, Create React App and the new
// JSX transform.
func (b *Builder) React(caps domain.Capabilities) domain.Optional[domain.Fragment] {
	if !caps.React.HasReact {
		return domain.None[domain.Fragment]()
	}

	f := domain.Fragment{
		Files:         ReactFiles,
		OverrideType:  domain.OverrideReact,
		Env:           map[string]bool{"browser": true},
		Plugins:       []string{"react", "react-hooks", "jsx-a11y"},
		ParserOptions: map[string]any{"ecmaFeatures": map[string]any{"jsx": true}},
		Settings:      map[string]any{"react": map[string]any{"version": "detect"}},
		Rules: domain.NewRuleMap(
			domain.On("react-hooks/rules-of-hooks", domain.SeverityError),
			domain.On("react-hooks/exhaustive-deps", domain.SeverityWarn),
			domain.On("react/jsx-key", domain.SeverityError),
			domain.On("react/no-danger", domain.SeverityWarn),
			domain.On("react/self-closing-comp", domain.SeverityWarn),
			domain.On("jsx-a11y/alt-text", domain.SeverityWarn),
			domain.On("jsx-a11y/anchor-is-valid", domain.SeverityWarn),
		),
	}

	if caps.React.IsNext || b.versions.Satisfies(caps.React.Version, NewJSXTransform) {
		f.Rules.Set("react/react-in-jsx-scope", domain.SeverityOff)
		f.Rules.Set("react/jsx-uses-react", domain.SeverityOff)
	} else {
		f.Rules.Set("react/react-in-jsx-scope", domain.SeverityError)
		f.Rules.Set("react/jsx-uses-react", domain.SeverityWarn)
	}

	if caps.React.IsNext {
		f.Extends = append(f.Extends, "plugin:@next/next/recommended")
		f.Rules.Set("jsx-a11y/anchor-is-valid", domain.SeverityOff)
		f.Rules.Set("@next/next/no-img-element", domain.SeverityWarn)
	}

	if caps.React.IsCreateReactApp {
		f.Env["jest"] = true
		f.Rules.Set("import/no-default-export", domain.SeverityOff)
	}

	return domain.Some(f)
}
