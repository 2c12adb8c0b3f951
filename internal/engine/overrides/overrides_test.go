package overrides_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/lintcfg/internal/core/ports/mocks"
	"go.trai.ch/lintcfg/internal/engine/overrides"
	"go.trai.ch/lintcfg/internal/engine/version"
	"go.uber.org/mock/gomock"
)

func newBuilder() *overrides.Builder {
	return overrides.NewBuilder(version.NewEvaluator(nil))
}

func rule(t *testing.T, f domain.Fragment, name string) any {
	t.Helper()
	v, ok := f.Rules.Get(name)
	require.True(t, ok, "rule %s missing", name)
	return v
}

func TestFragments_NoCapabilities(t *testing.T) {
	for _, opt := range newBuilder().Fragments(domain.Capabilities{}) {
		assert.False(t, opt.Present())
	}
}

func TestFragments_Tags(t *testing.T) {
	caps := domain.Capabilities{
		HasTypeScript: true,
		HasJest:       true,
		HasStorybook:  true,
		React:         domain.ReactCapabilities{HasReact: true, Version: "18.2.0"},
		TypeScript:    domain.TypeScriptCapabilities{HasTypeScript: true, Version: "5.4.0"},
	}

	var got []domain.OverrideType
	for _, opt := range newBuilder().Fragments(caps) {
		f, ok := opt.Get()
		require.True(t, ok)
		got = append(got, f.OverrideType)
	}

	assert.Equal(t, []domain.OverrideType{
		domain.OverrideReact,
		domain.OverrideTypeScript,
		domain.OverrideJest,
		domain.OverrideJestConfig,
		domain.OverrideStorybook,
	}, got)
}

func TestJest_Additions(t *testing.T) {
	f, ok := overrides.Jest(domain.Capabilities{
		HasJest:           true,
		HasJestDom:        true,
		HasTestingLibrary: true,
		React:             domain.ReactCapabilities{HasReact: true},
	}).Get()
	require.True(t, ok)

	assert.Equal(t, []string{"jest", "jest-dom", "testing-library"}, f.Plugins)
	assert.Equal(t, domain.SeverityWarn, rule(t, f, "jest-dom/prefer-checked"))
	assert.Equal(t, domain.SeverityError, rule(t, f, "testing-library/no-container"))
}

func TestJest_WithoutReactSkipsDomQueries(t *testing.T) {
	f, ok := overrides.Jest(domain.Capabilities{HasJest: true, HasTestingLibrary: true}).Get()
	require.True(t, ok)

	_, found := f.Rules.Get("testing-library/no-container")
	assert.False(t, found)
}

func TestReact_JSXTransform(t *testing.T) {
	tests := []struct {
		name      string
		react     domain.ReactCapabilities
		wantScope any
	}{
		{name: "react 16", react: domain.ReactCapabilities{HasReact: true, Version: "^16.14.0"}, wantScope: domain.SeverityError},
		{name: "react 17", react: domain.ReactCapabilities{HasReact: true, Version: "^17.0.2"}, wantScope: domain.SeverityOff},
		{name: "next with old react", react: domain.ReactCapabilities{HasReact: true, IsNext: true, Version: "16.0.0"}, wantScope: domain.SeverityOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := newBuilder().React(domain.Capabilities{React: tt.react}).Get()
			require.True(t, ok)
			assert.Equal(t, tt.wantScope, rule(t, f, "react/react-in-jsx-scope"))
		})
	}
}

func TestReact_NextAndCRA(t *testing.T) {
	next, ok := newBuilder().React(domain.Capabilities{
		React: domain.ReactCapabilities{HasReact: true, IsNext: true, Version: "18.0.0"},
	}).Get()
	require.True(t, ok)
	assert.Contains(t, next.Extends, "plugin:@next/next/recommended")
	assert.Equal(t, domain.SeverityOff, rule(t, next, "jsx-a11y/anchor-is-valid"))

	cra, ok := newBuilder().React(domain.Capabilities{
		React: domain.ReactCapabilities{HasReact: true, IsCreateReactApp: true, Version: "18.0.0"},
	}).Get()
	require.True(t, ok)
	assert.True(t, cra.Env["jest"])
	assert.Empty(t, cra.Extends)
}

func TestReact_MissingVersionLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(1)

	b := overrides.NewBuilder(version.NewEvaluator(log))
	f, ok := b.React(domain.Capabilities{React: domain.ReactCapabilities{HasReact: true}}).Get()
	require.True(t, ok)
	assert.Equal(t, domain.SeverityError, rule(t, f, "react/react-in-jsx-scope"))
}

func TestTypeScript_ExpectErrorGate(t *testing.T) {
	modern, ok := newBuilder().TypeScript(domain.Capabilities{
		TypeScript: domain.TypeScriptCapabilities{HasTypeScript: true, Version: "~4.9.5"},
	}).Get()
	require.True(t, ok)
	assert.Equal(t, []any{domain.SeverityError, map[string]any{"ts-expect-error": "allow-with-description"}},
		rule(t, modern, "@typescript-eslint/ban-ts-comment"))

	legacy, ok := newBuilder().TypeScript(domain.Capabilities{
		TypeScript: domain.TypeScriptCapabilities{HasTypeScript: true, Version: "3.8.3"},
	}).Get()
	require.True(t, ok)
	assert.Equal(t, domain.SeverityWarn, rule(t, legacy, "@typescript-eslint/ban-ts-comment"))
}

func TestBase(t *testing.T) {
	plain := overrides.Base(domain.Capabilities{})
	assert.True(t, plain.Env["node"])
	assert.NotContains(t, plain.Extends, "plugin:import/typescript")
	assert.Nil(t, plain.Settings)

	ts := overrides.Base(domain.Capabilities{HasTypeScript: true, React: domain.ReactCapabilities{HasReact: true}})
	assert.True(t, ts.Env["browser"])
	assert.Contains(t, ts.Extends, "plugin:import/typescript")
	assert.Contains(t, ts.Settings, "import/resolver")
}

func TestWithUser(t *testing.T) {
	base := overrides.Base(domain.Capabilities{})
	user := domain.UserConfig{
		Extends: []string{"prettier", "eslint:recommended"},
		Env:     map[string]bool{"node": false},
		Rules:   domain.NewRuleMap(domain.On("no-console", domain.SeverityOff), domain.On("curly", domain.SeverityError)),
	}

	got := overrides.WithUser(base, user)

	assert.Equal(t, []string{"eslint:recommended", "plugin:import/recommended", "prettier"}, got.Extends)
	assert.False(t, got.Env["node"])
	assert.True(t, got.Env["es2022"])
	v, _ := got.Rules.Get("no-console")
	assert.Equal(t, domain.SeverityOff, v)
	assert.Equal(t, "curly", got.Rules.Keys()[got.Rules.Len()-1])

	v, _ = base.Rules.Get("no-console")
	assert.Equal(t, domain.SeverityWarn, v)
}
