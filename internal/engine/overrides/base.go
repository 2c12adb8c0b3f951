package overrides

import (
	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/lintcfg/internal/engine/composer"
)

// Base returns the project-wide configuration without overrides.
func Base(caps domain.Capabilities) domain.Config {
	cfg := domain.Config{
		Extends: []string{"eslint:recommended", "plugin:import/recommended"},
		Plugins: []string{"import", "promise"},
		Env:     map[string]bool{"es2022": true},
		ParserOptions: map[string]any{
			"ecmaVersion": "latest",
			"sourceType":  "module",
		},
		Rules: domain.NewRuleMap(
			domain.On("eqeqeq", domain.SeverityError, "smart"),
			domain.On("no-console", domain.SeverityWarn),
			domain.On("no-debugger", domain.SeverityError),
			domain.On("no-var", domain.SeverityError),
			domain.On("prefer-const", domain.SeverityWarn),
			domain.On("no-unused-vars", domain.SeverityWarn, map[string]any{"argsIgnorePattern": "^_"}),
			domain.On("no-shadow", domain.SeverityError),
			domain.On("max-lines-per-function", domain.SeverityWarn, map[string]any{"max": 120}),
			domain.On("import/no-default-export", domain.SeverityWarn),
			domain.On("import/no-cycle", domain.SeverityError),
			domain.On("promise/catch-or-return", domain.SeverityError),
		),
	}

	if caps.HasTypeScript || caps.TypeScript.HasTypeScript {
		cfg.Extends = append(cfg.Extends, "plugin:import/typescript")
		cfg.Settings = map[string]any{
			"import/resolver": map[string]any{"typescript": map[string]any{}},
		}
	}

	if caps.React.HasReact {
		cfg.Env["browser"] = true
	} else {
		cfg.Env["node"] = true
	}

	return cfg
}

// WithUser layers the top-level parts of user over cfg using the composer's
// merge rules. User overrides are not touched; they are composed together with
// the internal fragments.
func WithUser(cfg domain.Config, user domain.UserConfig) domain.Config {
	base := domain.Fragment{
		Extends:       cfg.Extends,
		Plugins:       cfg.Plugins,
		Env:           cfg.Env,
		ParserOptions: cfg.ParserOptions,
		Settings:      cfg.Settings,
		Rules:         cfg.Rules,
	}
	layered := composer.Merge(base, domain.Fragment{
		Extends:       user.Extends,
		Plugins:       user.Plugins,
		Env:           user.Env,
		ParserOptions: user.ParserOptions,
		Settings:      user.Settings,
		Rules:         user.Rules,
	})

	return domain.Config{
		Extends:       layered.Extends,
		Plugins:       layered.Plugins,
		Env:           layered.Env,
		ParserOptions: layered.ParserOptions,
		Settings:      layered.Settings,
		Rules:         layered.Rules,
		Overrides:     cfg.Overrides,
	}
}
