// Package severity converts symbolic rule severities into their numeric form.
package severity

import "go.trai.ch/lintcfg/internal/core/domain"

// Options controls Normalize.
type Options struct {
	// ConvertToInternal replaces symbolic severities with their ordinals.
	ConvertToInternal bool
}

// Normalize returns rules with severities converted according to opts.
//
// With ConvertToInternal unset the input is returned as is. Otherwise a new map
// is built where "off", "warn" and "error" become 0, 1 and 2, and a
// [severity, options...] sequence keeps its options. Any other value passes
// through untouched.
func Normalize(rules *domain.RuleMap, opts Options) *domain.RuleMap {
	if !opts.ConvertToInternal || rules == nil {
		return rules
	}

	out := domain.NewRuleMap()
	for name, value := range rules.All() {
		out.Set(name, normalizeValue(value))
	}
	return out
}

// NormalizeFragments applies Normalize to the rules of every fragment,
// including nested overrides. The input slice is not modified.
func NormalizeFragments(fragments []domain.Fragment, opts Options) []domain.Fragment {
	if !opts.ConvertToInternal || fragments == nil {
		return fragments
	}

	out := make([]domain.Fragment, len(fragments))
	for i, f := range fragments {
		f.Rules = Normalize(f.Rules, opts)
		f.Overrides = NormalizeFragments(f.Overrides, opts)
		out[i] = f
	}
	return out
}

func normalizeValue(value any) any {
	if s, ok := domain.ParseSeverity(value); ok {
		return s.Ordinal()
	}

	seq, ok := value.([]any)
	if !ok || len(seq) == 0 {
		return value
	}
	s, ok := domain.ParseSeverity(seq[0])
	if !ok {
		return value
	}

	converted := make([]any, len(seq))
	converted[0] = s.Ordinal()
	copy(converted[1:], seq[1:])
	return converted
}
