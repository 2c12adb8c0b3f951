package composer

import (
	"maps"
	"reflect"
	"slices"

	"go.trai.ch/lintcfg/internal/core/domain"
)

// Merge deep-merges incoming into base and returns the result. Neither argument
// is modified.
//
// For every field set in incoming: a field missing from base takes the incoming
// value as is; a sequence becomes the ordered, deduplicated union of base and
// incoming without empty entries; a mapping is shallow merged with incoming keys
// winning; a scalar is replaced.
func Merge(base, incoming domain.Fragment) domain.Fragment {
	out := base

	if incoming.Files != nil {
		out.Files = mergeSeq(base.Files, incoming.Files, unionStrings)
	}
	if incoming.OverrideType.Tagged() {
		out.OverrideType = incoming.OverrideType
	}
	if incoming.Extends != nil {
		out.Extends = mergeSeq(base.Extends, incoming.Extends, unionStrings)
	}
	if incoming.Plugins != nil {
		out.Plugins = mergeSeq(base.Plugins, incoming.Plugins, unionStrings)
	}
	if incoming.Env != nil {
		out.Env = mergeMap(base.Env, incoming.Env)
	}
	if incoming.ParserOptions != nil {
		out.ParserOptions = mergeMap(base.ParserOptions, incoming.ParserOptions)
	}
	if incoming.Settings != nil {
		out.Settings = mergeMap(base.Settings, incoming.Settings)
	}
	if incoming.Rules != nil {
		if base.Rules == nil {
			out.Rules = incoming.Rules
		} else {
			out.Rules = base.Rules.Merge(incoming.Rules)
		}
	}
	if incoming.Overrides != nil {
		out.Overrides = mergeSeq(base.Overrides, incoming.Overrides, unionFragments)
	}

	return out
}

func mergeSeq[T any](base, incoming []T, union func(a, b []T) []T) []T {
	if base == nil {
		return incoming
	}
	return union(base, incoming)
}

func mergeMap[V any](base, incoming map[string]V) map[string]V {
	if base == nil {
		return incoming
	}
	out := maps.Clone(base)
	maps.Copy(out, incoming)
	return out
}

func unionStrings(base, incoming []string) []string {
	out := make([]string, 0, len(base)+len(incoming))
	seen := make(map[string]struct{}, len(base)+len(incoming))
	for _, s := range slices.Concat(base, incoming) {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func unionFragments(base, incoming []domain.Fragment) []domain.Fragment {
	out := make([]domain.Fragment, 0, len(base)+len(incoming))
	for _, f := range slices.Concat(base, incoming) {
		dup := slices.ContainsFunc(out, func(e domain.Fragment) bool {
			return reflect.DeepEqual(e, f)
		})
		if !dup {
			out = append(out, f)
		}
	}
	return out
}
