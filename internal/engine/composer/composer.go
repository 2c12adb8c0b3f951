// Package composer merges capability-conditioned override fragments into the
// ordered override list of a configuration.
package composer

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/lintcfg/internal/core/domain"
)

// Compose drops absent fragments, merges tagged fragments that share a type
// and file scope, and orders the result by override priority.
//
// Composition is a pure fold: input fragments are never modified, and
// composing an already composed list yields the same list.
func Compose(fragments []domain.Optional[domain.Fragment]) []domain.Fragment {
	present := make([]domain.Fragment, 0, len(fragments))
	for _, opt := range fragments {
		if f, ok := opt.Get(); ok {
			present = append(present, f)
		}
	}
	return ComposeFragments(present)
}

// ComposeFragments composes fragments that are all present.
func ComposeFragments(fragments []domain.Fragment) []domain.Fragment {
	acc := make([]domain.Fragment, 0, len(fragments))
	for _, f := range fragments {
		acc = fold(acc, f)
	}

	slices.SortStableFunc(acc, byPriority)
	return acc
}

// fold adds f to the accumulator.
//
// Untagged fragments are always appended. A tagged fragment is merged into the
// first accumulated entry of the same type whose file patterns are all in
// f.Files; without such an entry it is appended as a separate entry.
func fold(acc []domain.Fragment, f domain.Fragment) []domain.Fragment {
	if !f.OverrideType.Tagged() {
		return append(acc, f)
	}

	i := slices.IndexFunc(acc, func(e domain.Fragment) bool {
		return e.OverrideType == f.OverrideType && covers(f.Files, e.Files)
	})
	if i < 0 {
		return append(acc, f)
	}

	acc[i] = Merge(acc[i], f)
	return acc
}

// covers reports whether every pattern in existing is in incoming.
func covers(incoming, existing []string) bool {
	return mapset.NewSet(incoming...).IsSuperset(mapset.NewSet(existing...))
}

// byPriority orders fragments with larger priority tokens first, so react (2)
// precedes typescript (1), which precedes jest and storybook (0). Tagged kinds
// outside the table follow, and untagged fragments come last.
func byPriority(a, b domain.Fragment) int {
	return cmp.Compare(b.OverrideType.Priority(), a.OverrideType.Priority())
}
