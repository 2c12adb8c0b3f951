// Package version evaluates declared dependency versions against minimum floors.
package version

import (
	"strconv"
	"strings"

	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/lintcfg/internal/core/ports"
	"go.trai.ch/zerr"
)

// atLeastPrefix marks a declared range of the form ">=N".
const atLeastPrefix = ">="

// rangeQualifiers are stripped from the front of a plain version before parsing.
const rangeQualifiers = "^~=v "

// Evaluator decides whether declared versions meet a floor.
// It never fails: unparseable versions are logged and treated as unsatisfied.
type Evaluator struct {
	logger ports.Logger
}

// NewEvaluator creates an Evaluator that reports parse failures to logger.
func NewEvaluator(logger ports.Logger) *Evaluator {
	return &Evaluator{logger: logger}
}

// Satisfies reports whether version is at or above floor.
//
// A ">=N" version satisfies the floor unless N is below floor.Major. Any other
// version is read as major.minor.patch, where missing segments are 0 and only
// the leading integer of each segment counts.
func (e *Evaluator) Satisfies(version string, floor domain.VersionFloor) bool {
	version = strings.TrimSpace(version)
	if version == "" {
		e.report(version, domain.ErrNoVersionGiven)
		return false
	}

	if rest, ok := strings.CutPrefix(version, atLeastPrefix); ok {
		first, _, _ := strings.Cut(strings.TrimSpace(rest), ".")
		major, err := segment(first)
		if err != nil {
			e.report(version, err)
			return false
		}
		return major >= floor.Major
	}

	parsed, err := Parse(version)
	if err != nil {
		e.report(version, err)
		return false
	}
	return Compare(parsed, floor) >= 0
}

func (e *Evaluator) report(version string, cause error) {
	if e.logger == nil {
		return
	}
	err := zerr.Wrap(cause, domain.ErrVersionParse.Error())
	e.logger.Error(zerr.With(err, "version", version))
}

// Parse reads a version string into a floor-shaped triple.
// Leading range qualifiers (^, ~, =, v) are ignored, as are pre-release and
// build suffixes within a segment. The wildcards x, X and * read as 0.
func Parse(version string) (domain.VersionFloor, error) {
	trimmed := strings.TrimLeft(strings.TrimSpace(version), rangeQualifiers)
	if trimmed == "" {
		return domain.VersionFloor{}, domain.ErrNoVersionGiven
	}

	parts := strings.SplitN(trimmed, ".", 4)
	var nums [3]int
	for i := 0; i < len(nums) && i < len(parts); i++ {
		n, err := segment(parts[i])
		if err != nil {
			return domain.VersionFloor{}, err
		}
		nums[i] = n
	}

	return domain.VersionFloor{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Compare orders two triples lexicographically, major first.
// It returns -1, 0 or 1.
func Compare(a, b domain.VersionFloor) int {
	switch {
	case a.Major != b.Major:
		return sign(a.Major - b.Major)
	case a.Minor != b.Minor:
		return sign(a.Minor - b.Minor)
	default:
		return sign(a.Patch - b.Patch)
	}
}

// ParseFloor reads a floor given as major[.minor[.patch]] with plain integers.
func ParseFloor(s string) (domain.VersionFloor, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) > 3 {
		return domain.VersionFloor{}, zerr.With(domain.ErrInvalidVersionFloor, "floor", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return domain.VersionFloor{}, zerr.With(domain.ErrInvalidVersionFloor, "floor", s)
		}
		nums[i] = n
	}
	return domain.VersionFloor{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// segment returns the leading integer of a dot-separated version segment.
func segment(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "x" || s == "X" || s == "*" {
		return 0, nil
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, zerr.With(zerr.New("non-numeric version segment"), "segment", s)
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, zerr.Wrap(err, "version segment out of range")
	}
	return n, nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
