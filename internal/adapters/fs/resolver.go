package fs

import (
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using doublestar patterns.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs expands patterns against candidate asset paths.
// Results follow pattern order; the matches of one pattern are sorted and a
// path matched by several patterns appears once, at its first match.
func (r *Resolver) ResolveInputs(patterns []string, candidates []string) ([]string, error) {
	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(domain.ErrInvalidPattern, "pattern", pattern)
		}

		matched := 0
		for _, candidate := range sorted {
			if !doublestar.MatchUnvalidated(pattern, candidate) {
				continue
			}
			matched++
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			result = append(result, candidate)
		}

		if matched == 0 {
			return nil, zerr.With(domain.ErrPatternNoMatch, "pattern", pattern)
		}
	}

	return result, nil
}
