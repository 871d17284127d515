/*
Package globs provides glob pattern matching helpers.
*/
package globs

import (
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Compile compiles a glob pattern. Separators, if any, restrict what a
// wildcard can match, typically filepath.Separator for path patterns.
func Compile(pattern string, separators ...rune) (glob.Glob, error) {
	g, err := glob.Compile(pattern, separators...)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern: %v", pattern)
	}
	return g, nil
}

// MustCompile is like Compile but panics on an invalid pattern.
func MustCompile(pattern string, separators ...rune) glob.Glob {
	g, err := Compile(pattern, separators...)
	if err != nil {
		panic(err)
	}
	return g
}

// Match reports whether s matches the glob pattern.
func Match(pattern, s string) (bool, error) {
	g, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return g.Match(s), nil
}

// Set is a list of compiled patterns matched together.
type Set struct {
	patterns []string
	globs    []glob.Glob
}

// NewSet compiles the patterns into a set.
func NewSet(patterns []string, separators ...rune) (*Set, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := Compile(p, separators...)
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}

	return &Set{patterns: patterns, globs: globs}, nil
}

// Patterns returns the source patterns of the set.
func (s *Set) Patterns() []string {
	return s.patterns
}

// MatchAny reports whether v matches at least one pattern in the set.
func (s *Set) MatchAny(v string) bool {
	for _, g := range s.globs {
		if g.Match(v) {
			return true
		}
	}
	return false
}

// Filter returns the values matching at least one pattern in the set.
func (s *Set) Filter(values []string) []string {
	return lo.Filter(values, func(v string, _ int) bool {
		return s.MatchAny(v)
	})
}
