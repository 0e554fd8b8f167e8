package analyze

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Filter decides which owning types take part in generation.
// Patterns are matched against both the bare type name ("Screen") and the
// qualified one ("example.com/app/screens.Screen").
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewFilter compiles include and exclude glob patterns.
// With no include patterns every type is included.
func NewFilter(include, exclude []string) (*Filter, error) {
	f := &Filter{}

	for _, pattern := range include {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}

		f.include = append(f.include, g)
	}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		f.exclude = append(f.exclude, g)
	}

	return f, nil
}

// Allow reports whether the type id passes the filter. A nil Filter allows
// everything.
func (f *Filter) Allow(id TypeID) bool {
	if f == nil {
		return true
	}

	if len(f.include) > 0 && !matchAny(f.include, id) {
		return false
	}

	return !matchAny(f.exclude, id)
}

func matchAny(globs []glob.Glob, id TypeID) bool {
	for _, g := range globs {
		if g.Match(id.Name) || g.Match(id.String()) {
			return true
		}
	}

	return false
}
