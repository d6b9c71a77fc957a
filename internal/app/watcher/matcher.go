package watcher

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// editorLeftovers are temporary files editors write next to the file being saved
var editorLeftovers = []string{"*.swp", "*.swx", "*~", ".#*", "#*#"}

// Matcher decides which file names in the watched directory trigger a reload
type Matcher interface {
	Match(name string) bool
}

// matcher implements the Matcher interface
type matcher struct {
	patterns []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher compiles the name patterns; editor swap and backup files never match
func NewMatcher(patterns []string) (Matcher, error) {
	m := &matcher{}

	var err error

	if m.patterns, err = compile(patterns); err != nil {
		return nil, err
	}

	if m.ignores, err = compile(editorLeftovers); err != nil {
		return nil, err
	}

	return m, nil
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return globs, nil
}

// Match reports whether the base name of path matches a pattern and is not an editor leftover
func (m *matcher) Match(path string) bool {
	name := filepath.Base(filepath.ToSlash(path))

	for _, ignore := range m.ignores {
		if ignore.Match(name) {
			return false
		}
	}

	for _, pattern := range m.patterns {
		if pattern.Match(name) {
			return true
		}
	}

	return false
}
