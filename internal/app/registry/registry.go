package registry

import (
	"fmt"

	"gathering/internal/app/errors"
	"gathering/internal/config"
)

// SectionDescriptor identifies one full-screen section of the deck
type SectionDescriptor struct {
	ID      string
	Label   string
	Ordinal int
	Title   string
	Body    string
}

// Registry is the immutable ordered set of sections for a session
type Registry struct {
	sections []SectionDescriptor
	byID     map[string]int
}

// New builds a registry from the configured sections, assigning ordinals by position
func New(sections []config.Section) (*Registry, error) {
	if len(sections) == 0 {
		return nil, errors.ErrEmptyRegistry
	}

	r := &Registry{
		sections: make([]SectionDescriptor, 0, len(sections)),
		byID:     make(map[string]int, len(sections)),
	}

	for i, s := range sections {
		if s.ID == "" {
			return nil, fmt.Errorf("section %d: %w", i, errors.ErrSectionIDRequired)
		}

		if _, exists := r.byID[s.ID]; exists {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrDuplicateSectionID, s.ID)
		}

		r.byID[s.ID] = i
		r.sections = append(r.sections, SectionDescriptor{
			ID:      s.ID,
			Label:   s.Label,
			Ordinal: i,
			Title:   s.Title,
			Body:    s.Body,
		})
	}

	return r, nil
}

// NewFromConfig builds the registry from the loaded configuration
func NewFromConfig(cfg *config.Config) (*Registry, error) {
	return New(cfg.Sections)
}

// Len returns the number of sections
func (r *Registry) Len() int {
	return len(r.sections)
}

// Lookup finds a section by id
func (r *Registry) Lookup(id string) (SectionDescriptor, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return SectionDescriptor{}, false
	}

	return r.sections[idx], true
}

// At returns the section at the given ordinal
func (r *Registry) At(ordinal int) (SectionDescriptor, bool) {
	if ordinal < 0 || ordinal >= len(r.sections) {
		return SectionDescriptor{}, false
	}

	return r.sections[ordinal], true
}

// All returns a copy of the ordered sections
func (r *Registry) All() []SectionDescriptor {
	out := make([]SectionDescriptor, len(r.sections))
	copy(out, r.sections)

	return out
}
