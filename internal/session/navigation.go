package session

import (
	"fmt"

	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/alexanderramin/irbforge/internal/form"
)

// Sections gated on a specific data-collection approach.
var dataSectionAxis = map[string]domain.DataCollection{
	form.DataCollectionProtocolID: domain.DataProspective,
	form.DataSourceID:             domain.DataRetrospective,
}

// Shared safety/ethics sections stay disabled until both classification
// axes are resolved.
var classificationGatedSections = map[string]bool{
	"safety_assessment": true,
	"ethics_review":     true,
}

// ActiveSectionID returns the id of the currently active section.
func (s *Session) ActiveSectionID() string { return s.active }

// ActiveSection resolves the active section from the configuration.
// A missing entry is reported, not panicked on: the caller renders an
// inline error state and navigation elsewhere stays possible.
func (s *Session) ActiveSection() (domain.Section, error) {
	sec, ok := form.SectionByID(s.Sections, s.active)
	if !ok {
		return domain.Section{}, fmt.Errorf("active section %q: %w", s.active, ErrSectionNotFound)
	}
	return sec, nil
}

// InReview reports whether the session has advanced past the last section
// into the terminal review display state.
func (s *Session) InReview() bool { return s.review }

// EnterReview switches to review mode directly (used by the edit-from-
// review flow's return path).
func (s *Session) EnterReview() { s.review = true }

// SectionDisabled derives whether a section is closed to direct
// navigation. A section is disabled when it has never been reached and is
// not complete, when it is gated on a classification axis that does not
// match the current wizard state, or when it is a shared safety/ethics
// section and the classification is still incomplete.
func (s *Session) SectionDisabled(sectionID string) bool {
	if sectionID == s.active {
		return false
	}

	if axis, ok := dataSectionAxis[sectionID]; ok && s.Wizard.DataCollection != axis {
		return true
	}
	if classificationGatedSections[sectionID] && !s.Wizard.Complete() {
		return true
	}

	return !s.visited[sectionID] && !s.SectionComplete(sectionID)
}

// DisabledSections lists disabled section ids in configuration order.
func (s *Session) DisabledSections() []string {
	var out []string
	for _, sec := range s.Sections {
		if s.SectionDisabled(sec.ID) {
			out = append(out, sec.ID)
		}
	}
	return out
}

// GoTo jumps to a section. Jumps to unknown sections report
// ErrSectionNotFound; jumps to disabled sections report
// ErrNavigationBlocked and change nothing. A successful jump marks the
// target visited, pushes it onto the navigation history, and leaves
// review mode.
func (s *Session) GoTo(sectionID string) error {
	if sectionID == s.active {
		s.review = false
		return nil
	}
	if _, ok := form.SectionByID(s.Sections, sectionID); !ok {
		return fmt.Errorf("go to %q: %w", sectionID, ErrSectionNotFound)
	}
	if s.SectionDisabled(sectionID) {
		return fmt.Errorf("go to %q: %w", sectionID, ErrNavigationBlocked)
	}

	s.active = sectionID
	s.visited[sectionID] = true
	s.history = append(s.history, sectionID)
	s.review = false
	return nil
}

// Back pops the navigation history and re-activates the previous section.
// With a single entry there is nowhere to go; Back reports false and
// changes nothing.
func (s *Session) Back() bool {
	if s.review {
		s.review = false
		return true
	}
	if len(s.history) <= 1 {
		return false
	}
	s.history = s.history[:len(s.history)-1]
	s.active = s.history[len(s.history)-1]
	return true
}

// Next validates the active section and advances to the following one.
// When required fields are missing the transition is blocked with
// ErrIncompleteSection and the error map is recorded for display; passing
// force (the explicit leave-anyway) advances regardless. Advancing past
// the last section enters review mode instead of walking off the list.
func (s *Session) Next(force bool) error {
	valid, _, err := s.Validate(s.active)
	if err != nil {
		return err
	}
	if !valid && !force {
		return fmt.Errorf("leaving %q: %w", s.active, ErrIncompleteSection)
	}

	idx := -1
	for i, sec := range s.Sections {
		if sec.ID == s.active {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("advancing from %q: %w", s.active, ErrSectionNotFound)
	}

	if idx+1 >= len(s.Sections) {
		s.review = true
		return nil
	}

	next := s.Sections[idx+1].ID
	s.active = next
	s.visited[next] = true
	s.history = append(s.history, next)
	return nil
}
