// Package session owns the state of one form-filling session: the resolved
// classification, the generated section list, entered answers, navigation
// history, and validation errors. All mutation goes through Session
// methods; persistence is a side effect through the storage port.
package session

import (
	"time"

	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/alexanderramin/irbforge/internal/form"
)

// Session is the single-owner state of an in-progress IRB application.
type Session struct {
	Wizard   domain.WizardState
	Sections []domain.Section
	Data     domain.FormData

	SubmissionID string
	SubmittedAt  *time.Time

	active  string
	visited map[string]bool
	history []string
	errs    map[string]map[string]string
	review  bool

	// questionSection maps question ids to their owning section for
	// optimistic error clearing.
	questionSection map[string]string
}

// New starts a session from a completed wizard classification. The first
// section of the derived configuration becomes active and visited.
func New(ws domain.WizardState) *Session {
	s := &Session{
		Wizard:  ws,
		Data:    make(domain.FormData),
		visited: make(map[string]bool),
		errs:    make(map[string]map[string]string),
	}
	s.regenerate()
	if len(s.Sections) > 0 {
		s.active = s.Sections[0].ID
		s.visited[s.active] = true
		s.history = []string{s.active}
	}
	return s
}

// ApplyWizardState regenerates the configuration after a classification
// change. Entered answers are preserved in full, so any section id present
// in both the old and new configuration keeps its data. Visit and error
// state for vanished sections is dropped; if the active section vanished,
// the session re-enters at the first section.
func (s *Session) ApplyWizardState(ws domain.WizardState) {
	s.Wizard = ws
	s.regenerate()

	keep := make(map[string]bool, len(s.Sections))
	for _, sec := range s.Sections {
		keep[sec.ID] = true
	}
	for id := range s.visited {
		if !keep[id] {
			delete(s.visited, id)
		}
	}
	for id := range s.errs {
		if !keep[id] {
			delete(s.errs, id)
		}
	}

	s.review = false
	if !keep[s.active] && len(s.Sections) > 0 {
		s.active = s.Sections[0].ID
		s.visited[s.active] = true
		s.history = []string{s.active}
		return
	}

	var pruned []string
	for _, id := range s.history {
		if keep[id] {
			pruned = append(pruned, id)
		}
	}
	s.history = pruned
}

func (s *Session) regenerate() {
	s.Sections = form.DeriveConfiguration(s.Wizard)
	s.questionSection = make(map[string]string)
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			s.questionSection[q.ID] = sec.ID
		}
	}
}

// SetAnswer records an answer and optimistically clears the owning
// section's errors: any change inside a section invalidates its stale
// error map without waiting for the next explicit validation.
//
// The date_range_start / date_range_end question ids fold into the single
// composite date_range answer.
func (s *Session) SetAnswer(questionID string, ans domain.Answer) {
	switch questionID {
	case domain.DateRangeStartKey:
		r := s.currentRange()
		r.Start = ans.Date
		s.Data[domain.DateRangeKey] = domain.RangeAnswer(r)
		questionID = domain.DateRangeKey
	case domain.DateRangeEndKey:
		r := s.currentRange()
		r.End = ans.Date
		s.Data[domain.DateRangeKey] = domain.RangeAnswer(r)
		questionID = domain.DateRangeKey
	default:
		s.Data[questionID] = ans
	}

	if secID, ok := s.questionSection[questionID]; ok {
		delete(s.errs, secID)
	}
}

func (s *Session) currentRange() domain.DateRange {
	if ans, ok := s.Data[domain.DateRangeKey]; ok && ans.Kind == domain.AnswerDateRange {
		return ans.Range
	}
	return domain.DateRange{}
}

// Answer returns the stored answer for a question id.
func (s *Session) Answer(questionID string) (domain.Answer, bool) {
	ans, ok := s.Data[questionID]
	return ans, ok
}

// Validate runs the validation engine over one section and records the
// result. Unknown section ids report ErrSectionNotFound.
func (s *Session) Validate(sectionID string) (bool, map[string]string, error) {
	sec, ok := form.SectionByID(s.Sections, sectionID)
	if !ok {
		return false, nil, ErrSectionNotFound
	}
	valid, errs := form.ValidateSection(sec, s.Data)
	if valid {
		delete(s.errs, sectionID)
	} else {
		s.errs[sectionID] = errs
	}
	return valid, errs, nil
}

// Errors returns the recorded error map for a section, nil when clean.
func (s *Session) Errors(sectionID string) map[string]string {
	return s.errs[sectionID]
}

// CanProceed reports whether the section has no recorded errors. It does
// not re-run validation: answers changed since the last failure have
// already cleared the map optimistically.
func (s *Session) CanProceed(sectionID string) bool {
	return len(s.errs[sectionID]) == 0
}

// SectionComplete derives completion: every required question in the
// section has a non-empty answer.
func (s *Session) SectionComplete(sectionID string) bool {
	sec, ok := form.SectionByID(s.Sections, sectionID)
	if !ok {
		return false
	}
	valid, _ := form.ValidateSection(sec, s.Data)
	return valid
}

// CompletedSections lists completed section ids in configuration order.
func (s *Session) CompletedSections() []string {
	var out []string
	for _, sec := range s.Sections {
		if s.SectionComplete(sec.ID) {
			out = append(out, sec.ID)
		}
	}
	return out
}

// VisitedSections lists visited section ids in configuration order.
func (s *Session) VisitedSections() []string {
	var out []string
	for _, sec := range s.Sections {
		if s.visited[sec.ID] {
			out = append(out, sec.ID)
		}
	}
	return out
}
