package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/google/uuid"
)

// AnswerRow pairs a question with its entered answer for review display.
type AnswerRow struct {
	Question domain.Question
	Answer   domain.Answer
	Answered bool
}

// SectionSummary is one section's slice of the review page.
type SectionSummary struct {
	Section  domain.Section
	Complete bool
	Rows     []AnswerRow
}

// ReviewSummary aggregates the entire form for the review page, in
// configuration order.
func (s *Session) ReviewSummary() []SectionSummary {
	out := make([]SectionSummary, 0, len(s.Sections))
	for _, sec := range s.Sections {
		summary := SectionSummary{
			Section:  sec,
			Complete: s.SectionComplete(sec.ID),
		}
		for _, q := range sec.Questions {
			ans, ok := s.Data[q.ID]
			summary.Rows = append(summary.Rows, AnswerRow{
				Question: q,
				Answer:   ans,
				Answered: ok && !ans.Empty(),
			})
		}
		out = append(out, summary)
	}
	return out
}

// Submit gates submission on full validation: every section must pass.
// On success the session is stamped with a submission id and timestamp.
func (s *Session) Submit() error {
	if s.SubmittedAt != nil {
		return ErrAlreadySubmitted
	}

	var incomplete []string
	for _, sec := range s.Sections {
		valid, _, err := s.Validate(sec.ID)
		if err != nil {
			return err
		}
		if !valid {
			incomplete = append(incomplete, sec.ID)
		}
	}
	if len(incomplete) > 0 {
		return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(incomplete, ", "))
	}

	now := time.Now().UTC()
	s.SubmissionID = uuid.NewString()
	s.SubmittedAt = &now
	return nil
}
