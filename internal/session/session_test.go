package session

import (
	"testing"
	"time"

	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/alexanderramin/irbforge/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(p domain.Phase, d domain.DataCollection) domain.WizardState {
	selected := domain.SelectedModules(p, d)
	return domain.WizardState{
		Phase:          p,
		DataCollection: d,
		EstimatedMin:   domain.Estimate(p, d),
		Selected:       &selected,
	}
}

// fillSection answers every required question in a section with a
// type-appropriate value.
func fillSection(t *testing.T, s *Session, sectionID string) {
	t.Helper()
	sec, ok := form.SectionByID(s.Sections, sectionID)
	require.True(t, ok, "section %q not in configuration", sectionID)

	for _, q := range sec.Questions {
		if !q.Required {
			continue
		}
		switch q.Type {
		case domain.TypeTeamList:
			s.SetAnswer(q.ID, domain.TeamAnswer([]domain.TeamMember{
				{ID: "tm-1", Name: "Dana Reyes", Role: "pi"},
			}))
		case domain.TypeDateRange:
			start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
			s.SetAnswer(q.ID, domain.RangeAnswer(domain.DateRange{Start: &start, End: &end}))
		case domain.TypeNumber:
			s.SetAnswer(q.ID, domain.NumberAnswer(250))
		default:
			s.SetAnswer(q.ID, domain.TextAnswer("filled in for testing"))
		}
	}
}

func TestNewSessionStartsAtFirstSection(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	assert.Equal(t, form.GettingStartedID, s.ActiveSectionID())
	assert.Equal(t, []string{form.GettingStartedID}, s.VisitedSections())
	assert.False(t, s.InReview())
}

func TestValidateRecordsAndClearsErrors(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	valid, errs, err := s.Validate(form.GettingStartedID)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Equal(t, form.MsgRequired, errs["study_title"])
	assert.Equal(t, form.MsgRequired, errs["research_team"])
	assert.NotContains(t, errs, "supporting_documents", "optional questions never error")
	assert.False(t, s.CanProceed(form.GettingStartedID))

	fillSection(t, s, form.GettingStartedID)
	valid, errs, err = s.Validate(form.GettingStartedID)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Empty(t, errs)
	assert.True(t, s.CanProceed(form.GettingStartedID))
}

func TestSetAnswerClearsSectionErrorsOptimistically(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	valid, _, err := s.Validate(form.GettingStartedID)
	require.NoError(t, err)
	require.False(t, valid)
	require.NotEmpty(t, s.Errors(form.GettingStartedID))

	// A single change anywhere in the section clears its recorded errors
	// without re-validating; the stale map must not keep blocking.
	s.SetAnswer("study_title", domain.TextAnswer("Sepsis prediction pilot"))
	assert.Nil(t, s.Errors(form.GettingStartedID))
	assert.True(t, s.CanProceed(form.GettingStartedID))
}

func TestValidateUnknownSection(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	_, _, err := s.Validate("no_such_section")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestDateRangePartsFoldIntoComposite(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataProspective))

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)

	s.SetAnswer(domain.DateRangeStartKey, domain.DateAnswer(start))
	ans, ok := s.Answer(domain.DateRangeKey)
	require.True(t, ok)
	require.NotNil(t, ans.Range.Start)
	assert.Nil(t, ans.Range.End)

	s.SetAnswer(domain.DateRangeEndKey, domain.DateAnswer(end))
	ans, _ = s.Answer(domain.DateRangeKey)
	require.NotNil(t, ans.Range.Start)
	require.NotNil(t, ans.Range.End)
	assert.Equal(t, start, *ans.Range.Start)
	assert.Equal(t, end, *ans.Range.End)

	// The parts never appear as standalone entries.
	_, ok = s.Answer(domain.DateRangeStartKey)
	assert.False(t, ok)
}

func TestDateRangeErrorClearedByEitherBound(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataProspective))

	valid, errs, err := s.Validate(form.DataCollectionProtocolID)
	require.NoError(t, err)
	require.False(t, valid)
	assert.Equal(t, form.MsgDateRangeBoth, errs[domain.DateRangeKey])

	s.SetAnswer(domain.DateRangeStartKey, domain.DateAnswer(time.Now()))
	assert.Nil(t, s.Errors(form.DataCollectionProtocolID))
}

func TestAnswersSurviveClassificationChange(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))
	fillSection(t, s, form.GettingStartedID)
	fillSection(t, s, form.DataSourceID)

	_, hasRetro := form.SectionByID(s.Sections, form.DataSourceID)
	require.True(t, hasRetro)

	s.ApplyWizardState(classify(domain.PhaseValidation, domain.DataProspective))

	_, hasRetro = form.SectionByID(s.Sections, form.DataSourceID)
	assert.False(t, hasRetro, "retrospective data section replaced")
	_, hasPro := form.SectionByID(s.Sections, form.DataCollectionProtocolID)
	assert.True(t, hasPro)

	// Nothing the researcher typed is lost, including answers whose
	// sections are no longer in the configuration.
	title, ok := s.Answer("study_title")
	require.True(t, ok)
	assert.Equal(t, domain.AnswerText, title.Kind)
	_, ok = s.Answer("data_sources_description")
	assert.True(t, ok)

	// Switching back restores the section with its answers intact.
	s.ApplyWizardState(classify(domain.PhaseValidation, domain.DataRetrospective))
	assert.True(t, s.SectionComplete(form.DataSourceID))
}

func TestActiveSectionResetWhenItVanishes(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	// Walk forward to the data section at the end of the list.
	for s.ActiveSectionID() != form.DataSourceID {
		require.NoError(t, s.Next(true))
	}

	s.ApplyWizardState(classify(domain.PhasePilot, domain.DataProspective))
	assert.Equal(t, form.GettingStartedID, s.ActiveSectionID())
	assert.False(t, s.InReview())
}

func TestCompletedSectionsInConfigurationOrder(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	// Sections without registered questions are trivially complete.
	completed := s.CompletedSections()
	assert.Contains(t, completed, "data_security_plan")
	assert.NotContains(t, completed, form.GettingStartedID)

	fillSection(t, s, form.GettingStartedID)
	completed = s.CompletedSections()
	require.NotEmpty(t, completed)
	assert.Equal(t, form.GettingStartedID, completed[0])
}

func TestSubmitGatesOnFullValidation(t *testing.T) {
	s := New(classify(domain.PhaseDiscovery, domain.DataRetrospective))

	err := s.Submit()
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Empty(t, s.SubmissionID)

	for _, sec := range s.Sections {
		fillSection(t, s, sec.ID)
	}
	require.NoError(t, s.Submit())
	assert.NotEmpty(t, s.SubmissionID)
	require.NotNil(t, s.SubmittedAt)

	assert.ErrorIs(t, s.Submit(), ErrAlreadySubmitted)
}

func TestReviewSummaryCoversEverySection(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))
	fillSection(t, s, form.GettingStartedID)

	summaries := s.ReviewSummary()
	require.Len(t, summaries, len(s.Sections))
	assert.Equal(t, form.GettingStartedID, summaries[0].Section.ID)
	assert.True(t, summaries[0].Complete)

	var sawUnanswered bool
	for _, row := range summaries[0].Rows {
		if !row.Answered {
			sawUnanswered = true
		}
	}
	assert.True(t, sawUnanswered, "optional unanswered questions still appear as rows")
}
