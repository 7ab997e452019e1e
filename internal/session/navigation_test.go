package session

import (
	"testing"

	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/alexanderramin/irbforge/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoToUnreachedSectionBlocked(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	err := s.GoTo("model_documentation")
	assert.ErrorIs(t, err, ErrNavigationBlocked)
	assert.Equal(t, form.GettingStartedID, s.ActiveSectionID(), "blocked jump changes nothing")

	err = s.GoTo("no_such_section")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestGoToCompletedSectionAllowed(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	// Completing a section opens it to direct navigation even when it was
	// never visited.
	fillSection(t, s, "ethics_review")
	require.NoError(t, s.GoTo("ethics_review"))
	assert.Equal(t, "ethics_review", s.ActiveSectionID())
	assert.Contains(t, s.VisitedSections(), "ethics_review")
}

func TestGoToVisitedSectionAllowed(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	require.NoError(t, s.Next(true))
	next := s.ActiveSectionID()
	require.NotEqual(t, form.GettingStartedID, next)

	require.NoError(t, s.GoTo(form.GettingStartedID))
	require.NoError(t, s.GoTo(next))
}

func TestNextBlocksOnIncompleteSection(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	err := s.Next(false)
	assert.ErrorIs(t, err, ErrIncompleteSection)
	assert.Equal(t, form.GettingStartedID, s.ActiveSectionID())
	assert.NotEmpty(t, s.Errors(form.GettingStartedID), "blocked advance records the error map")

	fillSection(t, s, form.GettingStartedID)
	require.NoError(t, s.Next(false))
	assert.Equal(t, "protocol_documentation", s.ActiveSectionID())
}

func TestNextForceOverridesValidation(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	require.NoError(t, s.Next(true))
	assert.Equal(t, "protocol_documentation", s.ActiveSectionID())
}

func TestBackPopsNavigationHistory(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	require.NoError(t, s.Next(true))
	require.NoError(t, s.Next(true))
	assert.Equal(t, "ethics_review", s.ActiveSectionID())

	assert.True(t, s.Back())
	assert.Equal(t, "protocol_documentation", s.ActiveSectionID())
	assert.True(t, s.Back())
	assert.Equal(t, form.GettingStartedID, s.ActiveSectionID())

	// At the start of the history there is nowhere left to go.
	assert.False(t, s.Back())
	assert.Equal(t, form.GettingStartedID, s.ActiveSectionID())
}

func TestNextPastLastSectionEntersReview(t *testing.T) {
	s := New(classify(domain.PhaseDiscovery, domain.DataRetrospective))

	last := s.Sections[len(s.Sections)-1].ID
	for s.ActiveSectionID() != last {
		require.NoError(t, s.Next(true))
	}
	require.False(t, s.InReview())

	require.NoError(t, s.Next(true))
	assert.True(t, s.InReview())
	assert.Equal(t, last, s.ActiveSectionID(), "review keeps the last section active")

	// Back from review returns to the form, not to a previous section.
	assert.True(t, s.Back())
	assert.False(t, s.InReview())
	assert.Equal(t, last, s.ActiveSectionID())
}

func TestGoToLeavesReviewMode(t *testing.T) {
	s := New(classify(domain.PhaseDiscovery, domain.DataRetrospective))

	for !s.InReview() {
		require.NoError(t, s.Next(true))
	}
	require.NoError(t, s.GoTo(form.GettingStartedID))
	assert.False(t, s.InReview())
	assert.Equal(t, form.GettingStartedID, s.ActiveSectionID())
}

func TestDisabledSectionsDerived(t *testing.T) {
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))

	disabled := s.DisabledSections()
	assert.NotContains(t, disabled, form.GettingStartedID, "active section never disabled")
	assert.Contains(t, disabled, "model_documentation")
	assert.NotContains(t, disabled, "data_security_plan", "sections with nothing required count as complete")

	require.NoError(t, s.Next(true))
	assert.NotContains(t, s.DisabledSections(), form.GettingStartedID, "visited sections stay reachable")
}
