package form

import (
	"testing"
	"time"

	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSectionRequiredText(t *testing.T) {
	sec := domain.Section{
		ID: "protocol_documentation",
		Questions: []domain.Question{
			{ID: "protocol_title", Type: domain.TypeText, Required: true},
			{ID: "notes", Type: domain.TypeRichText, Required: false},
		},
	}

	ok, errs := ValidateSection(sec, domain.FormData{})
	assert.False(t, ok)
	assert.Equal(t, MsgRequired, errs["protocol_title"])
	assert.NotContains(t, errs, "notes", "non-required questions never error")

	// Whitespace-only answers are still empty.
	ok, errs = ValidateSection(sec, domain.FormData{
		"protocol_title": domain.TextAnswer("   "),
	})
	assert.False(t, ok)
	assert.Contains(t, errs, "protocol_title")

	ok, errs = ValidateSection(sec, domain.FormData{
		"protocol_title": domain.TextAnswer("Sepsis early-warning model"),
	})
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateDateRangeNeedsBothBounds(t *testing.T) {
	sec := domain.Section{
		ID: DataCollectionProtocolID,
		Questions: []domain.Question{
			{ID: domain.DateRangeKey, Type: domain.TypeDateRange, Required: true},
		},
	}

	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	ok, errs := ValidateSection(sec, domain.FormData{})
	assert.False(t, ok)
	assert.Equal(t, MsgDateRangeBoth, errs[domain.DateRangeKey])

	ok, _ = ValidateSection(sec, domain.FormData{
		domain.DateRangeKey: domain.RangeAnswer(domain.DateRange{Start: &start}),
	})
	assert.False(t, ok, "start alone is not enough")

	ok, errs = ValidateSection(sec, domain.FormData{
		domain.DateRangeKey: domain.RangeAnswer(domain.DateRange{Start: &start, End: &end}),
	})
	require.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateListAndTeamAnswers(t *testing.T) {
	sec := domain.Section{
		ID: GettingStartedID,
		Questions: []domain.Question{
			{ID: "research_team", Type: domain.TypeTeamList, Required: true},
			{ID: "use_ai_assistance", Type: domain.TypeRadio, Required: true},
		},
	}

	ok, errs := ValidateSection(sec, domain.FormData{})
	assert.False(t, ok)
	assert.Len(t, errs, 2)

	ok, _ = ValidateSection(sec, domain.FormData{
		"research_team": domain.TeamAnswer([]domain.TeamMember{
			{ID: "m1", Name: "R. Osei", Role: "pi"},
		}),
		"use_ai_assistance": domain.TextAnswer("no"),
	})
	assert.True(t, ok)
}
