package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/alexanderramin/irbforge/internal/form"
	"github.com/alexanderramin/irbforge/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()

	s := New(classify(domain.PhasePilot, domain.DataProspective))
	fillSection(t, s, form.GettingStartedID)
	s.SetAnswer("target_sample_size", domain.NumberAnswer(500))
	s.SetAnswer("supporting_documents", domain.FilesAnswer([]domain.FileRef{
		{Name: "protocol_draft.pdf", Path: "/tmp/protocol_draft.pdf", SizeBytes: 48123},
	}))
	require.NoError(t, s.Next(false))
	require.NoError(t, s.Save(store))

	loaded, err := Load(store)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, domain.PhasePilot, loaded.Wizard.Phase)
	assert.Equal(t, domain.DataProspective, loaded.Wizard.DataCollection)
	assert.Equal(t, domain.Estimate(domain.PhasePilot, domain.DataProspective), loaded.Wizard.EstimatedMin)
	assert.Equal(t, s.ActiveSectionID(), loaded.ActiveSectionID())

	title, ok := loaded.Answer("study_title")
	require.True(t, ok)
	assert.Equal(t, "filled in for testing", title.Text)

	team, ok := loaded.Answer("research_team")
	require.True(t, ok)
	require.Len(t, team.Team, 1)
	assert.Equal(t, "pi", team.Team[0].Role)

	files, ok := loaded.Answer("supporting_documents")
	require.True(t, ok)
	require.Len(t, files.Files, 1)
	assert.Equal(t, int64(48123), files.Files[0].SizeBytes)

	n, ok := loaded.Answer("target_sample_size")
	require.True(t, ok)
	assert.Equal(t, float64(500), n.Number)

	// Completed sections count as visited after a restore, so direct
	// navigation back to them still works.
	assert.Contains(t, loaded.VisitedSections(), form.GettingStartedID)
	require.NoError(t, loaded.GoTo(form.GettingStartedID))
}

func TestSnapshotDateRangeRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()

	s := New(classify(domain.PhaseValidation, domain.DataProspective))
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)
	s.SetAnswer(domain.DateRangeKey, domain.RangeAnswer(domain.DateRange{Start: &start, End: &end}))
	require.NoError(t, s.Save(store))

	loaded, err := Load(store)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	ans, ok := loaded.Answer(domain.DateRangeKey)
	require.True(t, ok)
	require.NotNil(t, ans.Range.Start)
	require.NotNil(t, ans.Range.End)
	assert.True(t, start.Equal(*ans.Range.Start))
	assert.True(t, end.Equal(*ans.Range.End))
}

func TestLoadWithoutRecordReturnsNil(t *testing.T) {
	loaded, err := Load(storage.NewMemoryStore())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadMalformedRecordFallsBackToDefaults(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.ApplicationKey, "{not json"))

	loaded, err := Load(store)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadDropsUnrecognizedAnswerShapes(t *testing.T) {
	store := storage.NewMemoryStore()
	record := map[string]any{
		"version":        1,
		"phase":          "pilot",
		"dataCollection": "retrospective",
		"formData": map[string]any{
			"study_title":  map[string]any{"kind": "text", "text": "Kept"},
			"mystery":      map[string]any{"kind": "hologram", "text": "???"},
			"bad_date":     map[string]any{"kind": "date", "date": "not-a-date"},
			"empty_number": map[string]any{"kind": "number"},
		},
		"completedSections": []string{},
		"activeSection":     form.GettingStartedID,
	}
	raw, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, store.Set(storage.ApplicationKey, string(raw)))

	loaded, err := Load(store)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	_, ok := loaded.Answer("study_title")
	assert.True(t, ok)
	_, ok = loaded.Answer("mystery")
	assert.False(t, ok)
	_, ok = loaded.Answer("bad_date")
	assert.False(t, ok)
	_, ok = loaded.Answer("empty_number")
	assert.False(t, ok)
}

func TestLoadIgnoresStaleSectionIDs(t *testing.T) {
	store := storage.NewMemoryStore()

	// A record written under a different classification can reference
	// sections the regenerated configuration no longer has.
	s := New(classify(domain.PhasePilot, domain.DataRetrospective))
	for s.ActiveSectionID() != form.DataSourceID {
		require.NoError(t, s.Next(true))
	}
	require.NoError(t, s.Save(store))

	raw, ok, err := store.Get(storage.ApplicationKey)
	require.NoError(t, err)
	require.True(t, ok)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	rec["dataCollection"] = "prospective"
	edited, err := json.Marshal(rec)
	require.NoError(t, err)
	require.NoError(t, store.Set(storage.ApplicationKey, string(edited)))

	loaded, err := Load(store)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, form.GettingStartedID, loaded.ActiveSectionID(),
		"vanished active section falls back to the first section")
}

func TestRepeatedSaveIsSingleWrite(t *testing.T) {
	store := storage.NewMemoryStore()

	s := New(classify(domain.PhaseDiscovery, domain.DataRetrospective))
	s.SetAnswer("study_title", domain.TextAnswer("Retrospective chart review"))

	require.NoError(t, s.Save(store))
	require.NoError(t, s.Save(store))
	assert.Equal(t, 1, store.Writes, "identical snapshots do not rewrite the store")

	s.SetAnswer("study_title", domain.TextAnswer("Retrospective chart review, amended"))
	require.NoError(t, s.Save(store))
	assert.Equal(t, 2, store.Writes)
}

func TestSubmittedStateSurvivesRestore(t *testing.T) {
	store := storage.NewMemoryStore()

	s := New(classify(domain.PhaseDiscovery, domain.DataRetrospective))
	for _, sec := range s.Sections {
		fillSection(t, s, sec.ID)
	}
	require.NoError(t, s.Submit())
	require.NoError(t, s.Save(store))

	loaded, err := Load(store)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, s.SubmissionID, loaded.SubmissionID)
	require.NotNil(t, loaded.SubmittedAt)
	assert.ErrorIs(t, loaded.Submit(), ErrAlreadySubmitted)
}
