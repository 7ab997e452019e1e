package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/alexanderramin/irbforge/internal/form"
	"github.com/alexanderramin/irbforge/internal/storage"
)

const snapshotVersion = 1

// snapshotRecord is the single persisted progress record. Dates are
// RFC 3339 strings; everything else passes through as JSON primitives.
type snapshotRecord struct {
	Version           int                       `json:"version"`
	Phase             string                    `json:"phase,omitempty"`
	DataCollection    string                    `json:"dataCollection,omitempty"`
	FormData          map[string]snapshotAnswer `json:"formData"`
	CompletedSections []string                  `json:"completedSections"`
	ActiveSection     string                    `json:"activeSection"`
	SubmissionID      string                    `json:"submissionId,omitempty"`
	SubmittedAt       string                    `json:"submittedAt,omitempty"`
}

type snapshotAnswer struct {
	Kind   string           `json:"kind"`
	Text   string           `json:"text,omitempty"`
	List   []string         `json:"list,omitempty"`
	Number *float64         `json:"number,omitempty"`
	Date   string           `json:"date,omitempty"`
	Start  string           `json:"start,omitempty"`
	End    string           `json:"end,omitempty"`
	Files  []domain.FileRef `json:"files,omitempty"`
	Team   []snapshotMember `json:"team,omitempty"`
}

type snapshotMember struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	Responsibilities string `json:"responsibilities,omitempty"`
	TimeCommitment   int    `json:"timeCommitmentPct,omitempty"`
}

// Save writes the session's progress record through the store port.
// The store makes identical re-saves no-ops, so saving on every unmount
// path is safe.
func (s *Session) Save(store storage.Store) error {
	rec := snapshotRecord{
		Version:           snapshotVersion,
		Phase:             string(s.Wizard.Phase),
		DataCollection:    string(s.Wizard.DataCollection),
		FormData:          make(map[string]snapshotAnswer, len(s.Data)),
		CompletedSections: s.CompletedSections(),
		ActiveSection:     s.active,
		SubmissionID:      s.SubmissionID,
	}
	if s.SubmittedAt != nil {
		rec.SubmittedAt = s.SubmittedAt.UTC().Format(time.RFC3339)
	}
	for id, ans := range s.Data {
		rec.FormData[id] = encodeAnswer(ans)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding progress record: %w", err)
	}
	if err := store.Set(storage.ApplicationKey, string(data)); err != nil {
		return fmt.Errorf("saving progress record: %w", err)
	}
	return nil
}

// Load restores a session from the store. A missing record returns
// (nil, nil) so the caller starts fresh. A record that fails to parse is
// discarded the same way; malformed persisted state never aborts
// startup. Individual answers with unrecognized shapes are dropped while
// the rest of the record loads.
func Load(store storage.Store) (*Session, error) {
	raw, ok, err := store.Get(storage.ApplicationKey)
	if err != nil {
		return nil, fmt.Errorf("reading progress record: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var rec snapshotRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, nil
	}

	phase := domain.Phase(rec.Phase)
	data := domain.DataCollection(rec.DataCollection)
	if !phase.Valid() {
		phase = ""
	}
	if !data.Valid() {
		data = ""
	}
	selected := domain.SelectedModules(phase, data)
	ws := domain.WizardState{
		Phase:          phase,
		DataCollection: data,
		EstimatedMin:   domain.Estimate(phase, data),
		Selected:       &selected,
	}

	s := New(ws)
	for id, snap := range rec.FormData {
		ans, ok := decodeAnswer(snap)
		if !ok {
			continue
		}
		s.Data[id] = ans
	}

	// Completed sections imply prior visits; the active section is
	// restored when it still exists in the regenerated configuration.
	for _, id := range rec.CompletedSections {
		if _, found := form.SectionByID(s.Sections, id); found {
			s.visited[id] = true
		}
	}
	if _, found := form.SectionByID(s.Sections, rec.ActiveSection); found {
		s.active = rec.ActiveSection
		s.visited[s.active] = true
		s.history = []string{s.active}
	}

	s.SubmissionID = rec.SubmissionID
	if rec.SubmittedAt != "" {
		if t, err := time.Parse(time.RFC3339, rec.SubmittedAt); err == nil {
			s.SubmittedAt = &t
		}
	}
	return s, nil
}

func encodeAnswer(a domain.Answer) snapshotAnswer {
	snap := snapshotAnswer{Kind: string(a.Kind)}
	switch a.Kind {
	case domain.AnswerText:
		snap.Text = a.Text
	case domain.AnswerList:
		snap.List = a.List
	case domain.AnswerNumber:
		n := a.Number
		snap.Number = &n
	case domain.AnswerDate:
		if a.Date != nil {
			snap.Date = a.Date.UTC().Format(time.RFC3339)
		}
	case domain.AnswerDateRange:
		if a.Range.Start != nil {
			snap.Start = a.Range.Start.UTC().Format(time.RFC3339)
		}
		if a.Range.End != nil {
			snap.End = a.Range.End.UTC().Format(time.RFC3339)
		}
	case domain.AnswerFiles:
		snap.Files = a.Files
	case domain.AnswerTeam:
		for _, m := range a.Team {
			snap.Team = append(snap.Team, snapshotMember{
				ID:               m.ID,
				Name:             m.Name,
				Role:             m.Role,
				Responsibilities: m.Responsibilities,
				TimeCommitment:   m.TimeCommitmentPct,
			})
		}
	}
	return snap
}

// decodeAnswer parses one persisted answer. Unknown kinds and unparseable
// dates report !ok so the caller drops the fragment instead of failing
// the whole load.
func decodeAnswer(snap snapshotAnswer) (domain.Answer, bool) {
	switch domain.AnswerKind(snap.Kind) {
	case domain.AnswerText:
		return domain.TextAnswer(snap.Text), true
	case domain.AnswerList:
		return domain.ListAnswer(snap.List), true
	case domain.AnswerNumber:
		if snap.Number == nil {
			return domain.Answer{}, false
		}
		return domain.NumberAnswer(*snap.Number), true
	case domain.AnswerDate:
		t, err := time.Parse(time.RFC3339, snap.Date)
		if err != nil {
			return domain.Answer{}, false
		}
		return domain.DateAnswer(t), true
	case domain.AnswerDateRange:
		var r domain.DateRange
		if snap.Start != "" {
			t, err := time.Parse(time.RFC3339, snap.Start)
			if err != nil {
				return domain.Answer{}, false
			}
			r.Start = &t
		}
		if snap.End != "" {
			t, err := time.Parse(time.RFC3339, snap.End)
			if err != nil {
				return domain.Answer{}, false
			}
			r.End = &t
		}
		return domain.RangeAnswer(r), true
	case domain.AnswerFiles:
		return domain.FilesAnswer(snap.Files), true
	case domain.AnswerTeam:
		members := make([]domain.TeamMember, 0, len(snap.Team))
		for _, m := range snap.Team {
			members = append(members, domain.TeamMember{
				ID:                m.ID,
				Name:              m.Name,
				Role:              m.Role,
				Responsibilities:  m.Responsibilities,
				TimeCommitmentPct: m.TimeCommitment,
			})
		}
		return domain.TeamAnswer(members), true
	}
	return domain.Answer{}, false
}
