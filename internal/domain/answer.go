package domain

import (
	"strings"
	"time"
)

// AnswerKind tags the variant held by an Answer.
type AnswerKind string

const (
	AnswerText      AnswerKind = "text"
	AnswerList      AnswerKind = "list"
	AnswerNumber    AnswerKind = "number"
	AnswerDate      AnswerKind = "date"
	AnswerDateRange AnswerKind = "date_range"
	AnswerFiles     AnswerKind = "files"
	AnswerTeam      AnswerKind = "team"
)

// DateRange is the composite answer backing a date_range question. Both
// bounds must be set for the answer to count as complete.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// TeamMember is a per-instance entry on a team_list question.
type TeamMember struct {
	ID                string
	Name              string
	Role              string
	Responsibilities  string
	TimeCommitmentPct int
}

// FileRef points at an uploaded supporting document.
type FileRef struct {
	Name      string
	Path      string
	SizeBytes int64
}

// Answer is a tagged union over every value shape a question can store.
// Exactly the field matching Kind is meaningful.
type Answer struct {
	Kind   AnswerKind
	Text   string
	List   []string
	Number float64
	Date   *time.Time
	Range  DateRange
	Files  []FileRef
	Team   []TeamMember
}

func TextAnswer(s string) Answer        { return Answer{Kind: AnswerText, Text: s} }
func ListAnswer(vs []string) Answer     { return Answer{Kind: AnswerList, List: vs} }
func NumberAnswer(n float64) Answer     { return Answer{Kind: AnswerNumber, Number: n} }
func DateAnswer(t time.Time) Answer     { return Answer{Kind: AnswerDate, Date: &t} }
func RangeAnswer(r DateRange) Answer    { return Answer{Kind: AnswerDateRange, Range: r} }
func FilesAnswer(fs []FileRef) Answer   { return Answer{Kind: AnswerFiles, Files: fs} }
func TeamAnswer(ms []TeamMember) Answer { return Answer{Kind: AnswerTeam, Team: ms} }

// Empty reports whether the answer holds no usable value for its kind.
func (a Answer) Empty() bool {
	switch a.Kind {
	case AnswerText:
		return strings.TrimSpace(a.Text) == ""
	case AnswerList:
		return len(a.List) == 0
	case AnswerNumber:
		return false
	case AnswerDate:
		return a.Date == nil
	case AnswerDateRange:
		return a.Range.Start == nil && a.Range.End == nil
	case AnswerFiles:
		return len(a.Files) == 0
	case AnswerTeam:
		return len(a.Team) == 0
	}
	return true
}

// FormData maps question ids to answers. It grows monotonically during a
// session; answers survive classification edits so nothing typed is lost.
type FormData map[string]Answer

// Clone returns a shallow-per-answer copy of the map.
func (f FormData) Clone() FormData {
	out := make(FormData, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// DateRangeKey is the composite key that aggregates the start/end date
// question ids into a single DateRange answer.
const (
	DateRangeKey      = "date_range"
	DateRangeStartKey = "date_range_start"
	DateRangeEndKey   = "date_range_end"
)
