package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/alexanderramin/irbforge/internal/session"
)

const statusProgressBarWidth = 10

// FormatClassification renders the resolved study classification and the
// derived module selection after the wizard completes.
func FormatClassification(ws domain.WizardState) string {
	var b strings.Builder

	b.WriteString(Header("Study Classification") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Phase:"), Bold(phaseLabel(ws.Phase))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Data: "), Bold(dataLabel(ws.DataCollection))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Time: "), StyleBlue.Render("~"+FormatMinutes(ws.EstimatedMin))))

	if ws.Selected != nil {
		b.WriteString("\n" + Dim("Required modules:") + "\n")
		for _, name := range ws.Selected.Core {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("●"), name))
		}
		for _, name := range ws.Selected.Additional {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("◐"), name))
		}
	}

	return b.String()
}

// FormatStatus renders the application dashboard: classification, overall
// progress, and the per-section state list.
func FormatStatus(s *session.Session) string {
	var b strings.Builder

	b.WriteString(Header("IRB Application") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s / %s\n",
		Dim("Classification:"),
		Bold(phaseLabel(s.Wizard.Phase)),
		Bold(dataLabel(s.Wizard.DataCollection))))

	completed := s.CompletedSections()
	pct := 0.0
	if len(s.Sections) > 0 {
		pct = float64(len(completed)) / float64(len(s.Sections))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Progress:      "), RenderProgress(pct, statusProgressBarWidth)))

	if s.SubmittedAt != nil {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim("Submitted:     "),
			StyleGreen.Render(s.SubmittedAt.Format("2006-01-02 15:04")),
			Dim("("+s.SubmissionID+")")))
	}

	b.WriteString("\n")
	disabled := make(map[string]bool)
	for _, id := range s.DisabledSections() {
		disabled[id] = true
	}
	done := make(map[string]bool)
	for _, id := range completed {
		done[id] = true
	}

	for _, sec := range s.Sections {
		marker := SectionIndicator(done[sec.ID], disabled[sec.ID])
		title := sec.Title
		if sec.ID == s.ActiveSectionID() {
			title = Bold(title) + " " + StyleBlue.Render("← current")
		} else if disabled[sec.ID] {
			title = Dim(title)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", marker, title))
	}

	return b.String()
}

// FormatReview renders the full review page: every section with its
// questions and entered answers, incomplete sections flagged.
func FormatReview(s *session.Session) string {
	var b strings.Builder

	b.WriteString(Header("Review & Submit") + "\n")
	for _, sum := range s.ReviewSummary() {
		marker := SectionIndicator(sum.Complete, false)
		b.WriteString(fmt.Sprintf("\n%s %s\n", marker, Bold(sum.Section.Title)))
		if !sum.Complete {
			b.WriteString("  " + StyleYellow.Render("incomplete") + "\n")
		}
		for _, row := range sum.Rows {
			value := Dim("—")
			if row.Answered {
				value = StyleFg.Render(FormatAnswer(row.Answer))
			} else if row.Question.Required {
				value = StyleRed.Render("missing")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim(row.Question.Label+":"), value))
		}
	}

	return b.String()
}

// FormatAnswer renders a compact single-line preview of an answer.
func FormatAnswer(a domain.Answer) string {
	switch a.Kind {
	case domain.AnswerText:
		return truncate(a.Text, 60)
	case domain.AnswerList:
		return truncate(strings.Join(a.List, ", "), 60)
	case domain.AnswerNumber:
		return strconv.FormatFloat(a.Number, 'f', -1, 64)
	case domain.AnswerDate:
		if a.Date == nil {
			return ""
		}
		return a.Date.Format("2006-01-02")
	case domain.AnswerDateRange:
		start, end := "?", "?"
		if a.Range.Start != nil {
			start = a.Range.Start.Format("2006-01-02")
		}
		if a.Range.End != nil {
			end = a.Range.End.Format("2006-01-02")
		}
		return start + " to " + end
	case domain.AnswerFiles:
		names := make([]string, 0, len(a.Files))
		for _, f := range a.Files {
			names = append(names, f.Name)
		}
		return truncate(strings.Join(names, ", "), 60)
	case domain.AnswerTeam:
		parts := make([]string, 0, len(a.Team))
		for _, m := range a.Team {
			parts = append(parts, fmt.Sprintf("%s (%s)", m.Name, m.Role))
		}
		return truncate(strings.Join(parts, ", "), 60)
	}
	return ""
}

func phaseLabel(p domain.Phase) string {
	if p == "" {
		return "unset"
	}
	return string(p)
}

func dataLabel(d domain.DataCollection) string {
	if d == "" {
		return "unset"
	}
	return string(d)
}

func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
