package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/irbforge/internal/cli/formatter"
	"github.com/alexanderramin/irbforge/internal/directory"
	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/alexanderramin/irbforge/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// formMode identifies which screen the form TUI is showing.
type formMode int

const (
	modeMenu formMode = iota
	modeSection
	modeConfirmLeave
	modeReview
	modeDone
)

// formModel is the bubbletea model for filling out the application. It
// owns a session and mutates it directly; persistence happens in the
// command after the program exits.
type formModel struct {
	sess *session.Session
	dir  directory.Client

	mode   formMode
	cursor int // menu: section index; section: question index
	input  textinput.Model
	banner string

	// reclassify is set when the researcher asks to re-run the intake
	// wizard; the command loop picks it up after the program exits.
	reclassify bool

	width  int
	height int
}

func newFormModel(sess *session.Session, dir directory.Client) formModel {
	ti := textinput.New()
	ti.CharLimit = 2000
	ti.Width = 72

	m := formModel{sess: sess, dir: dir, input: ti}
	if sess.InReview() {
		m.mode = modeReview
	}
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeSection:
			return m.updateSection(msg)
		case modeConfirmLeave:
			return m.updateConfirmLeave(msg)
		case modeReview:
			return m.updateReview(msg)
		case modeDone:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m formModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.banner = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sess.Sections)-1 {
			m.cursor++
		}
	case "r":
		m.mode = modeReview
	case "c":
		m.reclassify = true
		return m, tea.Quit
	case "enter":
		target := m.sess.Sections[m.cursor].ID
		if err := m.sess.GoTo(target); err != nil {
			m.banner = formatter.StyleYellow.Render("Complete earlier sections before jumping ahead")
			return m, nil
		}
		return m.enterSection()
	}
	return m, nil
}

// enterSection switches to question entry on the active section, starting
// at the first unanswered question.
func (m formModel) enterSection() (tea.Model, tea.Cmd) {
	sec, err := m.sess.ActiveSection()
	if err != nil {
		m.banner = formatter.StyleRed.Render(err.Error())
		m.mode = modeMenu
		return m, nil
	}
	if len(sec.Questions) == 0 {
		m.banner = formatter.Dim("Nothing to fill in for " + sec.Title)
		m.mode = modeMenu
		return m, nil
	}

	m.mode = modeSection
	m.cursor = 0
	for i, q := range sec.Questions {
		if ans, ok := m.sess.Answer(q.ID); !ok || ans.Empty() {
			m.cursor = i
			break
		}
	}
	m.seedInput(sec.Questions[m.cursor])
	return m, textinput.Blink
}

func (m *formModel) seedInput(q domain.Question) {
	m.input.SetValue("")
	if ans, ok := m.sess.Answer(q.ID); ok && !ans.Empty() {
		m.input.SetValue(formatter.FormatAnswer(ans))
	}
	m.input.Placeholder = inputHint(q)
	m.input.Focus()
	m.input.CursorEnd()
}

func (m formModel) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sec, err := m.sess.ActiveSection()
	if err != nil {
		m.mode = modeMenu
		return m, nil
	}
	q := sec.Questions[m.cursor]

	switch msg.Type {
	case tea.KeyEsc:
		// Leaving mid-section: warn when required answers are missing.
		if m.sess.SectionComplete(sec.ID) {
			m.mode = modeMenu
			m.banner = ""
			return m, nil
		}
		m.mode = modeConfirmLeave
		return m, nil

	case tea.KeyEnter:
		raw := strings.TrimSpace(m.input.Value())
		if q.Type == domain.TypeTeamList && strings.HasPrefix(raw, "?") {
			m.banner = m.searchDirectory(strings.TrimPrefix(raw, "?"))
			m.input.SetValue("")
			return m, nil
		}
		if raw != "" {
			ans, err := parseAnswer(q, raw)
			if err != nil {
				m.banner = formatter.StyleRed.Render(err.Error())
				return m, nil
			}
			m.sess.SetAnswer(q.ID, ans)
		}
		m.banner = ""

		if m.cursor+1 < len(sec.Questions) {
			m.cursor++
			m.seedInput(sec.Questions[m.cursor])
			return m, nil
		}

		// Last question: try to advance to the next section.
		if err := m.sess.Next(false); err != nil {
			errs := m.sess.Errors(sec.ID)
			m.banner = formatter.StyleYellow.Render(fmt.Sprintf("%d required fields missing; press esc to leave anyway", len(errs)))
			m.cursor = 0
			m.seedInput(sec.Questions[0])
			return m, nil
		}
		if m.sess.InReview() {
			m.mode = modeReview
			return m, nil
		}
		return m.enterSection()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m formModel) updateConfirmLeave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.sess.Validate(m.sess.ActiveSectionID())
		m.mode = modeMenu
		m.banner = ""
	case "n", "N", "esc":
		m.mode = modeSection
	}
	return m, nil
}

func (m formModel) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "b", "esc":
		m.sess.Back()
		m.mode = modeMenu
		m.banner = ""
	case "s":
		if err := m.sess.Submit(); err != nil {
			m.banner = formatter.StyleRed.Render(err.Error())
			return m, nil
		}
		m.mode = modeDone
	}
	return m, nil
}

func (m formModel) View() string {
	var b strings.Builder

	switch m.mode {
	case modeMenu:
		b.WriteString(formatter.FormatStatus(m.sess))
		b.WriteString("\n" + formatter.Dim("↑/↓ select · enter open · r review · c change classification · q save & quit") + "\n")
		sec := m.sess.Sections[m.cursor]
		b.WriteString(formatter.StyleBlue.Render("▸ " + sec.Title))
		if sec.Description != "" {
			b.WriteString("  " + formatter.Dim(sec.Description))
		}
		b.WriteString("\n")

	case modeSection:
		sec, err := m.sess.ActiveSection()
		if err != nil {
			return formatter.StyleRed.Render(err.Error())
		}
		b.WriteString(formatter.Header(sec.Title) + "\n")
		q := sec.Questions[m.cursor]
		b.WriteString(fmt.Sprintf("%s %s\n", formatter.Bold(q.Label), requiredMark(q)))
		if q.Tooltip != "" {
			b.WriteString(formatter.Dim(q.Tooltip) + "\n")
		}
		if msg, ok := m.sess.Errors(sec.ID)[q.ID]; ok {
			b.WriteString(formatter.StyleRed.Render(msg) + "\n")
		}
		b.WriteString("\n" + m.input.View() + "\n")
		b.WriteString(formatter.Dim(fmt.Sprintf("question %d of %d · enter next · esc back", m.cursor+1, len(sec.Questions))) + "\n")

	case modeConfirmLeave:
		b.WriteString(formatter.StyleYellow.Render("This section has unanswered required questions.") + "\n")
		b.WriteString("Leave anyway? " + formatter.Dim("(y/n)") + "\n")

	case modeReview:
		b.WriteString(formatter.FormatReview(m.sess))
		b.WriteString("\n" + formatter.Dim("s submit · b back to sections · q save & quit") + "\n")

	case modeDone:
		b.WriteString(formatter.StyleGreen.Render("✔ Application submitted") + "\n")
		b.WriteString(formatter.Dim("Submission ID: "+m.sess.SubmissionID) + "\n")
	}

	if m.banner != "" {
		b.WriteString("\n" + m.banner + "\n")
	}
	return b.String()
}

// searchDirectory queries the personnel directory and renders candidates
// for the banner. Lookup failures degrade to a dim hint; the researcher
// can always type members manually.
func (m formModel) searchDirectory(query string) string {
	if m.dir == nil {
		return formatter.Dim("directory lookup is not configured")
	}
	candidates, err := m.dir.Search(context.Background(), strings.TrimSpace(query))
	if err != nil {
		return formatter.Dim("directory: " + err.Error())
	}
	if len(candidates) == 0 {
		return formatter.Dim("directory: no matches")
	}

	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		lines = append(lines, fmt.Sprintf("  %s %s", formatter.Bold(c.Name),
			formatter.Dim(c.Title+" · "+c.Department)))
	}
	return formatter.StyleBlue.Render("Directory matches:") + "\n" + strings.Join(lines, "\n")
}

func requiredMark(q domain.Question) string {
	if q.Required {
		return formatter.StyleRed.Render("*")
	}
	return formatter.Dim("(optional)")
}

// inputHint returns placeholder text describing the expected input shape.
func inputHint(q domain.Question) string {
	switch q.Type {
	case domain.TypeNumber:
		return "enter a number"
	case domain.TypeDate:
		return "YYYY-MM-DD"
	case domain.TypeDateRange:
		return "YYYY-MM-DD to YYYY-MM-DD"
	case domain.TypeFileUpload:
		return "paths, comma separated"
	case domain.TypeTeamList:
		return "Name | role; Name | role   (pi required, ?name searches the directory)"
	case domain.TypeDropdown, domain.TypeRadio:
		return optionHint(q)
	case domain.TypeChips, domain.TypeCheckbox:
		return optionHint(q) + " (comma separated)"
	}
	return ""
}

func optionHint(q domain.Question) string {
	values := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		if o.Disabled {
			continue
		}
		values = append(values, o.Value)
	}
	return "one of: " + strings.Join(values, ", ")
}

// parseAnswer converts the typed text into an answer for the question's
// type. Shape errors are reported to the banner and leave stored data
// untouched.
func parseAnswer(q domain.Question, raw string) (domain.Answer, error) {
	switch q.Type {
	case domain.TypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Answer{}, fmt.Errorf("enter a number")
		}
		if q.Number != nil && (n < float64(q.Number.Min) || n > float64(q.Number.Max)) {
			return domain.Answer{}, fmt.Errorf("enter a number between %d and %d", q.Number.Min, q.Number.Max)
		}
		return domain.NumberAnswer(n), nil

	case domain.TypeDate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return domain.Answer{}, fmt.Errorf("use YYYY-MM-DD format")
		}
		return domain.DateAnswer(t), nil

	case domain.TypeDateRange:
		parts := strings.SplitN(raw, " to ", 2)
		if len(parts) != 2 {
			return domain.Answer{}, fmt.Errorf("use YYYY-MM-DD to YYYY-MM-DD format")
		}
		start, err := time.Parse("2006-01-02", strings.TrimSpace(parts[0]))
		if err != nil {
			return domain.Answer{}, fmt.Errorf("use YYYY-MM-DD for the start date")
		}
		end, err := time.Parse("2006-01-02", strings.TrimSpace(parts[1]))
		if err != nil {
			return domain.Answer{}, fmt.Errorf("use YYYY-MM-DD for the end date")
		}
		return domain.RangeAnswer(domain.DateRange{Start: &start, End: &end}), nil

	case domain.TypeFileUpload:
		var files []domain.FileRef
		for _, p := range strings.Split(raw, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			name := p
			if i := strings.LastIndexByte(p, '/'); i >= 0 {
				name = p[i+1:]
			}
			files = append(files, domain.FileRef{Name: name, Path: p})
		}
		return domain.FilesAnswer(files), nil

	case domain.TypeTeamList:
		return parseTeam(raw)

	case domain.TypeChips, domain.TypeCheckbox:
		var values []string
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		return domain.ListAnswer(values), nil

	case domain.TypeDropdown, domain.TypeRadio:
		for _, o := range q.Options {
			if o.Value == raw && !o.Disabled {
				return domain.TextAnswer(raw), nil
			}
		}
		return domain.Answer{}, fmt.Errorf("%s", optionHint(q))
	}

	return domain.TextAnswer(raw), nil
}

// parseTeam parses "Name | role | responsibilities | pct" entries joined by
// semicolons. Only name and role are mandatory per entry.
func parseTeam(raw string) (domain.Answer, error) {
	var members []domain.TeamMember
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Split(entry, "|")
		if len(fields) < 2 {
			return domain.Answer{}, fmt.Errorf("each member needs at least Name | role")
		}
		role := strings.TrimSpace(fields[1])
		if _, ok := domain.RoleByID(role); !ok {
			return domain.Answer{}, fmt.Errorf("unknown role %q", role)
		}
		m := domain.TeamMember{
			ID:   uuid.NewString(),
			Name: strings.TrimSpace(fields[0]),
			Role: role,
		}
		if len(fields) > 2 {
			m.Responsibilities = strings.TrimSpace(fields[2])
		}
		if len(fields) > 3 {
			if pct, err := strconv.Atoi(strings.TrimSpace(fields[3])); err == nil {
				m.TimeCommitmentPct = pct
			}
		}
		members = append(members, m)
	}

	var hasPI bool
	for _, m := range members {
		if m.Role == "pi" {
			hasPI = true
		}
	}
	if !hasPI {
		return domain.Answer{}, fmt.Errorf("the team must include a principal investigator (role pi)")
	}
	return domain.TeamAnswer(members), nil
}
