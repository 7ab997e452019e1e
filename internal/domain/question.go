package domain

// QuestionType is the closed set of input kinds a question can render as.
type QuestionType string

const (
	TypeText        QuestionType = "text"
	TypeRichText    QuestionType = "rich_text"
	TypeNumber      QuestionType = "number"
	TypeDropdown    QuestionType = "dropdown"
	TypeRadio       QuestionType = "radio"
	TypeChips       QuestionType = "chips"
	TypeCheckbox    QuestionType = "checkbox"
	TypeDate        QuestionType = "date"
	TypeDateRange   QuestionType = "date_range"
	TypeFileUpload  QuestionType = "file_upload"
	TypeTeamList    QuestionType = "team_list"
	TypeDynamicList QuestionType = "dynamic_list"
)

// Option is a selectable choice on dropdown, radio, and chips questions.
type Option struct {
	Value      string
	Label      string
	Default    bool
	Disabled   bool
	ComingSoon bool
}

// NumberRule bounds a numeric answer.
type NumberRule struct {
	Min int
	Max int
}

// Question is one statically defined input within a section. Questions are
// never created at runtime; team members and file uploads are the only
// per-instance sub-entities.
type Question struct {
	ID          string
	Type        QuestionType
	Label       string
	Required    bool
	Tooltip     string
	HelpText    string
	Placeholder string
	Options     []Option
	Number      *NumberRule
}

// Section is one page of the dynamic form.
type Section struct {
	ID          string
	Title       string
	Description string
	Questions   []Question
}

// RequiredQuestions returns the subset of questions that must be answered
// for the section to count as complete.
func (s Section) RequiredQuestions() []Question {
	var out []Question
	for _, q := range s.Questions {
		if q.Required {
			out = append(out, q)
		}
	}
	return out
}
