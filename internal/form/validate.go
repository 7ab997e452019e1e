package form

import "github.com/alexanderramin/irbforge/internal/domain"

// Validation messages surfaced per question.
const (
	MsgRequired      = "This field is required"
	MsgDateRangeBoth = "Both start and end dates are required"
)

// ValidateSection checks every required question in the section against
// the entered answers. It returns true with an empty map when the section
// can be left, or false with one message per failing question id.
// Questions that are not required never produce errors.
func ValidateSection(sec domain.Section, data domain.FormData) (bool, map[string]string) {
	errs := make(map[string]string)
	for _, q := range sec.Questions {
		if !q.Required {
			continue
		}
		if msg, ok := checkRequired(q, data); !ok {
			errs[q.ID] = msg
		}
	}
	return len(errs) == 0, errs
}

func checkRequired(q domain.Question, data domain.FormData) (string, bool) {
	ans, present := data[q.ID]

	if q.Type == domain.TypeDateRange {
		if !present || ans.Range.Start == nil || ans.Range.End == nil {
			return MsgDateRangeBoth, false
		}
		return "", true
	}

	if !present || ans.Empty() {
		return MsgRequired, false
	}
	return "", true
}
