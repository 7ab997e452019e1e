package wizard

import (
	"github.com/alexanderramin/irbforge/internal/domain"
)

// Step identifies one screen of the intake wizard.
type Step string

const (
	StepSelectionMethod Step = "selection_method"
	StepGuidedReadiness Step = "ai_readiness"
	StepGuidedDataPlans Step = "data_plans"
	StepDirectConfigure Step = "configure_study"
	StepReview          Step = "review"
	StepComplete        Step = "complete"
)

// Title returns the display heading for the step.
func (s Step) Title() string {
	switch s {
	case StepSelectionMethod:
		return "Getting Started"
	case StepGuidedReadiness:
		return "AI Readiness"
	case StepGuidedDataPlans:
		return "Data Plans"
	case StepDirectConfigure:
		return "Configure Study"
	case StepReview:
		return "Review"
	case StepComplete:
		return "Complete"
	}
	return string(s)
}

// Machine is the intake wizard state machine. It has value semantics:
// every transition returns a new Machine and leaves the receiver untouched,
// so callers can hold onto prior states freely.
//
// The flow is:
//
//	SelectionMethod → GuidedReadiness → GuidedDataPlans → Review → Complete
//	                ↘ DirectConfigure ────────────────── ↗
type Machine struct {
	step    Step
	method  domain.SelectionMethod
	phase   domain.Phase
	data    domain.DataCollection
	visited []Step
}

// NewMachine returns a machine at the selection-method step with no
// classification chosen.
func NewMachine() Machine {
	return Machine{
		step:    StepSelectionMethod,
		visited: []Step{StepSelectionMethod},
	}
}

func (m Machine) Step() Step                          { return m.step }
func (m Machine) Method() domain.SelectionMethod      { return m.method }
func (m Machine) Phase() domain.Phase                 { return m.phase }
func (m Machine) DataCollection() domain.DataCollection { return m.data }

// EstimatedMin is the completion-time estimate for the current
// classification. Recomputed from scratch on every call so repeated edits
// can never drift the value.
func (m Machine) EstimatedMin() int {
	return domain.Estimate(m.phase, m.data)
}

// Visited reports whether the researcher has reached the step on the
// current path.
func (m Machine) Visited(step Step) bool {
	for _, s := range m.visited {
		if s == step {
			return true
		}
	}
	return false
}

// Path returns the step sequence for the chosen method, ending at Review.
func (m Machine) Path() []Step {
	if m.method == domain.MethodDirect {
		return []Step{StepSelectionMethod, StepDirectConfigure, StepReview}
	}
	return []Step{StepSelectionMethod, StepGuidedReadiness, StepGuidedDataPlans, StepReview}
}

func (m Machine) advance(to Step) Machine {
	m.step = to
	if !m.Visited(to) {
		m.visited = append(append([]Step(nil), m.visited...), to)
	}
	return m
}

// ChooseMethod resolves the first step. Guided leads into the readiness
// question; direct leads into the pick-from-list screen. Any previously
// held classification is cleared.
func (m Machine) ChooseMethod(value string) (Machine, error) {
	if m.step != StepSelectionMethod {
		return m, ErrInvalidTransition
	}
	opt, ok := findOption(MethodOptions, value)
	if !ok {
		return m, ErrUnknownOption
	}
	m.method = opt.Method
	m.phase = ""
	m.data = ""
	if opt.Method == domain.MethodDirect {
		return m.advance(StepDirectConfigure), nil
	}
	return m.advance(StepGuidedReadiness), nil
}

// ChooseReadiness maps a readiness option to its phase and moves to the
// data-plans step.
func (m Machine) ChooseReadiness(value string) (Machine, error) {
	if m.step != StepGuidedReadiness {
		return m, ErrInvalidTransition
	}
	opt, ok := findOption(ReadinessOptions, value)
	if !ok {
		return m, ErrUnknownOption
	}
	m.phase = opt.Phase
	return m.advance(StepGuidedDataPlans), nil
}

// ChooseDataPlan maps a data-plan option to its data-collection approach
// and moves to review.
func (m Machine) ChooseDataPlan(value string) (Machine, error) {
	if m.step != StepGuidedDataPlans {
		return m, ErrInvalidTransition
	}
	opt, ok := findOption(DataPlanOptions, value)
	if !ok {
		return m, ErrUnknownOption
	}
	m.data = opt.Data
	return m.advance(StepReview), nil
}

// SelectPhase picks the phase on the direct-configure screen. Either axis
// may be picked first and re-picked freely; the estimate always reflects
// whichever axes currently hold a value.
func (m Machine) SelectPhase(p domain.Phase) (Machine, error) {
	if m.step != StepDirectConfigure {
		return m, ErrInvalidTransition
	}
	if !p.Valid() {
		return m, ErrUnknownOption
	}
	m.phase = p
	return m, nil
}

// SelectDataCollection picks the data-collection approach on the
// direct-configure screen.
func (m Machine) SelectDataCollection(d domain.DataCollection) (Machine, error) {
	if m.step != StepDirectConfigure {
		return m, ErrInvalidTransition
	}
	if !d.Valid() {
		return m, ErrUnknownOption
	}
	m.data = d
	return m, nil
}

// ConfirmSelection leaves the direct-configure screen for review once both
// axes are picked. Partial selection keeps the machine where it is.
func (m Machine) ConfirmSelection() (Machine, error) {
	if m.step != StepDirectConfigure {
		return m, ErrInvalidTransition
	}
	if !m.phase.Valid() || !m.data.Valid() {
		return m, ErrSelectionIncomplete
	}
	return m.advance(StepReview), nil
}

// Confirm accepts the reviewed classification and completes the wizard.
func (m Machine) Confirm() (Machine, error) {
	if m.step != StepReview {
		return m, ErrInvalidTransition
	}
	return m.advance(StepComplete), nil
}

// Back is the strict inverse of the forward transitions. Re-entered steps
// keep the value they previously resolved; only the answer given at the
// step being left is cleared. Backing out of the first step after method
// selection is a full reset.
func (m Machine) Back() Machine {
	switch m.step {
	case StepSelectionMethod:
		return m
	case StepGuidedReadiness, StepDirectConfigure:
		return m.Reset()
	case StepGuidedDataPlans:
		m.data = ""
		return m.retreat(StepGuidedReadiness)
	case StepReview:
		if m.method == domain.MethodDirect {
			return m.retreat(StepDirectConfigure)
		}
		return m.retreat(StepGuidedDataPlans)
	case StepComplete:
		return m.retreat(StepReview)
	}
	return m
}

// retreat moves to an earlier step and forgets any visits beyond it, so a
// later jump cannot land on a step whose inputs were invalidated.
func (m Machine) retreat(to Step) Machine {
	m.step = to
	for i, s := range m.visited {
		if s == to {
			m.visited = append([]Step(nil), m.visited[:i+1]...)
			break
		}
	}
	return m
}

// Reset clears the whole wizard state and returns to the selection-method
// step. Legal from any state.
func (m Machine) Reset() Machine {
	return NewMachine()
}

// Jump re-enters a previously visited step, keeping all held values.
// Steps never reached on the current path are not reachable.
func (m Machine) Jump(target Step) (Machine, error) {
	if !m.Visited(target) {
		return m, ErrStepNotReachable
	}
	m.step = target
	return m, nil
}

// Result emits the final WizardState once the wizard is complete. The
// selected modules concatenate both axes' sets, phase first.
func (m Machine) Result() (domain.WizardState, error) {
	if m.step != StepComplete {
		return domain.WizardState{}, ErrNotComplete
	}
	selected := domain.SelectedModules(m.phase, m.data)
	return domain.WizardState{
		Phase:          m.phase,
		DataCollection: m.data,
		EstimatedMin:   domain.Estimate(m.phase, m.data),
		Selected:       &selected,
	}, nil
}
