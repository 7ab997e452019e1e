package wizard

import "github.com/alexanderramin/irbforge/internal/domain"

// StepOption is one selectable answer on a wizard step. TimeImpactMin is
// display copy for the option card; the session estimate itself is always
// recomputed from the classification, never summed from impacts.
type StepOption struct {
	Value         string
	Label         string
	Description   string
	TimeImpactMin int

	// Exactly one of the following is set, depending on the step.
	Method domain.SelectionMethod
	Phase  domain.Phase
	Data   domain.DataCollection
}

// MethodOptions answer "How would you like to get started?".
var MethodOptions = []StepOption{
	{
		Value:         "guided",
		Label:         "Guide me through it",
		Description:   "Answer a few simple questions and we'll help determine the best approach for your research.",
		TimeImpactMin: 5,
		Method:        domain.MethodGuided,
	},
	{
		Value:         "direct",
		Label:         "I know what I need",
		Description:   "Already familiar with AI research phases? Select your phase and data collection approach directly.",
		TimeImpactMin: 2,
		Method:        domain.MethodDirect,
	},
}

// ReadinessOptions answer "Where are you in your AI development journey?".
// Each maps deterministically to exactly one phase.
var ReadinessOptions = []StepOption{
	{
		Value:         "not_started",
		Label:         "Just getting started",
		Description:   "You're planning to collect data and develop your initial model.",
		TimeImpactMin: 30,
		Phase:         domain.PhaseDiscovery,
	},
	{
		Value:         "developed",
		Label:         "Have a model that needs testing",
		Description:   "You've developed your AI model and now need to validate its performance.",
		TimeImpactMin: 45,
		Phase:         domain.PhasePilot,
	},
	{
		Value:         "tested",
		Label:         "Ready for clinical implementation",
		Description:   "Your model is tested and you're ready to implement it in clinical practice.",
		TimeImpactMin: 60,
		Phase:         domain.PhaseValidation,
	},
}

// DataPlanOptions answer "Tell us about your data plans". Each maps
// deterministically to exactly one data-collection approach.
var DataPlanOptions = []StepOption{
	{
		Value:         "existing",
		Label:         "I have existing data",
		Description:   "You'll be working with previously collected data.",
		TimeImpactMin: 15,
		Data:          domain.DataRetrospective,
	},
	{
		Value:         "new",
		Label:         "I need to collect new data",
		Description:   "You'll be gathering new data as part of your study.",
		TimeImpactMin: 30,
		Data:          domain.DataProspective,
	},
}

func findOption(opts []StepOption, value string) (StepOption, bool) {
	for _, o := range opts {
		if o.Value == value {
			return o, true
		}
	}
	return StepOption{}, false
}
