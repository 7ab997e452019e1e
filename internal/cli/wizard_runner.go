package cli

import (
	"fmt"

	"github.com/alexanderramin/irbforge/internal/cli/formatter"
	"github.com/alexanderramin/irbforge/internal/domain"
	"github.com/alexanderramin/irbforge/internal/wizard"
	"github.com/charmbracelet/huh"
)

// backValue is the sentinel select option that maps to Machine.Back().
const backValue = "__back"

// RunWizard drives the intake wizard, one huh form per step, and returns
// the confirmed classification. The step sequencing, back semantics, and
// estimate all live in the wizard machine; this loop only renders.
func RunWizard() (domain.WizardState, error) {
	m := wizard.NewMachine()

	for {
		var err error
		switch m.Step() {
		case wizard.StepSelectionMethod:
			var choice string
			if err = stepSelectForm("How would you like to get started?", wizard.MethodOptions, false, &choice).Run(); err != nil {
				return domain.WizardState{}, err
			}
			m, err = m.ChooseMethod(choice)

		case wizard.StepGuidedReadiness:
			var choice string
			if err = stepSelectForm("Where are you in your AI development journey?", wizard.ReadinessOptions, true, &choice).Run(); err != nil {
				return domain.WizardState{}, err
			}
			if choice == backValue {
				m = m.Back()
				continue
			}
			m, err = m.ChooseReadiness(choice)

		case wizard.StepGuidedDataPlans:
			var choice string
			if err = stepSelectForm("Tell us about your data plans", wizard.DataPlanOptions, true, &choice).Run(); err != nil {
				return domain.WizardState{}, err
			}
			if choice == backValue {
				m = m.Back()
				continue
			}
			m, err = m.ChooseDataPlan(choice)

		case wizard.StepDirectConfigure:
			m, err = runDirectConfigure(m)

		case wizard.StepReview:
			var confirmed bool
			if err = reviewForm(m, &confirmed).Run(); err != nil {
				return domain.WizardState{}, err
			}
			if !confirmed {
				m = m.Back()
				continue
			}
			m, err = m.Confirm()

		case wizard.StepComplete:
			return m.Result()
		}
		if err != nil {
			return domain.WizardState{}, err
		}
	}
}

// stepSelectForm builds the single-select form for one wizard step. Time
// impacts on the option cards are display copy only.
func stepSelectForm(title string, opts []wizard.StepOption, withBack bool, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(opts)+1)
	for _, o := range opts {
		label := fmt.Sprintf("%s  (~%d min)", o.Label, o.TimeImpactMin)
		options = append(options, huh.NewOption(label, o.Value))
	}
	if withBack {
		options = append(options, huh.NewOption("← Back", backValue))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(result),
		),
	).WithTheme(irbforgeHuhTheme()).WithShowHelp(false)
}

// runDirectConfigure renders the pick-from-list screen: both axes on one
// form, preseeded with any held values so re-entry keeps the selection.
func runDirectConfigure(m wizard.Machine) (wizard.Machine, error) {
	phase := string(m.Phase())
	data := string(m.DataCollection())

	phaseOptions := make([]huh.Option[string], 0, len(domain.Phases)+1)
	for _, p := range domain.Phases {
		phaseOptions = append(phaseOptions, huh.NewOption(phaseTitle(p), string(p)))
	}
	dataOptions := make([]huh.Option[string], 0, len(domain.DataCollections)+1)
	for _, d := range domain.DataCollections {
		dataOptions = append(dataOptions, huh.NewOption(dataTitle(d), string(d)))
	}
	dataOptions = append(dataOptions, huh.NewOption("← Back", backValue))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Research Phase").
				Options(phaseOptions...).
				Value(&phase),
			huh.NewSelect[string]().
				Title("Data Collection Approach").
				Options(dataOptions...).
				Value(&data),
		),
	).WithTheme(irbforgeHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return m, err
	}
	if data == backValue {
		return m.Back(), nil
	}

	m, err := m.SelectPhase(domain.Phase(phase))
	if err != nil {
		return m, err
	}
	m, err = m.SelectDataCollection(domain.DataCollection(data))
	if err != nil {
		return m, err
	}
	return m.ConfirmSelection()
}

// reviewForm shows the resolved classification and asks for confirmation.
// Declining backs into the previous step with held values intact.
func reviewForm(m wizard.Machine, confirmed *bool) *huh.Form {
	selected := domain.SelectedModules(m.Phase(), m.DataCollection())
	preview := formatter.FormatClassification(domain.WizardState{
		Phase:          m.Phase(),
		DataCollection: m.DataCollection(),
		EstimatedMin:   m.EstimatedMin(),
		Selected:       &selected,
	})

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Review Your Selection").
				Description(preview),
			huh.NewConfirm().
				Title("Start your application with these modules?").
				Affirmative("Start").
				Negative("Go Back").
				Value(confirmed),
		),
	).WithTheme(irbforgeHuhTheme()).WithShowHelp(false)
}

func phaseTitle(p domain.Phase) string {
	switch p {
	case domain.PhaseDiscovery:
		return "Discovery & Model Development"
	case domain.PhasePilot:
		return "Pilot Testing & Validation"
	case domain.PhaseValidation:
		return "Clinical Validation & Deployment"
	}
	return string(p)
}

func dataTitle(d domain.DataCollection) string {
	switch d {
	case domain.DataRetrospective:
		return "Retrospective (existing data)"
	case domain.DataProspective:
		return "Prospective (new data collection)"
	}
	return string(d)
}
