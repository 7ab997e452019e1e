package domain

// WizardState is the classification resolved by the intake wizard.
// EstimatedMin is always derivable via Estimate(Phase, DataCollection);
// it is carried here so the form layer never recomputes it differently.
type WizardState struct {
	Phase          Phase
	DataCollection DataCollection
	EstimatedMin   int
	Selected       *ModuleSet
}

// Complete reports whether both classification axes are resolved.
func (w WizardState) Complete() bool {
	return w.Phase.Valid() && w.DataCollection.Valid()
}

// StudyRole describes one role a team member can hold on the study.
type StudyRole struct {
	ID          string
	Label       string
	Description string
	Required    bool
	CanDelete   bool
}

// StudyRoles is the fixed role catalog. The principal investigator entry is
// required on every team and cannot be removed.
var StudyRoles = []StudyRole{
	{ID: "pi", Label: "Principal Investigator", Description: "Lead researcher responsible for the study", Required: true, CanDelete: false},
	{ID: "co_investigator", Label: "Co-Investigator", Description: "Collaborating researcher with significant responsibilities", CanDelete: true},
	{ID: "study_coordinator", Label: "Study Coordinator", Description: "Manages day-to-day study operations", CanDelete: true},
	{ID: "data_scientist", Label: "Data Scientist", Description: "Responsible for AI/ML model development and analysis", CanDelete: true},
	{ID: "clinical_expert", Label: "Clinical Expert", Description: "Provides clinical domain expertise", CanDelete: true},
	{ID: "biostatistician", Label: "Biostatistician", Description: "Handles statistical analysis and study design", CanDelete: true},
}

// RoleByID looks up a study role.
func RoleByID(id string) (StudyRole, bool) {
	for _, r := range StudyRoles {
		if r.ID == id {
			return r, true
		}
	}
	return StudyRole{}, false
}
