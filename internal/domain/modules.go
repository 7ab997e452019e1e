package domain

import "strings"

// ModuleSet holds the form modules bundled in by one classification value.
// Core modules are mandatory; additional modules represent the extra
// workload of higher-effort classifications.
type ModuleSet struct {
	Core       []string
	Additional []string
}

// Clone returns a deep copy so callers can concatenate without aliasing
// the catalog slices.
func (m ModuleSet) Clone() ModuleSet {
	return ModuleSet{
		Core:       append([]string(nil), m.Core...),
		Additional: append([]string(nil), m.Additional...),
	}
}

// AxisConfig is the static catalog entry for one classification value.
type AxisConfig struct {
	Title           string
	Explanation     string
	TimeEstimateMin int
	Modules         ModuleSet
}

// phaseCoreModules are required for every phase. The fixed getting-started
// section covers protocol identity, so it is not listed here.
var phaseCoreModules = []string{
	"Protocol Documentation",
	"Ethics Review",
	"Safety Assessment",
	"Model Documentation",
}

var dataCoreModules = []string{
	"Data Security Plan",
	"Data Quality Assessment",
	"Data Source Documentation",
}

var phaseConfigs = map[Phase]AxisConfig{
	PhaseDiscovery: {
		Title:           "Discovery Phase",
		Explanation:     "Focus on initial model development and basic validation.",
		TimeEstimateMin: 30,
		Modules:         ModuleSet{Core: phaseCoreModules},
	},
	PhasePilot: {
		Title:           "Pilot Phase",
		Explanation:     "Emphasis on thorough testing and validation in a controlled environment.",
		TimeEstimateMin: 45,
		Modules: ModuleSet{
			Core: phaseCoreModules,
			Additional: []string{
				"Performance Validation",
				"Error Analysis",
				"Clinical Integration Planning",
			},
		},
	},
	PhaseValidation: {
		Title:           "Validation Phase",
		Explanation:     "Focus on clinical implementation and production deployment.",
		TimeEstimateMin: 60,
		Modules: ModuleSet{
			Core: phaseCoreModules,
			Additional: []string{
				"Performance Validation",
				"Error Analysis",
				"Clinical Integration Planning",
				"Production Deployment",
				"Monitoring Systems",
				"Clinical Workflow Integration",
			},
		},
	},
}

var dataConfigs = map[DataCollection]AxisConfig{
	DataRetrospective: {
		Title:           "Retrospective Data Collection",
		Explanation:     "Retrospective analysis focuses on existing data quality and bias assessment.",
		TimeEstimateMin: 15,
		Modules:         ModuleSet{Core: dataCoreModules},
	},
	DataProspective: {
		Title:           "Prospective Data Collection",
		Explanation:     "Prospective data collection requires additional planning for future data gathering.",
		TimeEstimateMin: 30,
		Modules: ModuleSet{
			Core: dataCoreModules,
			Additional: []string{
				"Patient Recruitment Strategy",
				"Timeline Planning",
				"Quality Control Measures",
				"Participant Follow-up Plan",
			},
		},
	},
}

// PhaseConfig returns the catalog entry for p.
// Every valid phase has an entry; ok is false only for unset/unknown values.
func PhaseConfig(p Phase) (AxisConfig, bool) {
	cfg, ok := phaseConfigs[p]
	return cfg, ok
}

// DataConfig returns the catalog entry for d.
func DataConfig(d DataCollection) (AxisConfig, bool) {
	cfg, ok := dataConfigs[d]
	return cfg, ok
}

// Estimate computes the completion-time estimate in minutes for a
// classification. Unset axes contribute zero. This is the only estimate
// rule in the system: callers recompute from scratch on every change and
// never accumulate deltas.
func Estimate(p Phase, d DataCollection) int {
	total := 0
	if cfg, ok := phaseConfigs[p]; ok {
		total += cfg.TimeEstimateMin
	}
	if cfg, ok := dataConfigs[d]; ok {
		total += cfg.TimeEstimateMin
	}
	return total
}

// SelectedModules concatenates the module sets of both axes, phase first.
// Unset axes contribute nothing.
func SelectedModules(p Phase, d DataCollection) ModuleSet {
	var out ModuleSet
	if cfg, ok := phaseConfigs[p]; ok {
		set := cfg.Modules.Clone()
		out.Core = append(out.Core, set.Core...)
		out.Additional = append(out.Additional, set.Additional...)
	}
	if cfg, ok := dataConfigs[d]; ok {
		set := cfg.Modules.Clone()
		out.Core = append(out.Core, set.Core...)
		out.Additional = append(out.Additional, set.Additional...)
	}
	return out
}

// Slug derives a stable section id from a module title: lower-cased with
// whitespace runs collapsed to single underscores. The catalog test asserts
// this is collision-free across every module name in use.
func Slug(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "_")
}

// CatalogModuleNames returns every module name referenced by any catalog
// entry, de-duplicated, in first-seen order.
func CatalogModuleNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(list []string) {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	for _, p := range Phases {
		cfg := phaseConfigs[p]
		add(cfg.Modules.Core)
		add(cfg.Modules.Additional)
	}
	for _, d := range DataCollections {
		cfg := dataConfigs[d]
		add(cfg.Modules.Core)
		add(cfg.Modules.Additional)
	}
	return names
}
