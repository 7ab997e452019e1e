package domain

// Phase is the research maturity stage axis of the study classification.
type Phase string

const (
	PhaseDiscovery  Phase = "discovery"
	PhasePilot      Phase = "pilot"
	PhaseValidation Phase = "validation"
)

// Phases lists every phase in catalog order.
var Phases = []Phase{PhaseDiscovery, PhasePilot, PhaseValidation}

// Valid reports whether p is a known phase. The zero value means "unset"
// and is not valid.
func (p Phase) Valid() bool {
	switch p {
	case PhaseDiscovery, PhasePilot, PhaseValidation:
		return true
	}
	return false
}

// DataCollection is the data-sourcing approach axis of the study
// classification.
type DataCollection string

const (
	DataRetrospective DataCollection = "retrospective"
	DataProspective   DataCollection = "prospective"
)

// DataCollections lists every data-collection approach in catalog order.
var DataCollections = []DataCollection{DataRetrospective, DataProspective}

// Valid reports whether d is a known data-collection approach.
func (d DataCollection) Valid() bool {
	switch d {
	case DataRetrospective, DataProspective:
		return true
	}
	return false
}

// SelectionMethod is how the researcher resolves the classification:
// a guided Q&A flow or direct selection from the catalogs.
type SelectionMethod string

const (
	MethodGuided SelectionMethod = "guided"
	MethodDirect SelectionMethod = "direct"
)
