// Package form derives the dynamic submission form from a wizard
// classification and validates the answers entered into it.
package form

import "github.com/alexanderramin/irbforge/internal/domain"

// DeriveConfiguration maps a wizard classification to the ordered section
// list of the dynamic form. The getting-started section always comes
// first, followed by one section per selected core module then per
// additional module, in catalog order, and finally exactly one of the
// data-approach sections: data_collection_protocol for prospective
// studies, data_source for retrospective ones, neither while the axis is
// unset.
//
// The function is pure: regenerating after a classification change yields
// a fresh slice and never touches entered form data. Section ids are
// derived from module titles via domain.Slug, except the fixed sections,
// whose ids are stable constants.
func DeriveConfiguration(ws domain.WizardState) []domain.Section {
	sections := []domain.Section{
		newSection(GettingStartedID, "Getting Started"),
	}

	if ws.Selected != nil {
		for _, name := range ws.Selected.Core {
			sections = append(sections, moduleSection(name))
		}
		for _, name := range ws.Selected.Additional {
			sections = append(sections, moduleSection(name))
		}
	}

	switch ws.DataCollection {
	case domain.DataProspective:
		sections = append(sections, newSection(DataCollectionProtocolID, "Data Collection Protocol"))
	case domain.DataRetrospective:
		sections = append(sections, newSection(DataSourceID, "Data Sources"))
	}

	return sections
}

// SectionByID finds a section in a generated configuration.
func SectionByID(sections []domain.Section, id string) (domain.Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Section{}, false
}

func moduleSection(moduleName string) domain.Section {
	return newSection(domain.Slug(moduleName), moduleName)
}

func newSection(id, title string) domain.Section {
	return domain.Section{
		ID:          id,
		Title:       title,
		Description: sectionDescriptions[id],
		Questions:   QuestionsFor(id),
	}
}
