package form

import "github.com/alexanderramin/irbforge/internal/domain"

// GettingStartedID is the fixed first section present in every
// configuration regardless of classification.
const GettingStartedID = "getting_started"

// Fixed ids of the mutually exclusive data-approach sections.
const (
	DataCollectionProtocolID = "data_collection_protocol"
	DataSourceID             = "data_source"
)

// moduleQuestions registers the static question list per section id.
// Module ids without an entry render as empty sections; that is expected,
// not an error.
var moduleQuestions = map[string][]domain.Question{
	GettingStartedID: {
		{
			ID:       "study_title",
			Type:     domain.TypeText,
			Label:    "Study Title",
			Required: true,
			Tooltip:  "Provide a descriptive title for your AI/ML research study",
			HelpText: "Include key aspects: AI/ML focus, clinical domain, and study type",
		},
		{
			ID:       "study_summary",
			Type:     domain.TypeRichText,
			Label:    "Study Summary",
			Required: true,
			Tooltip:  "Brief overview of your AI/ML research study",
			HelpText: "Include: background, objectives, and significance",
		},
		{
			ID:       "research_team",
			Type:     domain.TypeTeamList,
			Label:    "Research Team",
			Required: true,
			Tooltip:  "List the key members of your research team",
			HelpText: "Add team members and assign their roles",
			Options:  roleOptions(),
		},
		{
			ID:       "supporting_documents",
			Type:     domain.TypeFileUpload,
			Label:    "Supporting Documents",
			Required: false,
			Tooltip:  "Upload any relevant documentation",
			HelpText: "Examples: preliminary data, related publications, or other supporting materials",
		},
		{
			ID:       "use_ai_assistance",
			Type:     domain.TypeRadio,
			Label:    "Would you like AI assistance with your IRB application?",
			Required: true,
			Tooltip:  "The AI assistant can analyze uploaded documents and suggest content for your review",
			Options: []domain.Option{
				{Value: "yes", Label: "Yes, I would like AI assistance to help build my application (Coming Soon)", Disabled: true, ComingSoon: true},
				{Value: "no", Label: "No, I prefer to fill everything manually", Default: true},
			},
		},
	},

	"protocol_documentation": {
		{
			ID:       "protocol_title",
			Type:     domain.TypeText,
			Label:    "Protocol Title",
			Required: true,
			Tooltip:  "Provide a descriptive title for your AI/ML research protocol",
		},
		{
			ID:       "protocol_summary",
			Type:     domain.TypeRichText,
			Label:    "Protocol Summary",
			Required: true,
			Tooltip:  "Brief overview of your AI/ML research protocol",
			HelpText: "Include: objective, methodology, and expected outcomes",
		},
		{
			ID:       "ai_system_description",
			Type:     domain.TypeRichText,
			Label:    "AI System Description",
			Required: true,
			Tooltip:  "Detailed description of the AI/ML system being studied",
		},
	},

	"ethics_review": {
		{
			ID:       "ethical_considerations",
			Type:     domain.TypeRichText,
			Label:    "Ethical Considerations",
			Required: true,
			Tooltip:  "Describe ethical implications of using AI/ML in this context",
		},
		{
			ID:       "bias_mitigation",
			Type:     domain.TypeRichText,
			Label:    "Bias Mitigation Strategy",
			Required: true,
			Tooltip:  "How will you identify and address potential biases?",
		},
		{
			ID:       "privacy_protection",
			Type:     domain.TypeRichText,
			Label:    "Privacy Protection Measures",
			Required: true,
			Tooltip:  "Describe measures to protect patient privacy",
		},
	},

	"safety_assessment": {
		{
			ID:       "risk_assessment",
			Type:     domain.TypeRichText,
			Label:    "Risk Assessment",
			Required: true,
			Tooltip:  "Evaluate potential risks of AI/ML system deployment",
		},
		{
			ID:       "safety_monitoring",
			Type:     domain.TypeRichText,
			Label:    "Safety Monitoring Plan",
			Required: true,
			Tooltip:  "How will you monitor and ensure system safety?",
		},
		{
			ID:       "contingency_plan",
			Type:     domain.TypeRichText,
			Label:    "Contingency Plan",
			Required: true,
			Tooltip:  "Plan for handling system failures or unexpected behavior",
		},
	},

	"model_documentation": {
		{
			ID:       "model_architecture",
			Type:     domain.TypeRichText,
			Label:    "Model Architecture",
			Required: true,
			Tooltip:  "Describe the AI/ML model architecture and components",
		},
		{
			ID:       "training_data",
			Type:     domain.TypeRichText,
			Label:    "Training Data Description",
			Required: true,
			Tooltip:  "Describe the data used to train the model",
		},
		{
			ID:       "performance_metrics",
			Type:     domain.TypeRichText,
			Label:    "Performance Metrics",
			Required: true,
			Tooltip:  "Define metrics used to evaluate model performance",
		},
	},

	"performance_validation": {
		{
			ID:       "validation_methodology",
			Type:     domain.TypeRichText,
			Label:    "Validation Methodology",
			Required: true,
			Tooltip:  "Describe how you will validate model performance",
		},
		{
			ID:       "success_criteria",
			Type:     domain.TypeRichText,
			Label:    "Success Criteria",
			Required: true,
			Tooltip:  "Define criteria for successful validation",
		},
	},

	"clinical_integration_planning": {
		{
			ID:       "integration_approach",
			Type:     domain.TypeRichText,
			Label:    "Integration Approach",
			Required: true,
			Tooltip:  "How will the AI/ML system be integrated into clinical workflow?",
		},
		{
			ID:       "training_requirements",
			Type:     domain.TypeRichText,
			Label:    "Training Requirements",
			Required: true,
			Tooltip:  "Describe training needed for clinical staff",
		},
	},

	DataCollectionProtocolID: {
		{
			ID:       "collection_procedures",
			Type:     domain.TypeRichText,
			Label:    "Collection Procedures",
			Required: true,
			Tooltip:  "Describe how new data will be collected, by whom, and under what consent",
		},
		{
			ID:       domain.DateRangeKey,
			Type:     domain.TypeDateRange,
			Label:    "Planned Collection Window",
			Required: true,
			Tooltip:  "Start and end dates for prospective data collection",
		},
		{
			ID:       "target_sample_size",
			Type:     domain.TypeNumber,
			Label:    "Target Sample Size",
			Required: false,
			Number:   &domain.NumberRule{Min: 1, Max: 1000000},
		},
	},

	DataSourceID: {
		{
			ID:       "data_sources_description",
			Type:     domain.TypeRichText,
			Label:    "Data Sources",
			Required: true,
			Tooltip:  "Document the origin, custodian, and scope of each existing data source",
		},
		{
			ID:       "data_timeframe",
			Type:     domain.TypeText,
			Label:    "Data Timeframe",
			Required: false,
			Tooltip:  "Period the existing data covers, e.g. 2019-2023",
		},
		{
			ID:       "access_agreements",
			Type:     domain.TypeFileUpload,
			Label:    "Data Access Agreements",
			Required: false,
			Tooltip:  "Upload executed data use or access agreements, if any",
		},
	},
}

// sectionDescriptions supplies display copy for sections that have it.
var sectionDescriptions = map[string]string{
	GettingStartedID:                 "Help us understand your study better",
	"protocol_documentation":         "Core documentation for your research protocol",
	"ethics_review":                  "Address the ethical dimensions of your study",
	"safety_assessment":              "Address safety and risk considerations",
	"model_documentation":            "Technical specifications of your AI model",
	"performance_validation":         "Define your validation approach",
	"clinical_integration_planning":  "Plan for clinical implementation",
	DataCollectionProtocolID:         "Define your data collection procedures",
	DataSourceID:                     "Document your data sources",
}

// QuestionsFor returns a copy of the registered questions for a section id.
// Unregistered ids return an empty list.
func QuestionsFor(sectionID string) []domain.Question {
	return append([]domain.Question(nil), moduleQuestions[sectionID]...)
}

func roleOptions() []domain.Option {
	opts := make([]domain.Option, 0, len(domain.StudyRoles))
	for _, r := range domain.StudyRoles {
		opts = append(opts, domain.Option{Value: r.ID, Label: r.Label})
	}
	return opts
}
