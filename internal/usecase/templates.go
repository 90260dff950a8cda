package usecase

import "quotekit/internal/domain/entities"

// builtinTemplates are the starter forms offered in the form builder. Values
// are in major currency units; the importer converts them into stored
// answer-option modifiers.
var builtinTemplates = []entities.ServiceTemplate{
	{
		ID:    "bathroom-renovation",
		Name:  "Bathroom renovation",
		Trade: "plumbing",
		Questions: []entities.TemplateQuestion{
			{
				Text: "How large is the bathroom?",
				Type: entities.QuestionTypeSingleChoice,
				Options: []entities.TemplateOption{
					{Label: "Under 4 m²", Modifier: &entities.TemplateModifier{Kind: "fixed", Value: -5000}},
					{Label: "4–7 m²"},
					{Label: "Over 7 m²", Modifier: &entities.TemplateModifier{Kind: "percentage", Value: 25}},
				},
			},
			{
				Text: "Should we move any plumbing?",
				Type: entities.QuestionTypeSingleChoice,
				Options: []entities.TemplateOption{
					{Label: "No, keep existing layout"},
					{Label: "Yes, minor changes", Modifier: &entities.TemplateModifier{Kind: "fixed", Value: 12000}},
					{Label: "Yes, full relayout", Modifier: &entities.TemplateModifier{Kind: "multiply", Value: 1.4}},
				},
			},
			{
				Text: "Which extras do you want?",
				Type: entities.QuestionTypeMultipleChoice,
				Options: []entities.TemplateOption{
					{Label: "Underfloor heating", Modifier: &entities.TemplateModifier{Kind: "fixed", Value: 8500}},
					{Label: "Towel radiator", Modifier: &entities.TemplateModifier{Kind: "fixed", Value: 2400}},
					{Label: "Niche in shower wall", Modifier: &entities.TemplateModifier{Kind: "fixed", Value: 1800}},
				},
			},
			{
				Text: "Anything else we should know?",
				Type: entities.QuestionTypeText,
			},
		},
	},
	{
		ID:    "interior-painting",
		Name:  "Interior painting",
		Trade: "painting",
		Questions: []entities.TemplateQuestion{
			{
				Text:     "How many square meters of wall?",
				Type:     entities.QuestionTypeNumber,
				Unit:     "m²",
				UnitRate: &entities.TemplateModifier{Kind: "per_unit", Value: 95},
			},
			{
				Text: "Condition of the walls?",
				Type: entities.QuestionTypeSingleChoice,
				Options: []entities.TemplateOption{
					{Label: "Good, just repaint"},
					{Label: "Some filling needed", Modifier: &entities.TemplateModifier{Kind: "percentage", Value: 15}},
					{Label: "Heavy repairs", Modifier: &entities.TemplateModifier{Kind: "percentage", Value: 40}},
				},
			},
			{
				Text: "Will you supply the paint yourself?",
				Type: entities.QuestionTypeSingleChoice,
				Options: []entities.TemplateOption{
					{Label: "Yes, I buy the paint", Modifier: &entities.TemplateModifier{Kind: "percentage", Value: -10}},
					{Label: "No, include materials"},
				},
			},
		},
	},
	{
		ID:    "electrical-panel-upgrade",
		Name:  "Electrical panel upgrade",
		Trade: "electrical",
		Questions: []entities.TemplateQuestion{
			{
				Text: "Age of the current installation?",
				Type: entities.QuestionTypeSingleChoice,
				Options: []entities.TemplateOption{
					{Label: "Under 15 years"},
					{Label: "15–40 years", Modifier: &entities.TemplateModifier{Kind: "fixed", Value: 3000}},
					{Label: "Over 40 years", Modifier: &entities.TemplateModifier{Kind: "multiply", Value: 1.25}},
				},
			},
			{
				Text:     "How many circuits need rewiring?",
				Type:     entities.QuestionTypeNumber,
				Unit:     "circuits",
				UnitRate: &entities.TemplateModifier{Kind: "per_unit", Value: 1200},
			},
			{
				Text: "Do you need a new meter cabinet?",
				Type: entities.QuestionTypeSingleChoice,
				Options: []entities.TemplateOption{
					{Label: "No"},
					{Label: "Yes", Modifier: &entities.TemplateModifier{Kind: "fixed", Value: 6500}},
				},
			},
		},
	},
}
