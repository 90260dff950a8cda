package entities

// ServiceTemplate is a built-in starter form for a trade. Template modifiers
// use the importer vocabulary (fixed, percentage, multiply, per_unit) with
// signed values; importing a template materializes real questions and
// answer options on a job type.
type ServiceTemplate struct {
	ID        string
	Name      string
	Trade     string
	Questions []TemplateQuestion
}

type TemplateQuestion struct {
	Text     string
	Type     QuestionType
	Unit     string
	UnitRate *TemplateModifier
	Options  []TemplateOption
}

type TemplateOption struct {
	Label    string
	Modifier *TemplateModifier
}

type TemplateModifier struct {
	Kind  string
	Value float64
}
