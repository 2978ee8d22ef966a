package survey

// AnswersPerSurvey is the fixed arity of every answer document.
const AnswersPerSurvey = 10

// SinkKind selects the legacy per-question response sink of a category.
type SinkKind int

const (
	// SinkNone means the category has no legacy log.
	SinkNone SinkKind = iota
	// SinkOption logs (question_id, selected_option) rows with a foreign
	// key to the category's question table.
	SinkOption
	// SinkAnswer logs (question_id, answer) rows with no foreign key.
	SinkAnswer
)

// Category describes one survey category. All table names and routes
// derive from Name, so adding a category is one registry entry.
type Category struct {
	Name         string
	HasQuestions bool
	// OpenEnded categories have question text only, no options, and are
	// served in full instead of sampled.
	OpenEnded bool
	// Upsert categories keep a single response document per username.
	Upsert bool
	// CSVFile is the bulk-load source under the data directory, empty
	// when the category has no question bank.
	CSVFile string
	Sink    SinkKind
}

func (c Category) QuestionTable() string { return c.Name + "_questions" }
func (c Category) ResponseTable() string { return c.Name + "_survey_responses" }
func (c Category) LogTable() string      { return c.Name + "_responses" }

// Categories is the static registry. Table and route names are derived
// from it and never from request input.
var Categories = []Category{
	{Name: "student", HasQuestions: true, Upsert: true, CSVFile: "student.csv", Sink: SinkOption},
	{Name: "teacher", HasQuestions: true, Upsert: true, CSVFile: "Teacher.csv", Sink: SinkOption},
	{Name: "extra", HasQuestions: true, Upsert: true, CSVFile: "extraactivites.csv", Sink: SinkOption},
	{Name: "food", HasQuestions: true, Upsert: true, CSVFile: "food.csv"},
	{Name: "movie", HasQuestions: true, Upsert: true, CSVFile: "movie.csv"},
	{Name: "programming", HasQuestions: true, Upsert: true, CSVFile: "programming.csv"},
	{Name: "sport", HasQuestions: true, Upsert: true, CSVFile: "sport.csv"},
	{Name: "team", HasQuestions: true, Upsert: true, CSVFile: "team.csv"},
	{Name: "user", HasQuestions: true, OpenEnded: true, Upsert: true, CSVFile: "user.csv"},
	{Name: "website", Upsert: true},
	{Name: "general", Sink: SinkAnswer},
}

// Find returns the registry entry for name.
func Find(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
