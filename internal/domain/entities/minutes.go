package entities

// ActionItem is a transcript sentence flagged as an obligation, with optional
// attributed person and deadline. Task is always the verbatim sentence text;
// an empty Person or Deadline means the attribute was absent in the sentence.
type ActionItem struct {
	Task     string `json:"task"`
	Person   string `json:"person,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}

// MinutesResult is the structured output of one minutes-generation request.
// It is request-scoped and never persisted.
type MinutesResult struct {
	Title        string       `json:"title"`
	Summary      string       `json:"summary"`
	Participants []string     `json:"participants"`
	Minutes      string       `json:"minutes"`
	Actions      []ActionItem `json:"actions"`
}

// Entity label values returned by the tagging capability that the extractor
// acts on. All other labels are ignored.
const (
	EntityLabelPerson = "PERSON"
	EntityLabelDate   = "DATE"
)

// Entity is a named entity span within a single sentence.
type Entity struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}
