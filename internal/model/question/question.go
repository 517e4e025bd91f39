package question

// Category groups questions by the part of the story they feed.
type Category string

const (
	CategoryBasicInfo  Category = "basic_info"
	CategoryIntro      Category = "intro"
	CategoryStruggle   Category = "struggle"
	CategoryHelp       Category = "help"
	CategoryBackground Category = "background"
)

// Definition describes one questionnaire entry exposed to the wizard
// frontend. Required is advisory metadata for presentation; the server
// never blocks a skip on a required question.
type Definition struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	FollowUpText string   `json:"followUpText,omitempty"`
	Category     Category `json:"category"`
	Required     bool     `json:"required"`
}
