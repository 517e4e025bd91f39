package session

import "time"

// Tone is the categorical style directive applied to story generation.
type Tone string

const (
	ToneSerious      Tone = "serious"
	ToneHopeful      Tone = "hopeful"
	ToneLightHearted Tone = "light-hearted"
	ToneSentimental  Tone = "sentimental"
)

// DefaultTone is used when neither the caller nor the session provides one.
const DefaultTone = ToneHopeful

// ParseTone validates a raw tone value.
func ParseTone(raw string) (Tone, bool) {
	switch Tone(raw) {
	case ToneSerious, ToneHopeful, ToneLightHearted, ToneSentimental:
		return Tone(raw), true
	}
	return "", false
}

// Answer records one response (or explicit skip) to a single question.
// When Skipped is true the answer text carries no meaning and must be
// excluded from any downstream text composition.
type Answer struct {
	QuestionID     string `json:"questionId"`
	Answer         string `json:"answer"`
	FollowUpAnswer string `json:"followUpAnswer,omitempty"`
	Skipped        bool   `json:"skipped"`
}

// Session captures the full state of one campaign creator's questionnaire
// pass. Answers keep arrival order; replace semantics are keyed by
// QuestionID.
type Session struct {
	ID         string    `json:"sessionId"`
	Answers    []Answer  `json:"answers"`
	Tone       Tone      `json:"tone,omitempty"`
	StoryDraft string    `json:"storyDraft,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
