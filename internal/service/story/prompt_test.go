package story_test

import (
	"strings"
	"testing"

	model "github.com/helphopelive/story-builder/backend/internal/model/session"
	"github.com/helphopelive/story-builder/backend/internal/service/story"
)

func TestAnswersCorpusFiltersSkippedAndEmpty(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "name", Answer: "Alex"},
		{QuestionID: "age", Answer: "34", Skipped: true},
		{QuestionID: "hospital", Answer: ""},
		{QuestionID: "struggles", Answer: "stairs are hard now"},
	}

	corpus := story.AnswersCorpus(answers)

	if corpus != "Alex\n\nstairs are hard now" {
		t.Fatalf("unexpected corpus: %q", corpus)
	}
}

func TestAnswersCorpusAppendsFollowUp(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "interesting_things", Answer: "I restore old bikes", FollowUpAnswer: "My friends call me stubborn in a good way"},
	}

	corpus := story.AnswersCorpus(answers)

	if corpus != "I restore old bikes My friends call me stubborn in a good way" {
		t.Fatalf("unexpected corpus: %q", corpus)
	}
}

func TestAnswersCorpusSkippedTextNeverLeaks(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "hospital", Answer: "County General", Skipped: true},
	}

	if corpus := story.AnswersCorpus(answers); strings.Contains(corpus, "County General") {
		t.Fatalf("skipped answer text leaked into corpus: %q", corpus)
	}
}

func TestAssemblePromptStructure(t *testing.T) {
	answers := []model.Answer{{QuestionID: "name", Answer: "Alex"}}

	prompt := story.AssemblePrompt(model.ToneSentimental, answers)

	if !strings.Contains(prompt, "FIRST PERSON") {
		t.Fatal("prompt must carry the first-person directive")
	}
	if !strings.Contains(prompt, "Write in a sentimental tone") {
		t.Fatalf("prompt must interpolate the tone: %q", prompt)
	}
	delimiter := "Based on these answers, write a compelling fundraising story:"
	idx := strings.Index(prompt, delimiter)
	if idx < 0 {
		t.Fatal("prompt must contain the answers delimiter")
	}
	if !strings.Contains(prompt[idx:], "Alex") {
		t.Fatal("answers corpus must follow the delimiter")
	}
	if strings.Contains(prompt[:idx], "Alex") {
		t.Fatal("answer content must not appear before the delimiter")
	}
}

func TestAssemblePromptEmptyAnswers(t *testing.T) {
	prompt := story.AssemblePrompt(model.ToneHopeful, nil)

	if !strings.HasSuffix(prompt, "Based on these answers, write a compelling fundraising story:\n\n") {
		t.Fatalf("empty corpus should leave a bare delimiter: %q", prompt)
	}
}
