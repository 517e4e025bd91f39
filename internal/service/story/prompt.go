package story

import (
	"fmt"
	"strings"

	model "github.com/helphopelive/story-builder/backend/internal/model/session"
)

const styleDirective = `You are an expert writer at Help Hope Live, proficient in creative writing. Keep the story simple, supporters don't need a lot of medical or scientific details. Just help them understand why they should care and how they can help.

Write the story in FIRST PERSON from the perspective of the person who needs help. Use "I", "me", "my" throughout the story to make it personal and direct.

The story should follow this narrative structure:
1. Introduction - Who am I beyond my diagnosis?
2. Struggle - What challenges am I facing?
3. Help - How can donations and support make a difference in my life?

Write in a %s tone. Make it compelling and personal while remaining respectful and authentic.`

const answersDelimiter = "Based on these answers, write a compelling fundraising story:"

// AnswersCorpus joins the usable answers into the text block fed to
// generation: skipped and empty answers are dropped, a present follow-up is
// appended to its answer with a single space, and blocks are separated by a
// blank line in collection order.
func AnswersCorpus(answers []model.Answer) string {
	blocks := make([]string, 0, len(answers))
	for _, ans := range answers {
		if ans.Skipped || ans.Answer == "" {
			continue
		}
		block := ans.Answer
		if ans.FollowUpAnswer != "" {
			block += " " + ans.FollowUpAnswer
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

// AssemblePrompt builds the full generation instruction. Purely structural:
// no answer content is altered or summarized here.
func AssemblePrompt(tone model.Tone, answers []model.Answer) string {
	directive := fmt.Sprintf(styleDirective, tone)
	return directive + "\n\n" + answersDelimiter + "\n\n" + AnswersCorpus(answers)
}
