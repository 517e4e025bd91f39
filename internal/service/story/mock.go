package story

import (
	"fmt"
	"strings"

	model "github.com/helphopelive/story-builder/backend/internal/model/session"
)

// MockStory deterministically composes a clearly-labeled placeholder draft
// from the same filtered answers corpus the real prompt uses. It is the
// guaranteed terminal behavior of the generation pipeline and never fails.
func MockStory(tone model.Tone, answers []model.Answer) string {
	return fmt.Sprintf(`[MOCK STORY - %s TONE - FIRST PERSON]

This is a sample story generated from your answers. To get AI-generated stories, please configure the generative model credentials.

Based on your responses:
%s

Your story would be crafted in a %s tone, written in first person from your perspective, following the narrative structure of introduction, struggle, and how people can help.

To enable AI story generation:
1. Create an Ark API key (or an access key / secret key pair)
2. Set ARK_MODEL to the model endpoint you want to use
3. Add the credentials to your .env file
4. Restart the server

For now, you can continue testing the app with this mock story generation.`,
		strings.ToUpper(string(tone)),
		AnswersCorpus(answers),
		tone,
	)
}
