package story

import model "github.com/helphopelive/story-builder/backend/internal/model/session"

// ResolveTone picks the effective tone for one generation call: an explicit
// non-empty argument wins, then the tone stored on the session, then the
// default. The order lets a caller override tone at generation time without
// re-answering the tone question.
// Only the tone endpoint validates against the tone enum; a free-form
// explicit value is passed through so the prompt reflects what the caller
// asked for.
func ResolveTone(explicit string, stored model.Tone) model.Tone {
	if explicit != "" {
		return model.Tone(explicit)
	}
	if stored != "" {
		return stored
	}
	return model.DefaultTone
}
