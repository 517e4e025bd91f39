package answers

import (
	"context"
	"errors"
	"fmt"

	"github.com/helphopelive/story-builder/backend/internal/model/question"
	model "github.com/helphopelive/story-builder/backend/internal/model/session"
	sessionservice "github.com/helphopelive/story-builder/backend/internal/service/session"
)

var ErrUnknownQuestion = errors.New("unknown question id")

// Recorder validates answer collections against the question catalog and
// persists them through the session store. The wizard merges individual
// submissions client-side and always sends the complete collection.
type Recorder struct {
	catalog  question.Catalog
	sessions *sessionservice.Store
}

// NewRecorder wires the recorder to its catalog and store.
func NewRecorder(catalog question.Catalog, sessions *sessionservice.Store) *Recorder {
	return &Recorder{catalog: catalog, sessions: sessions}
}

// Replace validates every answer's question id and overwrites the session's
// full answer set.
func (r *Recorder) Replace(ctx context.Context, sessionID string, collection []model.Answer) error {
	for _, ans := range collection {
		if _, ok := r.catalog.FindByID(ans.QuestionID); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownQuestion, ans.QuestionID)
		}
	}
	return r.sessions.ReplaceAnswers(ctx, sessionID, collection)
}

// Merge folds one answered submission into a collection. An existing entry
// for the same question is replaced in place, keeping its position; a new
// question id is appended. Answering always clears the skip flag.
//
// Merge and Skip define the merge contract the wizard client applies before
// submitting the complete collection; the server itself only ever receives
// full replacements.
func Merge(collection []model.Answer, candidate model.Answer) []model.Answer {
	candidate.Skipped = false
	for i, ans := range collection {
		if ans.QuestionID == candidate.QuestionID {
			collection[i] = candidate
			return collection
		}
	}
	return append(collection, candidate)
}

// Skip marks a question as explicitly skipped in a client-held collection,
// under the same contract as Merge. An existing entry keeps its recorded
// text so a later un-skip would not lose it; a missing entry is created
// empty.
func Skip(collection []model.Answer, questionID string) []model.Answer {
	for i, ans := range collection {
		if ans.QuestionID == questionID {
			collection[i].Skipped = true
			return collection
		}
	}
	return append(collection, model.Answer{QuestionID: questionID, Skipped: true})
}
