package answers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/helphopelive/story-builder/backend/internal/model/question"
	model "github.com/helphopelive/story-builder/backend/internal/model/session"
	"github.com/helphopelive/story-builder/backend/internal/service/answers"
	sessionservice "github.com/helphopelive/story-builder/backend/internal/service/session"
)

func TestMergeAppendsNewQuestion(t *testing.T) {
	collection := []model.Answer{{QuestionID: "name", Answer: "Alex"}}

	collection = answers.Merge(collection, model.Answer{QuestionID: "condition", Answer: "spinal injury"})

	if len(collection) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(collection))
	}
	if collection[1].QuestionID != "condition" {
		t.Fatalf("new answer must append at the end, got %s", collection[1].QuestionID)
	}
}

func TestMergeReplacesInPlace(t *testing.T) {
	collection := []model.Answer{
		{QuestionID: "name", Answer: "Alex"},
		{QuestionID: "condition", Answer: "spinal injury"},
		{QuestionID: "age", Answer: "34"},
	}

	collection = answers.Merge(collection, model.Answer{QuestionID: "condition", Answer: "ALS"})

	if len(collection) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(collection))
	}
	if collection[1].QuestionID != "condition" || collection[1].Answer != "ALS" {
		t.Fatalf("expected in-place replacement at position 1, got %+v", collection[1])
	}
}

func TestMergeClearsSkipFlag(t *testing.T) {
	collection := []model.Answer{{QuestionID: "age", Skipped: true}}

	collection = answers.Merge(collection, model.Answer{QuestionID: "age", Answer: "34", Skipped: true})

	if collection[0].Skipped {
		t.Fatal("answering must set skipped=false")
	}
	if collection[0].Answer != "34" {
		t.Fatalf("unexpected answer text: %q", collection[0].Answer)
	}
}

func TestSkipExistingKeepsText(t *testing.T) {
	collection := []model.Answer{{QuestionID: "identity", Answer: "I teach high school math", FollowUpAnswer: "twenty years now"}}

	collection = answers.Skip(collection, "identity")

	if !collection[0].Skipped {
		t.Fatal("expected skipped=true")
	}
	if collection[0].Answer != "I teach high school math" || collection[0].FollowUpAnswer != "twenty years now" {
		t.Fatal("skip must not erase previously recorded text")
	}
}

func TestSkipMissingCreatesEmptyEntry(t *testing.T) {
	collection := answers.Skip(nil, "hospital")

	if len(collection) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(collection))
	}
	got := collection[0]
	if got.QuestionID != "hospital" || !got.Skipped || got.Answer != "" {
		t.Fatalf("unexpected skip entry: %+v", got)
	}
}

func TestRecorderReplacePersists(t *testing.T) {
	catalog := question.NewMemoryCatalog(question.Seed())
	store := sessionservice.NewStore()
	recorder := answers.NewRecorder(catalog, store)
	ctx := context.Background()

	sess, _ := store.Create(ctx)
	collection := []model.Answer{
		{QuestionID: "name", Answer: "Alex"},
		{QuestionID: "struggles", Answer: "stairs are hard now"},
	}
	if err := recorder.Replace(ctx, sess.ID, collection); err != nil {
		t.Fatalf("Replace err: %v", err)
	}

	got, _ := store.Get(ctx, sess.ID)
	if len(got.Answers) != 2 || got.Answers[0].Answer != "Alex" {
		t.Fatalf("answers not persisted: %+v", got.Answers)
	}
}

func TestRecorderReplaceUnknownQuestion(t *testing.T) {
	catalog := question.NewMemoryCatalog(question.Seed())
	store := sessionservice.NewStore()
	recorder := answers.NewRecorder(catalog, store)
	ctx := context.Background()

	sess, _ := store.Create(ctx)
	err := recorder.Replace(ctx, sess.ID, []model.Answer{{QuestionID: "not-a-question", Answer: "?"}})
	if !errors.Is(err, answers.ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}

	got, _ := store.Get(ctx, sess.ID)
	if len(got.Answers) != 0 {
		t.Fatal("rejected collection must not be persisted")
	}
}

func TestRecorderReplaceUnknownSession(t *testing.T) {
	catalog := question.NewMemoryCatalog(question.Seed())
	store := sessionservice.NewStore()
	recorder := answers.NewRecorder(catalog, store)

	err := recorder.Replace(context.Background(), "missing", []model.Answer{{QuestionID: "name", Answer: "Alex"}})
	if !errors.Is(err, sessionservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
