package question_test

import (
	"testing"

	"github.com/helphopelive/story-builder/backend/internal/model/question"
)

func TestSeedHasUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range question.Seed() {
		if q.ID == "" {
			t.Fatal("question id must not be empty")
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question id: %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestCatalogPreservesOrder(t *testing.T) {
	seed := question.Seed()
	catalog := question.NewMemoryCatalog(seed)

	listed := catalog.List()
	if len(listed) != len(seed) {
		t.Fatalf("expected %d questions, got %d", len(seed), len(listed))
	}
	for i, q := range listed {
		if q.ID != seed[i].ID {
			t.Fatalf("catalog order broken at %d: got %s want %s", i, q.ID, seed[i].ID)
		}
	}
}

func TestCatalogFindByID(t *testing.T) {
	catalog := question.NewMemoryCatalog(question.Seed())

	q, ok := catalog.FindByID("struggles")
	if !ok {
		t.Fatal("expected to find struggles")
	}
	if q.Category != question.CategoryStruggle || !q.Required {
		t.Fatalf("unexpected definition: %+v", q)
	}

	if _, ok := catalog.FindByID("nope"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}
