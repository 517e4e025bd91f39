package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/helphopelive/story-builder/backend/internal/config"
	model "github.com/helphopelive/story-builder/backend/internal/model/session"
	sessionservice "github.com/helphopelive/story-builder/backend/internal/service/session"
	storyservice "github.com/helphopelive/story-builder/backend/internal/service/story"
)

func setupRouter() (*chi.Mux, *sessionservice.Store) {
	store := sessionservice.NewStore()
	generator := storyservice.NewGenerator(context.Background(), config.AIConfig{TimeoutSeconds: 5})
	handler := New(generator, store)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func decodeFrames(t *testing.T, body string) []StreamResponse {
	t.Helper()

	var frames []StreamResponse
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var frame StreamResponse
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &frame); err != nil {
			t.Fatalf("malformed sse frame %q: %v", line, err)
		}
		frames = append(frames, frame)
	}
	return frames
}

func TestStreamStoryUnknownSession(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/stream-story/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestStreamStoryFallbackSingleChunk(t *testing.T) {
	r, store := setupRouter()
	sess, _ := store.Create(context.Background())
	_ = store.ReplaceAnswers(context.Background(), sess.ID, []model.Answer{
		{QuestionID: "name", Answer: "Alex"},
	})

	req := httptest.NewRequest(http.MethodGet, "/stream-story/"+sess.ID+"?tone=serious", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type: %s", ct)
	}

	frames := decodeFrames(t, resp.Body.String())
	if len(frames) != 3 {
		t.Fatalf("expected start + chunk + end, got %d frames", len(frames))
	}
	if frames[0].Event != "start" || frames[2].Event != "end" || !frames[2].Finished {
		t.Fatalf("unexpected frame envelope: %+v", frames)
	}
	chunk := frames[1]
	if chunk.Event != "chunk" || !strings.Contains(chunk.Content, "MOCK STORY") || !strings.Contains(chunk.Content, "Alex") {
		t.Fatalf("unexpected fallback chunk: %+v", chunk)
	}

	got, _ := store.Get(context.Background(), sess.ID)
	if got.StoryDraft != chunk.Content {
		t.Fatal("streamed draft must be written back into the session")
	}
}
