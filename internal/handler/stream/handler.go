package stream

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	model "github.com/helphopelive/story-builder/backend/internal/model/session"
	sessionservice "github.com/helphopelive/story-builder/backend/internal/service/session"
	storyservice "github.com/helphopelive/story-builder/backend/internal/service/story"
	"github.com/helphopelive/story-builder/backend/pkg/utils"
)

// Handler streams story drafts via Server-Sent Events. It carries the same
// total-success contract as the plain generation endpoint: any failure of
// the model branch degrades to the mock draft delivered as a single chunk.
type Handler struct {
	generator *storyservice.Generator
	sessions  *sessionservice.Store
}

// New creates the stream handler.
func New(generator *storyservice.Generator, sessions *sessionservice.Store) *Handler {
	return &Handler{generator: generator, sessions: sessions}
}

// RegisterRoutes mounts the streaming route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stream-story/{sessionID}", h.handleStreamStory)
}

// StreamResponse is one SSE frame of the draft stream.
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
}

func (h *Handler) handleStreamStory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	// Resolve the session before the stream opens so unknown ids still get
	// a plain 404.
	sess, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	tone := storyservice.ResolveTone(r.URL.Query().Get("tone"), sess.Tone)

	utils.SetupSSEHeaders(w)
	utils.SendSSEChunk(w, flusher, StreamResponse{Event: "start", SessionID: sessionID})

	draft := h.streamDraft(w, flusher, r, sessionID, tone, sess.Answers)

	h.sessions.TrySetDraft(r.Context(), sessionID, draft)

	utils.SendSSEChunk(w, flusher, StreamResponse{Event: "end", SessionID: sessionID, Finished: true})
}

// streamDraft relays model chunks as they arrive and returns the joined
// draft. When the model branch is unavailable or breaks before producing
// anything, the mock draft goes out as one chunk instead.
func (h *Handler) streamDraft(w http.ResponseWriter, flusher http.Flusher, r *http.Request, sessionID string, tone model.Tone, answers []model.Answer) string {
	reader, err := h.generator.Stream(r.Context(), tone, answers)
	if err != nil {
		if h.generator.Configured() {
			log.Printf("[stream] model stream failed: %v", err)
		}
		return h.sendFallback(w, flusher, r, sessionID, tone, answers)
	}
	defer reader.Close()

	var builder strings.Builder
	for {
		chunk, err := reader.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("[stream] model stream interrupted: %v", err)
			if builder.Len() == 0 {
				return h.sendFallback(w, flusher, r, sessionID, tone, answers)
			}
			break
		}
		if chunk == nil || chunk.Content == "" {
			continue
		}
		builder.WriteString(chunk.Content)
		utils.SendSSEChunk(w, flusher, StreamResponse{
			Event:     "chunk",
			SessionID: sessionID,
			Content:   chunk.Content,
		})
	}

	if strings.TrimSpace(builder.String()) == "" {
		return h.sendFallback(w, flusher, r, sessionID, tone, answers)
	}
	return builder.String()
}

func (h *Handler) sendFallback(w http.ResponseWriter, flusher http.Flusher, r *http.Request, sessionID string, tone model.Tone, answers []model.Answer) string {
	draft := h.generator.Generate(r.Context(), tone, answers)
	utils.SendSSEChunk(w, flusher, StreamResponse{
		Event:     "chunk",
		SessionID: sessionID,
		Content:   draft,
	})
	return draft
}
