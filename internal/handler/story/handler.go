package story

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	model "github.com/helphopelive/story-builder/backend/internal/model/session"
	sessionservice "github.com/helphopelive/story-builder/backend/internal/service/session"
	storyservice "github.com/helphopelive/story-builder/backend/internal/service/story"
	"github.com/helphopelive/story-builder/backend/pkg/utils"
)

// Handler serves the story generation trigger.
type Handler struct {
	generator *storyservice.Generator
	sessions  *sessionservice.Store
}

// New creates the story handler.
func New(generator *storyservice.Generator, sessions *sessionservice.Store) *Handler {
	return &Handler{generator: generator, sessions: sessions}
}

// RegisterRoutes mounts the generation route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate-story", h.handleGenerateStory)
}

// handleGenerateStory always answers 200: the generator converts every
// internal failure into the mock draft, and the post-generation write-back
// is best-effort because the session may have been evicted during the
// external call.
func (h *Handler) handleGenerateStory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string         `json:"sessionId"`
		Tone      string         `json:"tone"`
		Answers   []model.Answer `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var storedTone model.Tone
	if sess, err := h.sessions.Get(r.Context(), payload.SessionID); err == nil {
		storedTone = sess.Tone
	}

	tone := storyservice.ResolveTone(payload.Tone, storedTone)
	draft := h.generator.Generate(r.Context(), tone, payload.Answers)

	h.sessions.TrySetDraft(r.Context(), payload.SessionID, draft)

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"story":     draft,
		"sessionId": payload.SessionID,
	})
}
