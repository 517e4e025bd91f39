package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	model "github.com/helphopelive/story-builder/backend/internal/model/session"
	"github.com/helphopelive/story-builder/backend/internal/service/answers"
	"github.com/helphopelive/story-builder/backend/internal/service/export"
	sessionservice "github.com/helphopelive/story-builder/backend/internal/service/session"
	"github.com/helphopelive/story-builder/backend/pkg/utils"
)

// Handler serves session lifecycle, answer submission, tone selection, and
// export.
type Handler struct {
	sessions *sessionservice.Store
	recorder *answers.Recorder
}

// New creates the session handler.
func New(sessions *sessionservice.Store, recorder *answers.Recorder) *Handler {
	return &Handler{sessions: sessions, recorder: recorder}
}

// RegisterRoutes mounts the session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions", h.handleCreateSession)
	r.Get("/sessions/{sessionID}", h.handleGetSession)
	r.Post("/sessions/{sessionID}/answers", h.handleReplaceAnswers)
	r.Post("/sessions/{sessionID}/tone", h.handleSetTone)
	r.Get("/sessions/{sessionID}/export", h.handleExport)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Create(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"sessionId": sess.ID})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, sess)
}

func (h *Handler) handleReplaceAnswers(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Answers []model.Answer `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.recorder.Replace(r.Context(), sessionID, payload.Answers)
	switch {
	case errors.Is(err, sessionservice.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, answers.ErrUnknownQuestion):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, "failed to save answers")
	default:
		utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func (h *Handler) handleSetTone(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Tone string `json:"tone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tone, ok := model.ParseTone(payload.Tone)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "invalid tone")
		return
	}

	if err := h.sessions.SetTone(r.Context(), sessionID, tone); err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	// Anything but csv falls back to the structured format.
	if r.URL.Query().Get("format") == "csv" {
		data, err := export.CSV(sess)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "failed to export session")
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "campaign-story-"+sessionID+".csv"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	data, err := export.JSON(sess)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to export session")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "campaign-story-"+sessionID+".json"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
