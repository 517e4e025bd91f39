package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helphopelive/story-builder/backend/internal/model/question"
	"github.com/helphopelive/story-builder/backend/pkg/utils"
)

// Handler serves the read-only question catalog.
type Handler struct {
	catalog question.Catalog
}

// New creates the question handler.
func New(catalog question.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes mounts the catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/questions", h.handleListQuestions)
}

func (h *Handler) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalog.List())
}
