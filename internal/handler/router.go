package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	questionHandler "github.com/helphopelive/story-builder/backend/internal/handler/question"
	sessionHandler "github.com/helphopelive/story-builder/backend/internal/handler/session"
	storyHandler "github.com/helphopelive/story-builder/backend/internal/handler/story"
	streamHandler "github.com/helphopelive/story-builder/backend/internal/handler/stream"
	middlewarePkg "github.com/helphopelive/story-builder/backend/internal/middleware"
	"github.com/helphopelive/story-builder/backend/internal/model/question"
	"github.com/helphopelive/story-builder/backend/internal/service/answers"
	sessionservice "github.com/helphopelive/story-builder/backend/internal/service/session"
	storyservice "github.com/helphopelive/story-builder/backend/internal/service/story"
	"github.com/helphopelive/story-builder/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(catalog question.Catalog, sessions *sessionservice.Store, recorder *answers.Recorder, generator *storyservice.Generator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		questionHandler.New(catalog).RegisterRoutes(api)
		sessionHandler.New(sessions, recorder).RegisterRoutes(api)
		storyHandler.New(generator, sessions).RegisterRoutes(api)
		streamHandler.New(generator, sessions).RegisterRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	})

	return r
}
