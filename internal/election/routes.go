package election

import (
	"net/http"

	"github.com/OctopusVote/OV-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/ranking", RankingHandler)
	r.Post("/ranking/filter", FilterHandler)
	r.Get("/candidates", CandidatesHandler)
	r.Get("/status", StatusHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminTokenMiddleware)
		r.Post("/admin/rebuild", RebuildHandler)
	})

	return r
}
