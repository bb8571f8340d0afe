// internal/handler/routes.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the versioned API surface. Middleware is the caller's
// concern so tests can exercise the bare routes.
func Routes(campaigns *CampaignHandler, contents *ContentHandler) chi.Router {
	r := chi.NewRouter()

	r.Route("/v1", func(r chi.Router) {
		r.Get("/", hello)

		r.Post("/campaign", campaigns.Create)
		r.Get("/campaign", campaigns.List)
		r.Get("/campaign/{id}", campaigns.Get)
		r.Put("/campaign/{id}", campaigns.Update)
		r.Delete("/campaign/{id}", campaigns.Delete)
		r.Get("/campaign/{id}/content", campaigns.ListContent)
		r.Get("/campaigns/active", campaigns.GetActive)

		r.Post("/content", contents.Create)
		r.Get("/content", contents.List)
		r.Get("/content/{id}", contents.Get)
		r.Put("/content/{id}", contents.Update)
		r.Delete("/content/{id}", contents.Delete)
	})

	return r
}

func hello(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Welcome to Spock Admin!!"))
}
