package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the garden API router, to be mounted under the API prefix
func (h *GardenHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/garden", h.GetGarden)
	r.Post("/garden/foreground", h.Foreground)
	r.Put("/settings", h.UpdateSettings)
	r.Get("/catalog", h.GetCatalog)

	r.Route("/plants", func(r chi.Router) {
		r.Post("/", h.Plant)
		r.Post("/{id}/water", h.Water)
		r.Post("/{id}/harvest", h.Harvest)
	})

	r.Post("/shop/seeds", h.BuySeeds)
	r.Post("/visitors/{animal}/claim", h.ClaimVisitor)
	r.Post("/mail/{id}/read", h.ReadMail)
	r.Post("/mail/{id}/claim", h.ClaimMail)
	r.Post("/collection/seen", h.MarkCollectionSeen)
	r.Post("/decorations/{id}/toggle", h.ToggleDecoration)

	if h.events != nil {
		r.Get("/events", h.events)
	}

	return r
}
