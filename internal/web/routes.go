package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	r.Get("/", GetInstanceActor(h))
	r.Post("/inbox", SharedInbox(h))

	r.Route("/actors/{name}", func(r chi.Router) {
		r.Get("/", GetActor(h))
		r.Post("/inbox", ActorInbox(h))
	})
}
