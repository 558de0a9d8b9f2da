package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
)

func (h *Handler) actorURL(name string) string {
	return h.Config.Url.JoinPath("actors", name).String()
}

// GetActor serves the document peers dereference to find a local
// actor's inboxes and public key.
func GetActor(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		actor, err := h.db.GetActorByURL(r.Context(), h.actorURL(name))
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !actor.Local() {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if actor.Tombstoned {
			w.WriteHeader(http.StatusGone)
			return
		}
		serveActor(w, actor)
	}
}

// GetInstanceActor serves the whole-instance actor at the site root.
func GetInstanceActor(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := h.db.GetActorByURL(r.Context(), h.Config.Url.String())
		if err != nil {
			log.Error().Err(err).Msg("instance actor missing")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		serveActor(w, actor)
	}
}

func serveActor(w http.ResponseWriter, actor domain.Actor) {
	kind := ap.PersonType
	if actor.Instance {
		kind = ap.ApplicationType
	}

	payload := ap.ActorPayload{
		AtContext:         ap.Context,
		ID:                actor.URL,
		Type:              kind,
		PreferredUsername: actor.Username,
		Inbox:             actor.InboxURL,
		Outbox:            actor.OutboxURL,
		Followers:         actor.FollowersURL,
		Endpoints:         ap.Endpoints{SharedInbox: actor.SharedInboxURL},
		PublicKey: ap.PublicKey{
			ID:           actor.URL + "#main-key",
			Owner:        actor.URL,
			PublicKeyPem: actor.PublicKeyPem,
		},
	}

	w.Header().Set("Content-Type", config.ContentType)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode actor document")
	}
}
