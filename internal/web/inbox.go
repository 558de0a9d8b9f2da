package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/federation"
)

const maxBodySize = 1 << 20

// SharedInbox accepts deliveries addressed to the whole instance.
func SharedInbox(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, err := h.db.GetActorByURL(r.Context(), h.Config.Url.String())
		if err != nil {
			log.Error().Err(err).Msg("instance actor missing")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		h.receive(w, r, target)
	}
}

// ActorInbox accepts deliveries addressed to one local actor.
func ActorInbox(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		target, err := h.db.GetActorByURL(r.Context(), h.actorURL(name))
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		h.receive(w, r, target)
	}
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request, target domain.Actor) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = h.gateway.Verify(ctx, r, body); err != nil {
		log.Info().Err(err).Msg("rejected inbox delivery")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var activity ap.Activity
	if err = json.Unmarshal(body, &activity); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if activity.Type == "" || activity.Actor == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = h.dispatcher.Dispatch(ctx, activity, target); err != nil {
		log.Error().Err(err).Str("type", activity.Type).Str("id", activity.ID).Msg("failed to process activity")
		w.WriteHeader(status(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func status(err error) int {
	switch {
	case errors.Is(err, federation.ErrInvalidSignature), errors.Is(err, federation.ErrInvalidDigest):
		return http.StatusUnauthorized
	case errors.Is(err, federation.ErrNotLocal):
		return http.StatusNotFound
	case errors.Is(err, federation.ErrMalformedObject),
		errors.Is(err, federation.ErrMissingProperty),
		errors.Is(err, federation.ErrRecursionLimit),
		errors.Is(err, federation.ErrUnknownActivity):
		return http.StatusBadRequest
	case errors.Is(err, federation.ErrObjectGone):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
