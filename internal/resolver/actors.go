package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/federation"
	"github.com/estuaire/vidfed/internal/validate"
)

// GetOrCreateActor returns the actor behind iri, dereferencing and
// persisting it on first sight. A cached remote copy past the refresh
// interval is refetched; if the refetch fails on the network the stale
// copy is kept and returned.
func (r *Resolver) GetOrCreateActor(ctx context.Context, iri string) (domain.Actor, error) {
	unlock := r.locks.Lock(iri)
	defer unlock()

	actor, err := r.db.GetActorByURL(ctx, iri)
	if err == nil {
		if actor.Tombstoned {
			return actor, fmt.Errorf("%w: %s", federation.ErrObjectGone, iri)
		}
		if actor.Local() || !r.stale(actor.LastRefreshedAt) {
			return actor, nil
		}
		return r.refreshActor(ctx, actor)
	}
	if !errors.Is(err, db.ErrNotFound) {
		return domain.Actor{}, err
	}

	payload, err := r.fetchActor(ctx, iri)
	if err != nil {
		return domain.Actor{}, err
	}

	actor = actorFromPayload(payload)
	actor.ID, err = r.db.CreateActor(ctx, actor)
	if err != nil {
		return domain.Actor{}, err
	}
	log.Info().Str("actor", iri).Msg("discovered remote actor")
	return actor, nil
}

// UpsertActor persists an actor payload delivered inline, as the
// object of an Update. Local actors are never overwritten by remote
// payloads.
func (r *Resolver) UpsertActor(ctx context.Context, p ap.ActorPayload) (domain.Actor, error) {
	if err := validate.Actor(p); err != nil {
		return domain.Actor{}, err
	}

	unlock := r.locks.Lock(p.ID)
	defer unlock()

	updated := actorFromPayload(p)

	existing, err := r.db.GetActorByURL(ctx, p.ID)
	if err == nil {
		if existing.Local() {
			return existing, fmt.Errorf("%w: refusing remote update of %s", federation.ErrMalformedObject, p.ID)
		}
		updated.ID = existing.ID
		return updated, r.db.UpdateActor(ctx, updated)
	}
	if !errors.Is(err, db.ErrNotFound) {
		return domain.Actor{}, err
	}

	updated.ID, err = r.db.CreateActor(ctx, updated)
	return updated, err
}

func (r *Resolver) refreshActor(ctx context.Context, actor domain.Actor) (domain.Actor, error) {
	payload, err := r.fetchActor(ctx, actor.URL)
	switch {
	case errors.Is(err, federation.ErrObjectGone):
		if derr := r.db.TombstoneActorByURL(ctx, actor.URL); derr != nil {
			return actor, derr
		}
		log.Info().Str("actor", actor.URL).Msg("remote actor gone, tombstoned")
		return actor, err
	case errors.Is(err, federation.ErrRemoteUnreachable):
		// keep serving the stale copy, retry after another interval
		if terr := r.db.TouchActor(ctx, actor.URL, time.Now().UTC()); terr != nil {
			log.Error().Err(terr).Str("actor", actor.URL).Msg("failed to reset refresh timer")
		}
		return actor, nil
	case err != nil:
		return actor, err
	}

	updated := actorFromPayload(payload)
	updated.ID = actor.ID
	if err = r.db.UpdateActor(ctx, updated); err != nil {
		return actor, err
	}
	return updated, nil
}

func (r *Resolver) fetchActor(ctx context.Context, iri string) (ap.ActorPayload, error) {
	var payload ap.ActorPayload
	if err := r.fetch(ctx, iri, &payload); err != nil {
		return payload, err
	}
	if err := validate.Actor(payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func actorFromPayload(p ap.ActorPayload) domain.Actor {
	u, _ := url.Parse(p.ID)
	return domain.Actor{
		URL:             p.ID,
		Username:        p.PreferredUsername,
		InboxURL:        p.Inbox,
		SharedInboxURL:  p.Endpoints.SharedInbox,
		OutboxURL:       p.Outbox,
		FollowersURL:    p.Followers,
		PublicKeyPem:    p.PublicKey.PublicKeyPem,
		Host:            u.Host,
		Instance:        p.Type == ap.ApplicationType,
		LastRefreshedAt: time.Now().UTC(),
	}
}
