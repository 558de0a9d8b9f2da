package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/federation"
	"github.com/estuaire/vidfed/internal/validate"
)

// GetOrCreateVideo returns the video behind iri, dereferencing it on
// first sight and refreshing stale copies.
func (r *Resolver) GetOrCreateVideo(ctx context.Context, iri string) (domain.Video, error) {
	v, err := r.db.GetVideoByURL(ctx, iri)
	if err == nil && !r.stale(v.LastRefreshedAt) {
		return v, nil
	}
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return domain.Video{}, err
	}
	known := err == nil

	var payload ap.VideoPayload
	if err = r.fetch(ctx, iri, &payload); err != nil {
		switch {
		case known && errors.Is(err, federation.ErrObjectGone):
			if derr := r.db.DeleteVideoByURL(ctx, iri); derr != nil {
				return v, derr
			}
			return domain.Video{}, err
		case known && errors.Is(err, federation.ErrRemoteUnreachable):
			if terr := r.db.TouchVideo(ctx, iri, time.Now().UTC()); terr != nil {
				log.Error().Err(terr).Str("video", iri).Msg("failed to reset refresh timer")
			}
			return v, nil
		}
		return domain.Video{}, err
	}

	v, err = r.UpsertVideo(ctx, payload)
	if err != nil {
		return domain.Video{}, err
	}
	if payload.Shares != "" {
		if serr := r.refreshShares(ctx, v, payload.Shares); serr != nil {
			log.Error().Err(serr).Str("video", v.URL).Msg("share crawl failed")
		}
	}
	return v, nil
}

// refreshShares walks the video's shares collection, touching every
// share it still lists, then sweeps the rows the crawl did not touch.
func (r *Resolver) refreshShares(ctx context.Context, video domain.Video, collection string) error {
	onPage := func(ctx context.Context, items []json.RawMessage) error {
		for _, item := range items {
			if err := r.upsertShare(ctx, video, item); err != nil {
				log.Warn().Err(err).Str("video", video.URL).Msg("skipping share item")
			}
		}
		return nil
	}
	onDone := func(ctx context.Context, startedAt time.Time) error {
		swept, err := r.db.DeleteSharesOlderThan(ctx, video.ID, startedAt)
		if err != nil {
			return err
		}
		if swept > 0 {
			log.Info().Int64("count", swept).Str("video", video.URL).Msg("swept stale shares")
		}
		return nil
	}
	return r.crawler.Crawl(ctx, collection, onPage, onDone)
}

func (r *Resolver) upsertShare(ctx context.Context, video domain.Video, item json.RawMessage) error {
	var a ap.Activity
	if err := json.Unmarshal(item, &a); err != nil {
		return fmt.Errorf("%w: share item: %v", federation.ErrMalformedObject, err)
	}
	if a.ID == "" || a.Actor == "" {
		return fmt.Errorf("%w: share item without id or actor", federation.ErrMissingProperty)
	}

	existing, err := r.db.GetShareByURL(ctx, a.ID)
	if err == nil {
		return r.db.TouchShare(ctx, existing.ID, time.Now().UTC())
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	actor, err := r.GetOrCreateActor(ctx, a.Actor)
	if err != nil {
		return err
	}
	return r.db.CreateShare(ctx, domain.Share{URL: a.ID, ActorID: actor.ID, VideoID: video.ID})
}

// UpsertVideo persists a video payload, creating or updating the row.
// Used both by the fetch path above and by Create/Update deliveries
// carrying the object inline.
func (r *Resolver) UpsertVideo(ctx context.Context, p ap.VideoPayload) (domain.Video, error) {
	if err := validate.Video(p); err != nil {
		return domain.Video{}, err
	}

	unlock := r.locks.Lock(p.ID)
	defer unlock()

	account, err := r.attributedAccount(ctx, p.ID, p.AttributedTo)
	if err != nil {
		return domain.Video{}, err
	}

	visibility, ok := ap.VisibilityFromAudience(p.To, p.Cc)
	if !ok {
		return domain.Video{}, fmt.Errorf("%w: video %s is neither public nor unlisted", federation.ErrMalformedObject, p.ID)
	}

	video := domain.Video{
		URL:         p.ID,
		Name:        p.Name,
		Description: p.Content,
		AccountID:   account.ID,
		Visibility:  visibility,
	}

	existing, err := r.db.GetVideoByURL(ctx, p.ID)
	if err == nil {
		video.ID = existing.ID
		return video, r.db.UpdateVideo(ctx, video)
	}
	if !errors.Is(err, db.ErrNotFound) {
		return domain.Video{}, err
	}

	video.ID, err = r.db.CreateVideo(ctx, video)
	return video, err
}

// attributedAccount resolves the owning actor out of an attribution
// list, preferring the account (Person) over the channel (Group). The
// attribution must share the object's origin.
func (r *Resolver) attributedAccount(ctx context.Context, objectIRI string, attributions []ap.Attribution) (domain.Actor, error) {
	var chosen string
	for _, a := range attributions {
		if a.ID == "" {
			continue
		}
		if chosen == "" || a.Type == ap.PersonType {
			chosen = a.ID
		}
		if a.Type == ap.PersonType {
			break
		}
	}
	if chosen == "" {
		return domain.Actor{}, fmt.Errorf("%w: attributedTo on %s", federation.ErrMissingProperty, objectIRI)
	}
	if !sameOrigin(objectIRI, chosen) {
		return domain.Actor{}, fmt.Errorf("%w: %s attributed to foreign actor %s", federation.ErrMalformedObject, objectIRI, chosen)
	}
	return r.GetOrCreateActor(ctx, chosen)
}
