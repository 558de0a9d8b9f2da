package inbox

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
)

func (d *Dispatcher) handleLike(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	return d.rate(ctx, a, domain.RateLike)
}

func (d *Dispatcher) handleDislike(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	return d.rate(ctx, a, domain.RateDislike)
}

// rate records a like or dislike. One rate per (actor, video):
// re-delivery of the same verdict changes nothing, the opposite
// verdict flips the rate and moves both counters in one transaction.
func (d *Dispatcher) rate(ctx context.Context, a ap.Activity, rateType domain.RateType) error {
	videoIRI, err := a.ObjectID()
	if err != nil {
		return fmt.Errorf("%w: %s object: %v", federation.ErrMissingProperty, a.Type, err)
	}

	video, err := d.resolver.GetOrCreateVideo(ctx, videoIRI)
	if err != nil {
		return err
	}
	actor, err := d.resolver.GetOrCreateActor(ctx, a.Actor)
	if err != nil {
		return err
	}

	return d.db.WithTransaction(ctx, func(tx db.DB) error {
		existing, err := tx.GetRate(ctx, actor.ID, video.ID)
		switch {
		case errors.Is(err, db.ErrNotFound):
			err = tx.CreateRate(ctx, domain.Rate{
				URL:     a.ID,
				ActorID: actor.ID,
				VideoID: video.ID,
				Type:    rateType,
			})
			if err != nil {
				return err
			}
			likes, dislikes := delta(rateType)
			return tx.AddVideoRates(ctx, video.ID, likes, dislikes)

		case err != nil:
			return err

		case existing.Type == rateType:
			return nil

		default:
			if err = tx.DeleteRate(ctx, existing.ID); err != nil {
				return err
			}
			err = tx.CreateRate(ctx, domain.Rate{
				URL:     a.ID,
				ActorID: actor.ID,
				VideoID: video.ID,
				Type:    rateType,
			})
			if err != nil {
				return err
			}
			likes, dislikes := delta(rateType)
			revLikes, revDislikes := delta(existing.Type)
			return tx.AddVideoRates(ctx, video.ID, likes-revLikes, dislikes-revDislikes)
		}
	})
}

func delta(t domain.RateType) (likes, dislikes int) {
	if t == domain.RateLike {
		return 1, 0
	}
	return 0, 1
}

// handleAnnounce records a share of a video. Keyed by the announce
// activity id, so re-delivery only refreshes the timestamp.
func (d *Dispatcher) handleAnnounce(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	videoIRI, err := a.ObjectID()
	if err != nil {
		return fmt.Errorf("%w: announce object: %v", federation.ErrMissingProperty, err)
	}

	video, err := d.resolver.GetOrCreateVideo(ctx, videoIRI)
	if err != nil {
		return err
	}
	actor, err := d.resolver.GetOrCreateActor(ctx, a.Actor)
	if err != nil {
		return err
	}

	existing, err := d.db.GetShareByURL(ctx, a.ID)
	if err == nil {
		return d.db.TouchShare(ctx, existing.ID, time.Now().UTC())
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	return d.db.CreateShare(ctx, domain.Share{
		URL:     a.ID,
		ActorID: actor.ID,
		VideoID: video.ID,
	})
}

// handleUndo reverses an earlier activity of the same actor. The
// undone activity travels embedded in the object property.
func (d *Dispatcher) handleUndo(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	var inner ap.Activity
	if err := json.Unmarshal(a.Object, &inner); err != nil {
		return fmt.Errorf("%w: undo object: %v", federation.ErrMalformedObject, err)
	}
	if inner.Actor != "" && inner.Actor != a.Actor {
		return fmt.Errorf("%w: %s undoes activity of %s", federation.ErrMalformedObject, a.Actor, inner.Actor)
	}

	switch inner.Type {
	case ap.FollowType:
		return d.undoFollow(ctx, inner)
	case ap.LikeType, ap.DislikeType:
		return d.undoRate(ctx, a.Actor, inner)
	case ap.AnnounceType:
		return d.db.DeleteShareByURL(ctx, inner.ID)
	default:
		log.Info().Str("innerType", inner.Type).Str("id", a.ID).Msg("ignoring undo of unsupported activity")
		return nil
	}
}

func (d *Dispatcher) undoFollow(ctx context.Context, follow ap.Activity) error {
	existing, err := d.db.GetFollowByURL(ctx, follow.ID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return err
	}
	return d.db.DeleteFollow(ctx, existing.ID)
}

func (d *Dispatcher) undoRate(ctx context.Context, actorIRI string, inner ap.Activity) error {
	videoIRI, err := inner.ObjectID()
	if err != nil {
		return fmt.Errorf("%w: undone rate object: %v", federation.ErrMissingProperty, err)
	}

	video, err := d.db.GetVideoByURL(ctx, videoIRI)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return err
	}
	actor, err := d.db.GetActorByURL(ctx, actorIRI)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return err
	}

	return d.db.WithTransaction(ctx, func(tx db.DB) error {
		rate, err := tx.GetRate(ctx, actor.ID, video.ID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return nil
			}
			return err
		}
		if err = tx.DeleteRate(ctx, rate.ID); err != nil {
			return err
		}
		likes, dislikes := delta(rate.Type)
		return tx.AddVideoRates(ctx, video.ID, -likes, -dislikes)
	})
}

// handleView acknowledges a view event without recording it; view
// counting stays with the instance that hosts the video.
func (d *Dispatcher) handleView(_ context.Context, a ap.Activity, _ domain.Actor) error {
	log.Debug().Str("id", a.ID).Str("actor", a.Actor).Msg("view acknowledged")
	return nil
}
