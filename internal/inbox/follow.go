package inbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/federation"
)

// handleFollow runs the inbound half of the follow state machine. A
// Follow may only target an actor this server owns. Re-delivery of a
// follow we already track never regresses its state; it only backfills
// a missing activity URL and re-sends the Accept when the edge is
// already accepted.
func (d *Dispatcher) handleFollow(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	objectID, err := a.ObjectID()
	if err != nil {
		return fmt.Errorf("%w: follow object: %v", federation.ErrMissingProperty, err)
	}

	followed, err := d.db.GetActorByURL(ctx, objectID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: %s", federation.ErrNotLocal, objectID)
		}
		return err
	}
	if !followed.Local() {
		return fmt.Errorf("%w: %s", federation.ErrNotLocal, objectID)
	}

	follower, err := d.resolver.GetOrCreateActor(ctx, a.Actor)
	if err != nil {
		return err
	}

	if d.cfg.FollowsDisabled && followed.Instance {
		log.Info().Str("follower", follower.URL).Msg("follows disabled, rejecting")
		return d.gateway.RejectFollow(ctx, followed, a, follower.InboxURL)
	}

	existing, err := d.db.GetFollow(ctx, follower.ID, followed.ID)
	switch {
	case err == nil:
		if existing.URL == "" && a.ID != "" {
			if err = d.db.SetFollowURL(ctx, existing.ID, a.ID); err != nil {
				return err
			}
		}
		if existing.State == domain.FollowAccepted {
			return d.gateway.AcceptFollow(ctx, followed, a, follower.InboxURL)
		}
		return nil
	case !errors.Is(err, db.ErrNotFound):
		return err
	}

	state := domain.FollowAccepted
	if d.cfg.ManualFollowApproval {
		state = domain.FollowPending
	}

	_, err = d.db.CreateFollow(ctx, domain.Follow{
		URL:      a.ID,
		ActorID:  follower.ID,
		TargetID: followed.ID,
		State:    state,
	})
	if err != nil {
		return err
	}
	log.Info().Str("follower", follower.URL).Str("target", followed.URL).Str("state", string(state)).Msg("recorded follow")

	if state == domain.FollowAccepted {
		if err = d.gateway.AcceptFollow(ctx, followed, a, follower.InboxURL); err != nil {
			return err
		}
	}

	if d.cfg.AutoFollowBack && follower.Instance && followed.Instance {
		if err = d.gateway.FollowRemoteActor(ctx, followed, follower); err != nil {
			log.Error().Err(err).Str("target", follower.URL).Msg("auto follow-back failed")
		}
	}
	return nil
}

// handleAccept resolves a peer's answer to a Follow we sent, then
// schedules a crawl of the peer's outbox to backfill its content.
func (d *Dispatcher) handleAccept(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	follow, target, err := d.lookupOutboundFollow(ctx, a)
	if err != nil || follow == nil {
		return err
	}
	if follow.State == domain.FollowAccepted {
		return nil
	}
	if err = d.db.UpdateFollowState(ctx, follow.ID, domain.FollowAccepted); err != nil {
		return err
	}

	if target.OutboxURL != "" {
		if err = d.gateway.Fetch(target.OutboxURL); err != nil {
			log.Error().Err(err).Str("outbox", target.OutboxURL).Msg("failed to schedule backfill crawl")
		}
	}
	return nil
}

// handleReject drops the edge entirely so the actor can be followed
// again later; a kept rejected row would block a fresh Follow on the
// (actor, target) key.
func (d *Dispatcher) handleReject(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	follow, target, err := d.lookupOutboundFollow(ctx, a)
	if err != nil || follow == nil {
		return err
	}
	log.Info().Str("target", target.URL).Msg("follow rejected, dropping edge")
	return d.db.DeleteFollow(ctx, follow.ID)
}

// lookupOutboundFollow finds the follow edge an Accept or Reject is
// answering and checks the answer comes from the actor we followed. A
// nil follow with nil error means the answer references nothing we
// sent and is dropped.
func (d *Dispatcher) lookupOutboundFollow(ctx context.Context, a ap.Activity) (*domain.Follow, domain.Actor, error) {
	followURL, err := a.ObjectID()
	if err != nil {
		return nil, domain.Actor{}, fmt.Errorf("%w: %s object: %v", federation.ErrMissingProperty, a.Type, err)
	}

	follow, err := d.db.GetFollowByURL(ctx, followURL)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			log.Info().Str("follow", followURL).Str("type", a.Type).Msg("answer to unknown follow, dropping")
			return nil, domain.Actor{}, nil
		}
		return nil, domain.Actor{}, err
	}

	target, err := d.db.GetActorByID(ctx, follow.TargetID)
	if err != nil {
		return nil, domain.Actor{}, err
	}
	if target.URL != a.Actor {
		return nil, domain.Actor{}, fmt.Errorf("%w: %s from %s answers a follow of %s", federation.ErrMalformedObject, a.Type, a.Actor, target.URL)
	}
	return &follow, target, nil
}
