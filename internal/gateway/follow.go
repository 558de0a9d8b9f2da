package gateway

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
)

// FollowRemoteActor emits a Follow toward target on behalf of
// follower and records the pending edge. Re-following an actor we
// already track is a no-op.
func (g *FedGatewayImpl) FollowRemoteActor(ctx context.Context, follower, target domain.Actor) error {
	_, err := g.db.GetFollow(ctx, follower.ID, target.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	follow := ap.NewFollow(follower.URL, target.URL)
	_, err = g.db.CreateFollow(ctx, domain.Follow{
		URL:      follow.ID,
		ActorID:  follower.ID,
		TargetID: target.ID,
		State:    domain.FollowPending,
	})
	if err != nil {
		return err
	}

	inbox := target.InboxURL
	log.Info().Str("follower", follower.URL).Str("target", target.URL).Msg("following remote actor")
	return g.Unicast(ctx, follow, inbox, follower)
}

// AcceptFollow sends a signed Accept wrapping the received Follow back
// to the follower's inbox.
func (g *FedGatewayImpl) AcceptFollow(ctx context.Context, local domain.Actor, follow ap.Activity, inbox string) error {
	return g.Unicast(ctx, ap.NewAccept(local.URL, follow), inbox, local)
}

// RejectFollow sends a signed Reject wrapping the received Follow back
// to the follower's inbox.
func (g *FedGatewayImpl) RejectFollow(ctx context.Context, local domain.Actor, follow ap.Activity, inbox string) error {
	return g.Unicast(ctx, ap.NewReject(local.URL, follow), inbox, local)
}
