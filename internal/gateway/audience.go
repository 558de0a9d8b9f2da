package gateway

import (
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
)

// deliveryBatch bounds how many inboxes one delivery job carries.
const deliveryBatch = 100

// CollectInboxes picks one delivery target per follower, preferring the
// shared inbox when the peer advertises one, and deduplicates while
// preserving order. A shared inbox claimed by many followers appears
// once.
func CollectInboxes(followers []domain.Actor) []string {
	seen := make(map[string]struct{}, len(followers))
	inboxes := make([]string, 0, len(followers))
	for _, f := range followers {
		inbox := f.SharedInboxURL
		if inbox == "" {
			inbox = f.InboxURL
		}
		if inbox == "" {
			continue
		}
		if _, ok := seen[inbox]; ok {
			continue
		}
		seen[inbox] = struct{}{}
		inboxes = append(inboxes, inbox)
	}
	return inboxes
}

// followerInboxes resolves the distinct delivery targets of from's
// accepted followers.
func (g *FedGatewayImpl) followerInboxes(ctx context.Context, from domain.Actor) ([]string, error) {
	followers, err := g.db.GetFollowerActors(ctx, from.ID)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}
	return CollectInboxes(followers), nil
}

// Broadcast fans an activity out to every accepted follower of from.
// No followers means no work; the call succeeds silently.
func (g *FedGatewayImpl) Broadcast(ctx context.Context, activity ap.Activity, from domain.Actor) error {
	inboxes, err := g.followerInboxes(ctx, from)
	if err != nil {
		return err
	}
	return g.deliverAll(ctx, activity, inboxes, from)
}

func (g *FedGatewayImpl) deliverAll(ctx context.Context, activity ap.Activity, inboxes []string, from domain.Actor) error {
	if len(inboxes) == 0 {
		log.Debug().Str("actor", from.URL).Msg("no followers, nothing to deliver")
		return nil
	}

	for batch := range slices.Chunk(inboxes, deliveryBatch) {
		if err := g.queue.Deliver(ctx, activity, batch, from.URL); err != nil {
			log.Error().Err(err).Int("count", len(batch)).Msg("failed to enqueue delivery job")
		}
	}
	return nil
}

// Unicast delivers an activity to a single inbox.
func (g *FedGatewayImpl) Unicast(ctx context.Context, activity ap.Activity, inbox string, from domain.Actor) error {
	return g.queue.Deliver(ctx, activity, []string{inbox}, from.URL)
}
