package db

import (
	"context"

	"github.com/estuaire/vidfed/internal/domain"
)

type Follows interface {
	GetFollowByURL(ctx context.Context, url string) (domain.Follow, error)
	// GetFollow looks up the edge by its natural key. At most one
	// non-rejected edge exists per pair; rejected edges are deleted, not
	// kept.
	GetFollow(ctx context.Context, actorID, targetID int64) (domain.Follow, error)
	CreateFollow(ctx context.Context, f domain.Follow) (int64, error)
	UpdateFollowState(ctx context.Context, id int64, state domain.FollowState) error
	// SetFollowURL backfills the activity URL on an edge created before
	// the URL was known.
	SetFollowURL(ctx context.Context, id int64, url string) error
	DeleteFollow(ctx context.Context, id int64) error
	// GetFollowerActors returns the accepted followers of the target.
	GetFollowerActors(ctx context.Context, targetID int64) ([]domain.Actor, error)
	// ApplyInboxScores adds the drained health deltas, keyed by inbox
	// URL, to the scores of the follows pointing at those inboxes,
	// clamping at the configured maximum.
	ApplyInboxScores(ctx context.Context, scores map[string]int) error
	// PruneDeadFollows removes follows whose score has decayed to zero
	// or below and reports how many were dropped.
	PruneDeadFollows(ctx context.Context) (int64, error)
}
