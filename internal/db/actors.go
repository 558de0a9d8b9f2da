package db

import (
	"context"
	"time"

	"github.com/estuaire/vidfed/internal/domain"
)

type Actors interface {
	GetActorByURL(ctx context.Context, url string) (domain.Actor, error)
	GetActorByID(ctx context.Context, id int64) (domain.Actor, error)
	CreateActor(ctx context.Context, a domain.Actor) (int64, error)
	UpdateActor(ctx context.Context, a domain.Actor) error
	// TombstoneActorByURL marks a remote actor deleted. Actors are never
	// hard-deleted; rows referencing them stay consistent.
	TombstoneActorByURL(ctx context.Context, url string) error
	// TouchActor resets the staleness clock without changing content,
	// used after a failed refresh so an unreachable peer does not cause
	// a refresh storm.
	TouchActor(ctx context.Context, url string, at time.Time) error
	GetPrivateKeyByActorURL(ctx context.Context, url string) (string, error)
}
