// Package gateway is the boundary between this instance and its peers:
// it authenticates inbound requests, resolves audiences and fans
// activities out to follower inboxes through the delivery queue.
package gateway

import (
	"context"
	"crypto"
	"net/http"

	"github.com/karlseguin/ccache/v3"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/client"
	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/queue"
)

type FedGateway interface {
	Verify(ctx context.Context, r *http.Request, body []byte) error

	Fetch(iri string) error

	Broadcast(ctx context.Context, activity ap.Activity, from domain.Actor) error
	Unicast(ctx context.Context, activity ap.Activity, inbox string, from domain.Actor) error

	FollowRemoteActor(ctx context.Context, follower, target domain.Actor) error
	UnfollowRemoteActor(ctx context.Context, follower, target domain.Actor) error
	AcceptFollow(ctx context.Context, local domain.Actor, follow ap.Activity, inbox string) error
	RejectFollow(ctx context.Context, local domain.Actor, follow ap.Activity, inbox string) error

	PublishVideo(ctx context.Context, video domain.Video, author domain.Actor) error
	PublishVideoUpdate(ctx context.Context, video domain.Video, author domain.Actor) error
	RetractVideo(ctx context.Context, video domain.Video, author domain.Actor) error
	AnnounceVideo(ctx context.Context, video domain.Video, by domain.Actor) error
}

// ActorResolver dereferences an actor IRI, persisting it on first
// sight. The gateway uses it to find the owner of a signing key.
type ActorResolver interface {
	GetOrCreateActor(ctx context.Context, iri string) (domain.Actor, error)
}

type FedGatewayImpl struct {
	db       db.DB
	client   *client.HttpClient
	queue    queue.ApQueue
	actors   ActorResolver
	cfg      *config.Configuration
	keyCache *ccache.Cache[crypto.PublicKey]
}

func New(d db.DB, httpClient *client.HttpClient, q queue.ApQueue, actors ActorResolver, cfg *config.Configuration) FedGateway {
	return &FedGatewayImpl{
		db:       d,
		client:   httpClient,
		queue:    q,
		actors:   actors,
		cfg:      cfg,
		keyCache: ccache.New(ccache.Configure[crypto.PublicKey]()),
	}
}

// Fetch schedules a background dereference of iri.
func (g *FedGatewayImpl) Fetch(iri string) error {
	return g.queue.Fetch(iri)
}
