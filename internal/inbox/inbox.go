// Package inbox routes verified inbound activities to their handlers.
// The vocabulary is closed: the dispatch table is built once at
// startup and anything outside it is logged and dropped without error,
// a peer speaking a richer dialect is not a fault.
package inbox

import (
	"context"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/gateway"
	"github.com/estuaire/vidfed/internal/resolver"
)

type HandlerFunc func(ctx context.Context, a ap.Activity, target domain.Actor) error

type Dispatcher struct {
	db       db.DB
	gateway  gateway.FedGateway
	resolver *resolver.Resolver
	cfg      *config.Configuration
	handlers map[string]HandlerFunc
}

func New(d db.DB, gw gateway.FedGateway, res *resolver.Resolver, cfg *config.Configuration) *Dispatcher {
	dsp := &Dispatcher{
		db:       d,
		gateway:  gw,
		resolver: res,
		cfg:      cfg,
	}
	dsp.handlers = map[string]HandlerFunc{
		ap.FollowType:   dsp.handleFollow,
		ap.AcceptType:   dsp.handleAccept,
		ap.RejectType:   dsp.handleReject,
		ap.CreateType:   dsp.handleCreate,
		ap.UpdateType:   dsp.handleUpdate,
		ap.DeleteType:   dsp.handleDelete,
		ap.LikeType:     dsp.handleLike,
		ap.DislikeType:  dsp.handleDislike,
		ap.AnnounceType: dsp.handleAnnounce,
		ap.UndoType:     dsp.handleUndo,
		ap.ViewType:     dsp.handleView,
	}
	return dsp
}

// Dispatch routes an already authenticated activity. target is the
// local actor whose inbox received it; for the shared inbox that is
// the instance actor.
func (d *Dispatcher) Dispatch(ctx context.Context, a ap.Activity, target domain.Actor) error {
	handler, ok := d.handlers[a.Type]
	if !ok {
		log.Info().Str("type", a.Type).Str("id", a.ID).Msg("ignoring unsupported activity")
		return nil
	}

	log.Debug().Str("type", a.Type).Str("id", a.ID).Str("actor", a.Actor).Msg("processing activity")
	return handler(ctx, a, target)
}

func sameOrigin(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host == ub.Host
}
