// Package web exposes the federation HTTP surface: the shared inbox,
// per-actor inboxes and the actor documents peers dereference to find
// our inboxes and keys.
package web

import (
	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/gateway"
	"github.com/estuaire/vidfed/internal/inbox"
)

type Handler struct {
	Config     *config.Configuration
	db         db.DB
	gateway    gateway.FedGateway
	dispatcher *inbox.Dispatcher
}

func New(cfg *config.Configuration, d db.DB, gw gateway.FedGateway, dispatcher *inbox.Dispatcher) Handler {
	return Handler{
		Config:     cfg,
		db:         d,
		gateway:    gw,
		dispatcher: dispatcher,
	}
}
