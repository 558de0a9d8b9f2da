// Package resolver turns remote IRIs into persisted rows. Each
// resolution holds a per-IRI lock so concurrent deliveries mentioning
// the same object dereference it once, and cached copies are refreshed
// when they go stale.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"codeberg.org/gruf/go-mutexes"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/client"
	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/crawler"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/federation"
)

type Resolver struct {
	db      db.DB
	client  *client.HttpClient
	cfg     *config.Configuration
	crawler *crawler.Crawler
	locks   *mutexes.MutexMap
}

func New(d db.DB, httpClient *client.HttpClient, cfg *config.Configuration) *Resolver {
	locks := mutexes.MutexMap{}
	return &Resolver{
		db:      d,
		client:  httpClient,
		cfg:     cfg,
		crawler: crawler.New(httpClient, cfg),
		locks:   &locks,
	}
}

func (r *Resolver) stale(refreshedAt time.Time) bool {
	return time.Since(refreshedAt) >= r.cfg.RefreshInterval
}

// fetch dereferences iri and decodes it into out, rejecting payloads
// whose id does not match the IRI they were fetched from. Tombstones
// surface as ErrObjectGone.
func (r *Resolver) fetch(ctx context.Context, iri string, out any) error {
	u, err := url.Parse(iri)
	if err != nil {
		return err
	}

	raw, err := r.client.Get(ctx, u)
	if err != nil {
		return err
	}

	var probe struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	if err = json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: %s: %v", federation.ErrMalformedObject, iri, err)
	}
	if probe.Type == ap.TombstoneType {
		return fmt.Errorf("%w: %s", federation.ErrObjectGone, iri)
	}
	if probe.ID != iri {
		return fmt.Errorf("%w: %s claims id %q", federation.ErrMalformedObject, iri, probe.ID)
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", federation.ErrMalformedObject, iri, err)
	}
	return nil
}

// sameOrigin reports whether two IRIs live on the same host. Remote
// objects may only attribute themselves to actors of their own origin.
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
