// Package crawler walks remote ordered collections page by page. It is
// used to backfill a channel's videos and playlists after a follow is
// accepted.
package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/client"
	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/federation"
)

// OnPage receives the items of one page. It runs before the crawler
// advances, so a failing page stops the walk.
type OnPage func(ctx context.Context, items []json.RawMessage) error

// OnDone runs once after the walk, with the time the crawl started.
// Callers use it to sweep rows not touched since startedAt.
type OnDone func(ctx context.Context, startedAt time.Time) error

type Crawler struct {
	client *client.HttpClient
	cfg    *config.Configuration
}

func New(httpClient *client.HttpClient, cfg *config.Configuration) *Crawler {
	return &Crawler{client: httpClient, cfg: cfg}
}

// Crawl dereferences startURL as an ordered collection and walks its
// pages through the next links, calling onPage for each. The walk
// stops at the configured page ceiling no matter how many pages the
// remote advertises, and refuses to fetch pages pointing back at this
// host.
func (c *Crawler) Crawl(ctx context.Context, startURL string, onPage OnPage, onDone OnDone) error {
	startedAt := time.Now().UTC()

	start, err := url.Parse(startURL)
	if err != nil {
		return err
	}

	raw, err := c.client.Get(ctx, start)
	if err != nil {
		return err
	}

	var coll ap.Collection
	if err = json.Unmarshal(raw, &coll); err != nil {
		return fmt.Errorf("%w: collection %s: %v", federation.ErrMalformedObject, startURL, err)
	}

	page, err := c.resolvePage(ctx, coll.First)
	if err != nil {
		return err
	}

	for fetched := 1; page != nil; fetched++ {
		if err = onPage(ctx, page.OrderedItems); err != nil {
			return err
		}

		if page.Next == "" {
			break
		}
		if fetched >= c.cfg.CrawlPageLimit {
			log.Warn().Str("collection", startURL).Int("pages", fetched).Msg("page ceiling reached, stopping crawl")
			break
		}

		page, err = c.fetchPage(ctx, page.Next)
		if err != nil {
			return err
		}
	}

	if onDone == nil {
		return nil
	}
	return onDone(ctx, startedAt)
}

// resolvePage handles the two shapes of a collection's first property,
// a bare IRI or an inline page.
func (c *Crawler) resolvePage(ctx context.Context, first json.RawMessage) (*ap.CollectionPage, error) {
	if len(first) == 0 {
		return nil, nil
	}

	var iri string
	if err := json.Unmarshal(first, &iri); err == nil {
		return c.fetchPage(ctx, iri)
	}

	var page ap.CollectionPage
	if err := json.Unmarshal(first, &page); err != nil {
		return nil, fmt.Errorf("%w: collection page: %v", federation.ErrMalformedObject, err)
	}
	return &page, nil
}

func (c *Crawler) fetchPage(ctx context.Context, iri string) (*ap.CollectionPage, error) {
	u, err := url.Parse(iri)
	if err != nil {
		return nil, err
	}
	if u.Host == c.cfg.Url.Host {
		log.Warn().Str("page", iri).Msg("page points back at this host, stopping crawl")
		return nil, nil
	}

	raw, err := c.client.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	var page ap.CollectionPage
	if err = json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("%w: collection page %s: %v", federation.ErrMalformedObject, iri, err)
	}
	return &page, nil
}
