package resolver

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
)

// Resolve dereferences an arbitrary IRI and persists whatever it turns
// out to be. This is the entry point of the background fetch queue; an
// ordered collection is crawled page by page, anything else lands in
// the matching getOrCreate path.
func (r *Resolver) Resolve(ctx context.Context, iri string) error {
	return r.resolveObject(ctx, iri, true)
}

func (r *Resolver) resolveObject(ctx context.Context, iri string, allowCollection bool) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := r.fetch(ctx, iri, &probe); err != nil {
		return err
	}

	switch probe.Type {
	case ap.PersonType, ap.GroupType, ap.ApplicationType:
		_, err := r.GetOrCreateActor(ctx, iri)
		return err
	case ap.VideoType:
		_, err := r.GetOrCreateVideo(ctx, iri)
		return err
	case ap.NoteType:
		_, err := r.ResolveThread(ctx, iri)
		return err
	case ap.PlaylistType:
		_, err := r.GetOrCreatePlaylist(ctx, iri)
		return err
	case ap.OrderedCollectionType:
		if !allowCollection {
			log.Warn().Str("iri", iri).Msg("refusing to crawl nested collection")
			return nil
		}
		return r.crawlCollection(ctx, iri)
	default:
		log.Info().Str("iri", iri).Str("type", probe.Type).Msg("ignoring object of unsupported type")
		return nil
	}
}

func (r *Resolver) crawlCollection(ctx context.Context, iri string) error {
	log.Info().Str("collection", iri).Msg("crawling collection")
	return r.crawler.Crawl(ctx, iri, r.resolvePage, nil)
}

func (r *Resolver) resolvePage(ctx context.Context, items []json.RawMessage) error {
	for _, item := range items {
		id, err := ap.RawID(item)
		if err != nil {
			log.Warn().Err(err).Msg("skipping unidentifiable collection item")
			continue
		}
		if err = r.resolveObject(ctx, id, false); err != nil {
			log.Error().Err(err).Str("item", id).Msg("failed to resolve collection item")
		}
	}
	return nil
}
