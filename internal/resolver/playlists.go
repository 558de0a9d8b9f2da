package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/federation"
	"github.com/estuaire/vidfed/internal/validate"
)

// GetOrCreatePlaylist mirrors GetOrCreateVideo for playlists.
func (r *Resolver) GetOrCreatePlaylist(ctx context.Context, iri string) (domain.Playlist, error) {
	p, err := r.db.GetPlaylistByURL(ctx, iri)
	if err == nil && !r.stale(p.LastRefreshedAt) {
		return p, nil
	}
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return domain.Playlist{}, err
	}
	known := err == nil

	var payload ap.PlaylistPayload
	if err = r.fetch(ctx, iri, &payload); err != nil {
		switch {
		case known && errors.Is(err, federation.ErrObjectGone):
			if derr := r.db.DeletePlaylistByURL(ctx, iri); derr != nil {
				return p, derr
			}
			return domain.Playlist{}, err
		case known && errors.Is(err, federation.ErrRemoteUnreachable):
			if terr := r.db.TouchPlaylist(ctx, iri, time.Now().UTC()); terr != nil {
				log.Error().Err(terr).Str("playlist", iri).Msg("failed to reset refresh timer")
			}
			return p, nil
		}
		return domain.Playlist{}, err
	}

	return r.UpsertPlaylist(ctx, payload)
}

// UpsertPlaylist persists a playlist payload; the element list is
// replaced wholesale.
func (r *Resolver) UpsertPlaylist(ctx context.Context, p ap.PlaylistPayload) (domain.Playlist, error) {
	if err := validate.Playlist(p); err != nil {
		return domain.Playlist{}, err
	}

	unlock := r.locks.Lock(p.ID)
	defer unlock()

	owner, err := r.attributedAccount(ctx, p.ID, p.AttributedTo)
	if err != nil {
		return domain.Playlist{}, err
	}

	playlist := domain.Playlist{
		URL:       p.ID,
		Name:      p.Name,
		OwnerID:   owner.ID,
		VideoURLs: p.OrderedItems,
	}

	existing, err := r.db.GetPlaylistByURL(ctx, p.ID)
	if err == nil {
		playlist.ID = existing.ID
		return playlist, r.db.UpdatePlaylist(ctx, playlist)
	}
	if !errors.Is(err, db.ErrNotFound) {
		return domain.Playlist{}, err
	}

	playlist.ID, err = r.db.CreatePlaylist(ctx, playlist)
	return playlist, err
}
