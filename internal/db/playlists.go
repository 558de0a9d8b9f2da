package db

import (
	"context"
	"time"

	"github.com/estuaire/vidfed/internal/domain"
)

type Playlists interface {
	GetPlaylistByURL(ctx context.Context, url string) (domain.Playlist, error)
	CreatePlaylist(ctx context.Context, p domain.Playlist) (int64, error)
	UpdatePlaylist(ctx context.Context, p domain.Playlist) error
	DeletePlaylistByURL(ctx context.Context, url string) error
	TouchPlaylist(ctx context.Context, url string, at time.Time) error
}
