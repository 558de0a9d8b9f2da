package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/estuaire/vidfed/internal/domain"
)

// Playlist elements are stored denormalized as a JSON array of video
// URLs; the element set is always replaced wholesale on refresh.

func (d *dbImpl) GetPlaylistByURL(ctx context.Context, url string) (domain.Playlist, error) {
	var p domain.Playlist
	var created, refreshed int64
	var elements string
	err := d.q.QueryRowContext(ctx,
		`SELECT id, url, name, owner_id, elements, created_at, refreshed_at
		FROM playlists WHERE url = ?`, url).
		Scan(&p.ID, &p.URL, &p.Name, &p.OwnerID, &elements, &created, &refreshed)
	if err != nil {
		return p, fmt.Errorf("%w: playlist %s", d.HandleError(err), url)
	}
	if elements != "" {
		if err := json.Unmarshal([]byte(elements), &p.VideoURLs); err != nil {
			return p, err
		}
	}
	p.CreatedAt = time.Unix(created, 0).UTC()
	p.LastRefreshedAt = time.Unix(refreshed, 0).UTC()
	return p, nil
}

func (d *dbImpl) CreatePlaylist(ctx context.Context, p domain.Playlist) (int64, error) {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.LastRefreshedAt.IsZero() {
		p.LastRefreshedAt = now
	}
	elements, err := json.Marshal(p.VideoURLs)
	if err != nil {
		return 0, err
	}
	res, err := d.q.ExecContext(ctx,
		`INSERT INTO playlists (url, name, owner_id, elements, created_at, refreshed_at)
		VALUES (?,?,?,?,?,?)`,
		p.URL, p.Name, p.OwnerID, string(elements), p.CreatedAt.Unix(), p.LastRefreshedAt.Unix())
	if err != nil {
		return 0, d.HandleError(err)
	}
	return res.LastInsertId()
}

func (d *dbImpl) UpdatePlaylist(ctx context.Context, p domain.Playlist) error {
	elements, err := json.Marshal(p.VideoURLs)
	if err != nil {
		return err
	}
	_, err = d.q.ExecContext(ctx,
		`UPDATE playlists SET name = ?, elements = ?, refreshed_at = ? WHERE url = ?`,
		p.Name, string(elements), time.Now().UTC().Unix(), p.URL)
	return d.HandleError(err)
}

func (d *dbImpl) DeletePlaylistByURL(ctx context.Context, url string) error {
	_, err := d.q.ExecContext(ctx, `DELETE FROM playlists WHERE url = ?`, url)
	return d.HandleError(err)
}

func (d *dbImpl) TouchPlaylist(ctx context.Context, url string, at time.Time) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE playlists SET refreshed_at = ? WHERE url = ?`, at.Unix(), url)
	return d.HandleError(err)
}
