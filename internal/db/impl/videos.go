package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/estuaire/vidfed/internal/domain"
)

const videoColumns = `id, url, name, description, account_id, visibility, likes, dislikes, created_at, refreshed_at`

func (d *dbImpl) scanVideo(row interface{ Scan(...any) error }) (domain.Video, error) {
	var v domain.Video
	var created, refreshed int64
	err := row.Scan(&v.ID, &v.URL, &v.Name, &v.Description, &v.AccountID,
		&v.Visibility, &v.Likes, &v.Dislikes, &created, &refreshed)
	if err != nil {
		return v, d.HandleError(err)
	}
	v.CreatedAt = time.Unix(created, 0).UTC()
	v.LastRefreshedAt = time.Unix(refreshed, 0).UTC()
	return v, nil
}

func (d *dbImpl) GetVideoByURL(ctx context.Context, url string) (domain.Video, error) {
	row := d.q.QueryRowContext(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE url = ?`, url)
	v, err := d.scanVideo(row)
	if err != nil {
		return v, fmt.Errorf("%w: video %s", err, url)
	}
	return v, nil
}

func (d *dbImpl) GetVideoByID(ctx context.Context, id int64) (domain.Video, error) {
	row := d.q.QueryRowContext(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = ?`, id)
	return d.scanVideo(row)
}

func (d *dbImpl) CreateVideo(ctx context.Context, v domain.Video) (int64, error) {
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	if v.LastRefreshedAt.IsZero() {
		v.LastRefreshedAt = now
	}
	if v.Visibility == "" {
		v.Visibility = domain.VisibilityPublic
	}
	res, err := d.q.ExecContext(ctx,
		`INSERT INTO videos (url, name, description, account_id, visibility, likes, dislikes, created_at, refreshed_at)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		v.URL, v.Name, v.Description, v.AccountID, v.Visibility, v.Likes, v.Dislikes,
		v.CreatedAt.Unix(), v.LastRefreshedAt.Unix())
	if err != nil {
		return 0, d.HandleError(err)
	}
	return res.LastInsertId()
}

func (d *dbImpl) UpdateVideo(ctx context.Context, v domain.Video) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE videos SET name = ?, description = ?, visibility = ?, refreshed_at = ? WHERE url = ?`,
		v.Name, v.Description, v.Visibility, time.Now().UTC().Unix(), v.URL)
	return d.HandleError(err)
}

func (d *dbImpl) DeleteVideoByURL(ctx context.Context, url string) error {
	_, err := d.q.ExecContext(ctx, `DELETE FROM videos WHERE url = ?`, url)
	return d.HandleError(err)
}

func (d *dbImpl) TouchVideo(ctx context.Context, url string, at time.Time) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE videos SET refreshed_at = ? WHERE url = ?`, at.Unix(), url)
	return d.HandleError(err)
}

func (d *dbImpl) AddVideoRates(ctx context.Context, videoID int64, likes, dislikes int) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE videos SET likes = MAX(likes + ?, 0), dislikes = MAX(dislikes + ?, 0)
		WHERE id = ?`,
		likes, dislikes, videoID)
	return d.HandleError(err)
}

func (d *dbImpl) GetRate(ctx context.Context, actorID, videoID int64) (domain.Rate, error) {
	var r domain.Rate
	var created int64
	err := d.q.QueryRowContext(ctx,
		`SELECT id, url, actor_id, video_id, type, created_at FROM rates
		WHERE actor_id = ? AND video_id = ?`,
		actorID, videoID).
		Scan(&r.ID, &r.URL, &r.ActorID, &r.VideoID, &r.Type, &created)
	if err != nil {
		return r, d.HandleError(err)
	}
	r.CreatedAt = time.Unix(created, 0).UTC()
	return r, nil
}

func (d *dbImpl) CreateRate(ctx context.Context, r domain.Rate) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := d.q.ExecContext(ctx,
		`INSERT INTO rates (url, actor_id, video_id, type, created_at) VALUES (?,?,?,?,?)`,
		r.URL, r.ActorID, r.VideoID, r.Type, r.CreatedAt.Unix())
	return d.HandleError(err)
}

func (d *dbImpl) DeleteRate(ctx context.Context, id int64) error {
	_, err := d.q.ExecContext(ctx, `DELETE FROM rates WHERE id = ?`, id)
	return d.HandleError(err)
}

func (d *dbImpl) GetShareByURL(ctx context.Context, url string) (domain.Share, error) {
	var s domain.Share
	var created, updated int64
	err := d.q.QueryRowContext(ctx,
		`SELECT id, url, actor_id, video_id, created_at, updated_at FROM shares
		WHERE url = ?`, url).
		Scan(&s.ID, &s.URL, &s.ActorID, &s.VideoID, &created, &updated)
	if err != nil {
		return s, d.HandleError(err)
	}
	s.CreatedAt = time.Unix(created, 0).UTC()
	s.UpdatedAt = time.Unix(updated, 0).UTC()
	return s, nil
}

func (d *dbImpl) CreateShare(ctx context.Context, s domain.Share) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}
	_, err := d.q.ExecContext(ctx,
		`INSERT INTO shares (url, actor_id, video_id, created_at, updated_at) VALUES (?,?,?,?,?)`,
		s.URL, s.ActorID, s.VideoID, s.CreatedAt.Unix(), s.UpdatedAt.Unix())
	return d.HandleError(err)
}

func (d *dbImpl) TouchShare(ctx context.Context, id int64, at time.Time) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE shares SET updated_at = ? WHERE id = ?`, at.Unix(), id)
	return d.HandleError(err)
}

func (d *dbImpl) DeleteShareByURL(ctx context.Context, url string) error {
	_, err := d.q.ExecContext(ctx, `DELETE FROM shares WHERE url = ?`, url)
	return d.HandleError(err)
}

func (d *dbImpl) DeleteSharesOlderThan(ctx context.Context, videoID int64, t time.Time) (int64, error) {
	res, err := d.q.ExecContext(ctx,
		`DELETE FROM shares WHERE video_id = ? AND updated_at < ?`, videoID, t.Unix())
	if err != nil {
		return 0, d.HandleError(err)
	}
	return res.RowsAffected()
}
