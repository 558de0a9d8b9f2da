package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/estuaire/vidfed/internal/domain"
)

func (d *dbImpl) GetCommentByURL(ctx context.Context, url string) (domain.Comment, error) {
	var c domain.Comment
	var created, refreshed int64
	err := d.q.QueryRowContext(ctx,
		`SELECT id, url, text, video_id, account_id, origin_comment_id,
			in_reply_to_comment_id, created_at, refreshed_at
		FROM comments WHERE url = ?`, url).
		Scan(&c.ID, &c.URL, &c.Text, &c.VideoID, &c.AccountID, &c.OriginCommentID,
			&c.InReplyToCommentID, &created, &refreshed)
	if err != nil {
		return c, fmt.Errorf("%w: comment %s", d.HandleError(err), url)
	}
	c.CreatedAt = time.Unix(created, 0).UTC()
	c.LastRefreshedAt = time.Unix(refreshed, 0).UTC()
	return c, nil
}

func (d *dbImpl) CreateComment(ctx context.Context, c domain.Comment) (int64, error) {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.LastRefreshedAt.IsZero() {
		c.LastRefreshedAt = now
	}
	res, err := d.q.ExecContext(ctx,
		`INSERT INTO comments (url, text, video_id, account_id, origin_comment_id,
			in_reply_to_comment_id, created_at, refreshed_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		c.URL, c.Text, c.VideoID, c.AccountID, c.OriginCommentID,
		c.InReplyToCommentID, c.CreatedAt.Unix(), c.LastRefreshedAt.Unix())
	if err != nil {
		return 0, d.HandleError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	// A thread root anchors the origin chain at itself.
	if c.OriginCommentID == 0 && c.InReplyToCommentID == 0 {
		_, err = d.q.ExecContext(ctx,
			`UPDATE comments SET origin_comment_id = ? WHERE id = ?`, id, id)
		if err != nil {
			return 0, d.HandleError(err)
		}
	}
	return id, nil
}

func (d *dbImpl) DeleteCommentByURL(ctx context.Context, url string) error {
	_, err := d.q.ExecContext(ctx, `DELETE FROM comments WHERE url = ?`, url)
	return d.HandleError(err)
}

func (d *dbImpl) TouchComment(ctx context.Context, url string, at time.Time) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE comments SET refreshed_at = ? WHERE url = ?`, at.Unix(), url)
	return d.HandleError(err)
}
