package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/estuaire/vidfed/internal/domain"
)

const followColumns = `id, url, actor_id, target_id, state, score, created_at`

func (d *dbImpl) scanFollow(row interface{ Scan(...any) error }) (domain.Follow, error) {
	var f domain.Follow
	var created int64
	err := row.Scan(&f.ID, &f.URL, &f.ActorID, &f.TargetID, &f.State, &f.Score, &created)
	if err != nil {
		return f, d.HandleError(err)
	}
	f.CreatedAt = time.Unix(created, 0).UTC()
	return f, nil
}

func (d *dbImpl) GetFollowByURL(ctx context.Context, url string) (domain.Follow, error) {
	row := d.q.QueryRowContext(ctx,
		`SELECT `+followColumns+` FROM follows WHERE url = ?`, url)
	f, err := d.scanFollow(row)
	if err != nil {
		return f, fmt.Errorf("%w: follow %s", err, url)
	}
	return f, nil
}

func (d *dbImpl) GetFollow(ctx context.Context, actorID, targetID int64) (domain.Follow, error) {
	row := d.q.QueryRowContext(ctx,
		`SELECT `+followColumns+` FROM follows WHERE actor_id = ? AND target_id = ?`,
		actorID, targetID)
	return d.scanFollow(row)
}

func (d *dbImpl) CreateFollow(ctx context.Context, f domain.Follow) (int64, error) {
	if f.Score == 0 {
		f.Score = domain.ScoreBase
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	res, err := d.q.ExecContext(ctx,
		`INSERT INTO follows (url, actor_id, target_id, state, score, created_at)
		VALUES (?,?,?,?,?,?)`,
		f.URL, f.ActorID, f.TargetID, f.State, f.Score, f.CreatedAt.Unix())
	if err != nil {
		return 0, d.HandleError(err)
	}
	return res.LastInsertId()
}

func (d *dbImpl) UpdateFollowState(ctx context.Context, id int64, state domain.FollowState) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE follows SET state = ? WHERE id = ?`, state, id)
	return d.HandleError(err)
}

func (d *dbImpl) SetFollowURL(ctx context.Context, id int64, url string) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE follows SET url = ? WHERE id = ? AND url = ''`, url, id)
	return d.HandleError(err)
}

func (d *dbImpl) DeleteFollow(ctx context.Context, id int64) error {
	_, err := d.q.ExecContext(ctx, `DELETE FROM follows WHERE id = ?`, id)
	return d.HandleError(err)
}

func (d *dbImpl) GetFollowerActors(ctx context.Context, targetID int64) ([]domain.Actor, error) {
	rows, err := d.q.QueryContext(ctx,
		`SELECT `+actorColumnsPrefixed+` FROM actors a
		JOIN follows f ON f.actor_id = a.id
		WHERE f.target_id = ? AND f.state = ?`,
		targetID, domain.FollowAccepted)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var actors []domain.Actor
	for rows.Next() {
		a, err := d.scanActor(rows)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	return actors, d.HandleError(rows.Err())
}

const actorColumnsPrefixed = `a.id, a.url, a.username, a.inbox, a.shared_inbox, a.outbox,
	a.followers, a.public_key, a.private_key, a.host, a.instance, a.tombstoned,
	a.created_at, a.refreshed_at`

// ApplyInboxScores matches drained deltas against the inbox each follow
// actually delivers to: the follower's shared inbox when advertised,
// its personal inbox otherwise.
func (d *dbImpl) ApplyInboxScores(ctx context.Context, scores map[string]int) error {
	for inbox, delta := range scores {
		_, err := d.q.ExecContext(ctx,
			`UPDATE follows SET score = MIN(score + ?, ?)
			WHERE actor_id IN (
				SELECT id FROM actors
				WHERE (shared_inbox != '' AND shared_inbox = ?)
					OR (shared_inbox = '' AND inbox = ?)
			)`,
			delta, domain.ScoreMax, inbox, inbox)
		if err != nil {
			return d.HandleError(err)
		}
	}
	return nil
}

func (d *dbImpl) PruneDeadFollows(ctx context.Context) (int64, error) {
	res, err := d.q.ExecContext(ctx, `DELETE FROM follows WHERE score <= 0`)
	if err != nil {
		return 0, d.HandleError(err)
	}
	return res.RowsAffected()
}
