package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/estuaire/vidfed/internal/domain"
)

const actorColumns = `id, url, username, inbox, shared_inbox, outbox, followers,
	public_key, private_key, host, instance, tombstoned, created_at, refreshed_at`

func (d *dbImpl) scanActor(row interface{ Scan(...any) error }) (domain.Actor, error) {
	var a domain.Actor
	var created, refreshed int64
	err := row.Scan(&a.ID, &a.URL, &a.Username, &a.InboxURL, &a.SharedInboxURL,
		&a.OutboxURL, &a.FollowersURL, &a.PublicKeyPem, &a.PrivateKeyPem,
		&a.Host, &a.Instance, &a.Tombstoned, &created, &refreshed)
	if err != nil {
		return a, d.HandleError(err)
	}
	a.CreatedAt = time.Unix(created, 0).UTC()
	a.LastRefreshedAt = time.Unix(refreshed, 0).UTC()
	return a, nil
}

func (d *dbImpl) GetActorByURL(ctx context.Context, url string) (domain.Actor, error) {
	row := d.q.QueryRowContext(ctx,
		`SELECT `+actorColumns+` FROM actors WHERE url = ?`, url)
	a, err := d.scanActor(row)
	if err != nil {
		return a, fmt.Errorf("%w: actor %s", err, url)
	}
	return a, nil
}

func (d *dbImpl) GetActorByID(ctx context.Context, id int64) (domain.Actor, error) {
	row := d.q.QueryRowContext(ctx,
		`SELECT `+actorColumns+` FROM actors WHERE id = ?`, id)
	return d.scanActor(row)
}

func (d *dbImpl) CreateActor(ctx context.Context, a domain.Actor) (int64, error) {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.LastRefreshedAt.IsZero() {
		a.LastRefreshedAt = now
	}
	res, err := d.q.ExecContext(ctx,
		`INSERT INTO actors (url, username, inbox, shared_inbox, outbox, followers,
			public_key, private_key, host, instance, tombstoned, created_at, refreshed_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		a.URL, a.Username, a.InboxURL, a.SharedInboxURL, a.OutboxURL, a.FollowersURL,
		a.PublicKeyPem, a.PrivateKeyPem, a.Host, a.Instance, a.Tombstoned,
		a.CreatedAt.Unix(), a.LastRefreshedAt.Unix())
	if err != nil {
		return 0, d.HandleError(err)
	}
	return res.LastInsertId()
}

func (d *dbImpl) UpdateActor(ctx context.Context, a domain.Actor) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE actors SET username = ?, inbox = ?, shared_inbox = ?, outbox = ?,
			followers = ?, public_key = ?, refreshed_at = ? WHERE url = ?`,
		a.Username, a.InboxURL, a.SharedInboxURL, a.OutboxURL, a.FollowersURL,
		a.PublicKeyPem, time.Now().UTC().Unix(), a.URL)
	return d.HandleError(err)
}

func (d *dbImpl) TombstoneActorByURL(ctx context.Context, url string) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE actors SET tombstoned = TRUE WHERE url = ?`, url)
	return d.HandleError(err)
}

func (d *dbImpl) TouchActor(ctx context.Context, url string, at time.Time) error {
	_, err := d.q.ExecContext(ctx,
		`UPDATE actors SET refreshed_at = ? WHERE url = ?`, at.Unix(), url)
	return d.HandleError(err)
}

func (d *dbImpl) GetPrivateKeyByActorURL(ctx context.Context, url string) (string, error) {
	var key string
	err := d.q.QueryRowContext(ctx,
		`SELECT private_key FROM actors WHERE url = ? AND host = ''`, url).Scan(&key)
	if err != nil {
		return "", fmt.Errorf("%w: private key for %s", d.HandleError(err), url)
	}
	return key, nil
}
