// The initialization package contains functions that set up required
// dependencies such as the SQLite databases and the task queue.
package initialization

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/utils"
)

// SetupDB creates the database, if it does not yet exist, and applies
// all remaining migrations.
func SetupDB(cfg *config.Configuration, d *sql.DB, folder, dbname string) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(d, &sqlite3.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create sqlite3 migration driver")
		d.Close()
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrations")
		return err
	}

	return nil
}

// OpenDB opens the main database with foreign keys enabled; the schema
// relies on ON DELETE CASCADE and sqlite keeps the pragma off by
// default.
func OpenDB(connString string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(connString, "?") {
		sep = "&"
	}
	d, err := sql.Open("sqlite3", connString+sep+"_foreign_keys=on")
	if err != nil {
		log.Fatal().Err(err).Str("connection string", connString).Msg("failed to open database")
	}
	return d, err
}

// InitQueue opens the tasks database and builds the backlite client
// on top of it.
func InitQueue(cfg *config.Configuration) (*backlite.Client, error) {
	tasksDB, err := sql.Open("sqlite3", cfg.TasksDbUrl)
	if err != nil {
		return nil, err
	}

	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              tasksDB,
		Logger:          slog.Default(),
		NumWorkers:      cfg.DeliveryWorkers,
		ReleaseAfter:    10 * time.Minute,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		return nil, err
	}

	if err = client.Install(); err != nil {
		return nil, err
	}
	return client, nil
}

// EnsureInstance creates the whole-instance actor on first boot: the
// identity this server signs shared-inbox deliveries with.
func EnsureInstance(ctx context.Context, d db.DB, cfg *config.Configuration) error {
	_, err := d.GetActorByURL(ctx, cfg.Url.String())
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	log.Info().Msg("creating instance actor")
	pub, priv, err := utils.GenerateKeysPem(cfg.RsaKeySize)
	if err != nil {
		return err
	}

	inbox := cfg.Url.JoinPath("inbox").String()
	_, err = d.CreateActor(ctx, domain.Actor{
		URL:            cfg.Url.String(),
		Username:       cfg.Name,
		InboxURL:       inbox,
		SharedInboxURL: inbox,
		OutboxURL:      cfg.Url.JoinPath("outbox").String(),
		FollowersURL:   cfg.Url.JoinPath("followers").String(),
		PublicKeyPem:   pub,
		PrivateKeyPem:  priv,
		Instance:       true,
	})
	return err
}
