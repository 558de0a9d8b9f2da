// Package queue runs the background task queues: outbound activity
// delivery and deferred object fetches. Jobs survive restarts, they
// are persisted in the tasks database by backlite.
package queue

import (
	"context"
	"encoding/json"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/client"
	"github.com/estuaire/vidfed/internal/health"
)

type ApQueue interface {
	Fetch(iri string) error
	Deliver(ctx context.Context, activity ap.Activity, inboxes []string, from string) error
}

// FetchFunc dereferences an IRI and persists whatever object it
// resolves to. Wired to the object resolver at construction time.
type FetchFunc func(ctx context.Context, iri string) error

type apQueueImpl struct {
	queues  *backlite.Client
	client  *client.HttpClient
	tracker *health.Tracker
	fetchFn FetchFunc
}

func New(ctx context.Context, httpClient *client.HttpClient, blClient *backlite.Client, tracker *health.Tracker, fetchFn FetchFunc) ApQueue {
	q := &apQueueImpl{
		queues:  blClient,
		client:  httpClient,
		tracker: tracker,
		fetchFn: fetchFn,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *apQueueImpl) Fetch(iri string) error {
	log.Debug().Str("iri", iri).Msg("enqueing fetch task")
	task := FetchJob{
		Iri: iri,
	}
	_, err := q.queues.Add(task).Save()
	return err
}

// Deliver enqueues one job for the whole inbox batch, serializing the
// activity a single time.
func (q *apQueueImpl) Deliver(ctx context.Context, activity ap.Activity, inboxes []string, from string) error {
	if len(inboxes) == 0 {
		return nil
	}

	body, err := json.Marshal(activity)
	if err != nil {
		return err
	}

	task := DeliverJob{
		To:   inboxes,
		From: from,
		Body: body,
	}

	_, err = q.queues.Add(task).Save()
	return err
}
