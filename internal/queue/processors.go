package queue

import (
	"context"
	"errors"
	"net/url"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/health"
)

func (q *apQueueImpl) register() {
	fetchQueue := backlite.NewQueue[FetchJob](q.fetch())
	deliveryQueue := backlite.NewQueue[DeliverJob](q.deliver())

	q.queues.Register(fetchQueue)
	q.queues.Register(deliveryQueue)
}

func (q *apQueueImpl) fetch() func(context.Context, FetchJob) error {
	return func(ctx context.Context, task FetchJob) error {
		log.Debug().Str("iri", task.Iri).Msg("fetching IRI")

		err := q.fetchFn(ctx, task.Iri)
		if err != nil {
			log.Error().Err(err).Str("iri", task.Iri).Msg("fetch failed")
			return err
		}

		if task.Next == nil {
			return nil
		}

		_, err = backlite.FromContext(ctx).Add(task.Next).Save()
		return err
	}
}

func (q *apQueueImpl) deliver() func(context.Context, DeliverJob) error {
	return func(ctx context.Context, dj DeliverJob) error {
		var from *url.URL
		var err error
		if dj.From != "" {
			from, err = url.Parse(dj.From)
			if err != nil {
				return err
			}
		}

		log.Debug().Int("inboxes", len(dj.To)).Msg("delivering activity batch")

		var errs []error
		for _, inbox := range dj.To {
			to, err := url.Parse(inbox)
			if err != nil {
				errs = append(errs, err)
				continue
			}

			if from == nil {
				err = q.client.Deliver(ctx, dj.Body, to)
			} else {
				err = q.client.DeliverAs(ctx, dj.Body, to, from)
			}
			if err != nil {
				q.tracker.Record(inbox, health.Failure)
				errs = append(errs, err)
				continue
			}
			q.tracker.Record(inbox, health.Success)
		}
		if err = errors.Join(errs...); err != nil {
			return err
		}

		if dj.Next == nil {
			return nil
		}

		_, err = backlite.FromContext(ctx).Add(dj.Next).Save()
		return err
	}
}
