package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	FetchQueue    = "Fetch"
	DeliveryQueue = "Delivery"
)

type FetchJob struct {
	Iri  string
	Next backlite.Task
}

func (j FetchJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        FetchQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}

// DeliverJob carries one pre-serialized activity body to a batch of
// inboxes. The body is marshaled once at enqueue time, not per
// destination.
type DeliverJob struct {
	To   []string
	From string
	Body []byte
	Next backlite.Task
}

func (j DeliverJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        DeliveryQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
