package queue

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/estuaire/vidfed/internal/client"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/health"
)

var ctx = context.Background()

func testClient(t *testing.T) *client.HttpClient {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	keyId, err := url.Parse("https://tube.example/#main-key")
	if err != nil {
		t.Fatal(err)
	}

	c, err := client.New(nil, &http.Client{}, key, keyId)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDeliverProcessorRecordsOutcomes(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer healthy.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	tracker := health.New()
	q := &apQueueImpl{client: testClient(t), tracker: tracker}
	process := q.deliver()

	// One job carries the whole batch; a failing inbox errors the job
	// but must not stop delivery to the rest of the batch.
	body := []byte(`{"type":"Create"}`)
	job := DeliverJob{To: []string{failing.URL + "/inbox", healthy.URL + "/inbox"}, Body: body}
	if err := process(ctx, job); err == nil {
		t.Error("expected a batch with a failing inbox to error")
	}

	want := map[string]int{
		healthy.URL + "/inbox": domain.ScoreBonus,
		failing.URL + "/inbox": domain.ScorePenalty,
	}
	if diff := cmp.Diff(want, tracker.DrainAndReset()); diff != "" {
		t.Errorf("recorded outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchProcessorRunsTheResolver(t *testing.T) {
	var fetched []string
	q := &apQueueImpl{
		tracker: health.New(),
		fetchFn: func(_ context.Context, iri string) error {
			fetched = append(fetched, iri)
			return nil
		},
	}

	if err := q.fetch()(ctx, FetchJob{Iri: "https://peer.example/videos/1"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"https://peer.example/videos/1"}, fetched); diff != "" {
		t.Errorf("resolved IRIs mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchProcessorPropagatesResolverErrors(t *testing.T) {
	boom := errors.New("boom")
	q := &apQueueImpl{
		tracker: health.New(),
		fetchFn: func(context.Context, string) error { return boom },
	}

	if err := q.fetch()(ctx, FetchJob{Iri: "https://peer.example/videos/1"}); !errors.Is(err, boom) {
		t.Errorf("expected resolver error to surface, got %v", err)
	}
}
