package crawler

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/estuaire/vidfed/internal/client"
	"github.com/estuaire/vidfed/internal/config"
)

var ctx = context.Background()

func testCrawler(t *testing.T, pageLimit int) *Crawler {
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

	u, err := url.Parse("https://tube.example")
	if err != nil {
		t.Fatal(err)
	}
	return New(c, &config.Configuration{Domain: "tube.example", Url: u, CrawlPageLimit: pageLimit})
}

func collectItems(pages *[]int) OnPage {
	return func(_ context.Context, items []json.RawMessage) error {
		*pages = append(*pages, len(items))
		return nil
	}
}

func TestCrawlWalksNextLinks(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/outbox", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"type":"OrderedCollection","totalItems":5,"first":%q}`,
			srv.URL+"/outbox", srv.URL+"/outbox/page/1")
	})
	mux.HandleFunc("/outbox/page/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"type":"OrderedCollectionPage","orderedItems":["a","b","c"],"next":%q}`,
			srv.URL+"/outbox/page/1", srv.URL+"/outbox/page/2")
	})
	mux.HandleFunc("/outbox/page/2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"type":"OrderedCollectionPage","orderedItems":["d","e"]}`,
			srv.URL+"/outbox/page/2")
	})

	var pages []int
	var doneAt time.Time
	onDone := func(_ context.Context, startedAt time.Time) error {
		doneAt = startedAt
		return nil
	}

	before := time.Now().UTC()
	err := testCrawler(t, 10).Crawl(ctx, srv.URL+"/outbox", collectItems(&pages), onDone)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]int{3, 2}, pages); diff != "" {
		t.Errorf("page sizes mismatch (-want +got):\n%s", diff)
	}
	if doneAt.IsZero() || doneAt.Before(before) {
		t.Errorf("onDone got start time %v, want at or after %v", doneAt, before)
	}
}

func TestCrawlStopsAtThePageCeiling(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// The remote advertises next links forever.
	mux.HandleFunc("/outbox", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"type":"OrderedCollection","first":%q}`,
			srv.URL+"/outbox", srv.URL+"/page/1")
	})
	mux.HandleFunc("/page/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"type":"OrderedCollectionPage","orderedItems":["x"],"next":%q}`,
			srv.URL+r.URL.Path, srv.URL+r.URL.Path+"0")
	})

	var pages []int
	if err := testCrawler(t, 3).Crawl(ctx, srv.URL+"/outbox", collectItems(&pages), nil); err != nil {
		t.Fatal(err)
	}
	if len(pages) != 3 {
		t.Errorf("crawled %d pages, want 3", len(pages))
	}
}

func TestCrawlRefusesPagesOnThisHost(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/outbox", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"type":"OrderedCollection","first":%q}`,
			srv.URL+"/outbox", srv.URL+"/page/1")
	})
	mux.HandleFunc("/page/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"type":"OrderedCollectionPage","orderedItems":["a"],"next":"https://tube.example/page/2"}`,
			srv.URL+"/page/1")
	})

	var pages []int
	if err := testCrawler(t, 10).Crawl(ctx, srv.URL+"/outbox", collectItems(&pages), nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1}, pages); diff != "" {
		t.Errorf("expected the walk to stop before the loopback page (-want +got):\n%s", diff)
	}
}

func TestCrawlAcceptsAnInlineFirstPage(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/outbox", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"type":"OrderedCollection","first":{"id":%q,"type":"OrderedCollectionPage","orderedItems":["a","b"]}}`,
			srv.URL+"/outbox", srv.URL+"/outbox/page/1")
	})

	var pages []int
	if err := testCrawler(t, 10).Crawl(ctx, srv.URL+"/outbox", collectItems(&pages), nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{2}, pages); diff != "" {
		t.Errorf("inline first page mismatch (-want +got):\n%s", diff)
	}
}
