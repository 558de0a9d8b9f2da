package gateway

import (
	"bytes"
	"context"
	"crypto"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"code.superseriousbusiness.org/httpsig"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/federation"
	mock_db "github.com/estuaire/vidfed/internal/mocks"
	"github.com/estuaire/vidfed/internal/utils"
)

var ctx = context.Background()

// delivery records one enqueued job: the batch of inboxes it targets
// and the audience fields of the activity it carries.
type delivery struct {
	Type    string
	Inboxes []string
	From    string
	To      []string
	Cc      []string
}

type stubQueue struct {
	mu         sync.Mutex
	deliveries []delivery
	fetches    []string
}

func (s *stubQueue) Fetch(iri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches = append(s.fetches, iri)
	return nil
}

func (s *stubQueue) Deliver(_ context.Context, activity ap.Activity, inboxes []string, from string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries = append(s.deliveries, delivery{Type: activity.Type, Inboxes: inboxes, From: from, To: activity.To, Cc: activity.Cc})
	return nil
}

type stubActors struct {
	actor domain.Actor
	err   error
}

func (s *stubActors) GetOrCreateActor(context.Context, string) (domain.Actor, error) {
	return s.actor, s.err
}

func testConfig(t *testing.T) *config.Configuration {
	t.Helper()
	u, err := url.Parse("https://tube.example")
	if err != nil {
		t.Fatal(err)
	}
	return &config.Configuration{Domain: "tube.example", Url: u}
}

func signedRequest(t *testing.T, key crypto.PrivateKey, keyId string, body []byte) *http.Request {
	t.Helper()

	r := httptest.NewRequest("POST", "https://tube.example/inbox", bytes.NewReader(body))
	r.Header.Set("Date", "Mon, 02 Jan 2006 15:04:05 GMT")
	r.Header.Set("Host", r.Host)

	prefs := []httpsig.Algorithm{httpsig.RSA_SHA256}
	headers := []string{httpsig.RequestTarget, "date", "host", "digest"}
	signer, _, err := httpsig.NewSigner(prefs, httpsig.DigestSha256, headers, httpsig.Signature, 3600)
	if err != nil {
		t.Fatal(err)
	}
	if err = signer.SignRequest(key, keyId, r, body); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestCollectInboxes(t *testing.T) {
	followers := []domain.Actor{
		{URL: "https://a.example/u/1", InboxURL: "https://a.example/u/1/inbox", SharedInboxURL: "https://a.example/inbox"},
		{URL: "https://a.example/u/2", InboxURL: "https://a.example/u/2/inbox", SharedInboxURL: "https://a.example/inbox"},
		{URL: "https://b.example/u/3", InboxURL: "https://b.example/u/3/inbox"},
		{URL: "https://c.example/u/4"},
	}

	want := []string{
		"https://a.example/inbox",
		"https://b.example/u/3/inbox",
	}

	if diff := cmp.Diff(want, CollectInboxes(followers)); diff != "" {
		t.Errorf("inbox set mismatch (-want +got):\n%s", diff)
	}
}

func TestBroadcastEnqueuesOneBatchedJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)
	q := &stubQueue{}

	from := domain.Actor{ID: 7, URL: "https://tube.example/actors/alice"}
	followers := []domain.Actor{
		{InboxURL: "https://a.example/u/1/inbox", SharedInboxURL: "https://a.example/inbox"},
		{InboxURL: "https://b.example/u/2/inbox", SharedInboxURL: "https://b.example/inbox"},
	}
	DB.EXPECT().GetFollowerActors(gomock.Any(), from.ID).Return(followers, nil)

	g := New(DB, nil, q, &stubActors{}, testConfig(t))
	if err := g.Broadcast(ctx, ap.Activity{Type: ap.CreateType}, from); err != nil {
		t.Fatal(err)
	}

	want := []delivery{
		{Type: ap.CreateType, Inboxes: []string{"https://a.example/inbox", "https://b.example/inbox"}, From: from.URL},
	}
	if diff := cmp.Diff(want, q.deliveries); diff != "" {
		t.Errorf("deliveries mismatch (-want +got):\n%s", diff)
	}
}

func TestDeliverAllChunksLargeAudiences(t *testing.T) {
	q := &stubQueue{}
	g := &FedGatewayImpl{queue: q}

	inboxes := make([]string, 0, 250)
	for i := range 250 {
		inboxes = append(inboxes, fmt.Sprintf("https://peer%d.example/inbox", i))
	}

	from := domain.Actor{URL: "https://tube.example/actors/alice"}
	if err := g.deliverAll(ctx, ap.Activity{Type: ap.CreateType}, inboxes, from); err != nil {
		t.Fatal(err)
	}

	var sizes []int
	for _, d := range q.deliveries {
		sizes = append(sizes, len(d.Inboxes))
	}
	if diff := cmp.Diff([]int{100, 100, 50}, sizes); diff != "" {
		t.Errorf("batch sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestBroadcastWithoutFollowersIsANoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)
	q := &stubQueue{}

	from := domain.Actor{ID: 7, URL: "https://tube.example/actors/alice"}
	DB.EXPECT().GetFollowerActors(gomock.Any(), from.ID).Return(nil, nil)

	g := New(DB, nil, q, &stubActors{}, testConfig(t))
	if err := g.Broadcast(ctx, ap.Activity{Type: ap.CreateType}, from); err != nil {
		t.Fatal(err)
	}
	if len(q.deliveries) != 0 {
		t.Errorf("expected no deliveries, got %d", len(q.deliveries))
	}
}

func TestPublishVideoAddressesFollowerSharedInboxes(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)
	q := &stubQueue{}

	author := domain.Actor{ID: 7, URL: "https://tube.example/actors/alice"}
	followers := []domain.Actor{
		{InboxURL: "https://a.example/u/1/inbox", SharedInboxURL: "https://a.example/inbox"},
		{InboxURL: "https://b.example/u/2/inbox", SharedInboxURL: "https://b.example/inbox"},
	}
	DB.EXPECT().GetFollowerActors(gomock.Any(), author.ID).Return(followers, nil)

	video := domain.Video{
		URL:        "https://tube.example/videos/42",
		Name:       "launch day",
		Visibility: domain.VisibilityPublic,
	}

	g := New(DB, nil, q, &stubActors{}, testConfig(t))
	if err := g.PublishVideo(ctx, video, author); err != nil {
		t.Fatal(err)
	}

	inboxes := []string{"https://a.example/inbox", "https://b.example/inbox"}
	want := []delivery{
		{Type: ap.CreateType, Inboxes: inboxes, From: author.URL, To: []string{ap.PublicStream}, Cc: inboxes},
	}
	if diff := cmp.Diff(want, q.deliveries); diff != "" {
		t.Errorf("deliveries mismatch (-want +got):\n%s", diff)
	}
}

func TestPublishUnlistedVideoSwapsTheAudience(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)
	q := &stubQueue{}

	author := domain.Actor{ID: 7, URL: "https://tube.example/actors/alice"}
	followers := []domain.Actor{{SharedInboxURL: "https://a.example/inbox"}}
	DB.EXPECT().GetFollowerActors(gomock.Any(), author.ID).Return(followers, nil)

	video := domain.Video{
		URL:        "https://tube.example/videos/43",
		Visibility: domain.VisibilityUnlisted,
	}

	g := New(DB, nil, q, &stubActors{}, testConfig(t))
	if err := g.PublishVideo(ctx, video, author); err != nil {
		t.Fatal(err)
	}

	want := []delivery{{
		Type:    ap.CreateType,
		Inboxes: []string{"https://a.example/inbox"},
		From:    author.URL,
		To:      []string{"https://a.example/inbox"},
		Cc:      []string{ap.PublicStream},
	}}
	if diff := cmp.Diff(want, q.deliveries); diff != "" {
		t.Errorf("deliveries mismatch (-want +got):\n%s", diff)
	}
}

func TestUnfollowRemovesTheEdgeAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)
	q := &stubQueue{}

	follower := domain.Actor{ID: 7, URL: "https://tube.example/actors/alice"}
	target := domain.Actor{ID: 3, URL: "https://peer.example/actors/bob", InboxURL: "https://peer.example/actors/bob/inbox"}

	edge := domain.Follow{ID: 12, ActorID: follower.ID, TargetID: target.ID, URL: follower.URL + "/follows/abc"}
	DB.EXPECT().GetFollow(gomock.Any(), follower.ID, target.ID).Return(edge, nil)
	DB.EXPECT().DeleteFollow(gomock.Any(), edge.ID).Return(nil)

	g := New(DB, nil, q, &stubActors{}, testConfig(t))
	if err := g.UnfollowRemoteActor(ctx, follower, target); err != nil {
		t.Fatal(err)
	}

	if len(q.deliveries) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(q.deliveries))
	}
	got := q.deliveries[0]
	if got.Type != ap.UndoType || got.From != follower.URL {
		t.Errorf("unexpected undo delivery: %+v", got)
	}
	if diff := cmp.Diff([]string{target.InboxURL}, got.Inboxes); diff != "" {
		t.Errorf("undo inboxes mismatch (-want +got):\n%s", diff)
	}
}

func TestUnfollowWithoutAnEdgeIsANoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)
	q := &stubQueue{}

	follower := domain.Actor{ID: 7, URL: "https://tube.example/actors/alice"}
	target := domain.Actor{ID: 3, URL: "https://peer.example/actors/bob"}
	DB.EXPECT().GetFollow(gomock.Any(), follower.ID, target.ID).Return(domain.Follow{}, db.ErrNotFound)

	g := New(DB, nil, q, &stubActors{}, testConfig(t))
	if err := g.UnfollowRemoteActor(ctx, follower, target); err != nil {
		t.Fatal(err)
	}
	if len(q.deliveries) != 0 {
		t.Errorf("expected no deliveries, got %d", len(q.deliveries))
	}
}

func TestVerify(t *testing.T) {
	pubPem, privPem, err := utils.GenerateKeysPem(2048)
	if err != nil {
		t.Fatal(err)
	}
	privKey, err := utils.ParsePrivateKeyPem(privPem)
	if err != nil {
		t.Fatal(err)
	}

	actorIRI := "https://peer.example/actors/bob"
	keyId := actorIRI + "#main-key"
	actors := &stubActors{actor: domain.Actor{
		ID:           3,
		URL:          actorIRI,
		Host:         "peer.example",
		PublicKeyPem: pubPem,
	}}

	body := []byte(`{"type":"Follow"}`)

	t.Run("valid signature passes", func(t *testing.T) {
		g := New(nil, nil, &stubQueue{}, actors, testConfig(t))
		r := signedRequest(t, privKey, keyId, body)

		if err := g.Verify(ctx, r, body); err != nil {
			t.Errorf("expected verification to pass: %v", err)
		}
	})

	t.Run("foreign key fails", func(t *testing.T) {
		otherPub, _, err := utils.GenerateKeysPem(2048)
		if err != nil {
			t.Fatal(err)
		}
		wrongKey := &stubActors{actor: domain.Actor{URL: actorIRI, Host: "peer.example", PublicKeyPem: otherPub}}
		g := New(nil, nil, &stubQueue{}, wrongKey, testConfig(t))
		r := signedRequest(t, privKey, keyId, body)

		if err := g.Verify(ctx, r, body); !errors.Is(err, federation.ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("tampered body fails the digest", func(t *testing.T) {
		g := New(nil, nil, &stubQueue{}, actors, testConfig(t))
		r := signedRequest(t, privKey, keyId, body)

		if err := g.Verify(ctx, r, []byte(`{"type":"Delete"}`)); !errors.Is(err, federation.ErrInvalidDigest) {
			t.Errorf("expected ErrInvalidDigest, got %v", err)
		}
	})

	t.Run("signature must cover the digest", func(t *testing.T) {
		g := New(nil, nil, &stubQueue{}, actors, testConfig(t))

		r := httptest.NewRequest("POST", "https://tube.example/inbox", bytes.NewReader(body))
		r.Header.Set("Date", "Mon, 02 Jan 2006 15:04:05 GMT")
		r.Header.Set("Host", r.Host)
		headers := []string{httpsig.RequestTarget, "date", "host"}
		signer, _, err := httpsig.NewSigner([]httpsig.Algorithm{httpsig.RSA_SHA256}, httpsig.DigestSha256, headers, httpsig.Signature, 3600)
		if err != nil {
			t.Fatal(err)
		}
		if err = signer.SignRequest(privKey, keyId, r, body); err != nil {
			t.Fatal(err)
		}

		// A sender who recomputes the Digest header over a body of
		// their choosing must not get past a signature that never
		// covered it.
		forged := []byte(`{"type":"Delete"}`)
		sum := sha256.Sum256(forged)
		r.Header.Set("Digest", "SHA-256="+base64.StdEncoding.EncodeToString(sum[:]))

		if err := g.Verify(ctx, r, forged); !errors.Is(err, federation.ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("unresolvable key owner rejects", func(t *testing.T) {
		broken := &stubActors{err: federation.ErrRemoteUnreachable}
		g := New(nil, nil, &stubQueue{}, broken, testConfig(t))
		r := signedRequest(t, privKey, keyId, body)

		if err := g.Verify(ctx, r, body); !errors.Is(err, federation.ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})
}
