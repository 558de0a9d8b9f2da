package impl

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/initialization"
)

var DB db.DB
var ctx = context.Background()

func TestMain(m *testing.M) {
	hostname, _ := url.Parse("https://test.tube")
	cfg := config.Configuration{
		Domain: "test.tube",
		Url:    hostname,
	}
	d, err := initialization.OpenDB("file:temp?mode=memory")
	if err != nil {
		return
	}

	err = initialization.SetupDB(&cfg, d, "../../../migrations", "temp")
	if err != nil {
		return
	}
	DB = New(cfg, d)
	m.Run()
}

func mustActor(t *testing.T, iri string) domain.Actor {
	t.Helper()
	a := domain.Actor{
		URL:      iri,
		Username: "someone",
		InboxURL: iri + "/inbox",
		Host:     "peer.example",
	}
	id, err := DB.CreateActor(ctx, a)
	if err != nil {
		t.Fatalf("creating actor %s: %s", iri, err)
	}
	a.ID = id
	return a
}

func mustVideo(t *testing.T, iri string, accountID int64) domain.Video {
	t.Helper()
	v := domain.Video{
		URL:       iri,
		Name:      "a video",
		AccountID: accountID,
	}
	id, err := DB.CreateVideo(ctx, v)
	if err != nil {
		t.Fatalf("creating video %s: %s", iri, err)
	}
	v.ID = id
	return v
}

func TestActorRoundTrip(t *testing.T) {
	created := mustActor(t, "https://peer.example/actors/round")

	got, err := DB.GetActorByURL(ctx, created.URL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.ID != created.ID || got.Username != created.Username || got.InboxURL != created.InboxURL {
		t.Errorf("got %+v, want the created actor", got)
	}

	byID, err := DB.GetActorByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if byID.URL != created.URL {
		t.Errorf("lookup by id returned %s", byID.URL)
	}

	if _, err = DB.GetActorByURL(ctx, "https://peer.example/actors/nobody"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTombstoneActor(t *testing.T) {
	a := mustActor(t, "https://peer.example/actors/doomed")

	if err := DB.TombstoneActorByURL(ctx, a.URL); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, err := DB.GetActorByURL(ctx, a.URL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !got.Tombstoned {
		t.Error("expected the actor to be tombstoned")
	}
}

func TestTouchActorResetsRefreshTimer(t *testing.T) {
	a := mustActor(t, "https://peer.example/actors/touched")

	at := time.Now().UTC().Add(2 * time.Hour).Truncate(time.Second)
	if err := DB.TouchActor(ctx, a.URL, at); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, err := DB.GetActorByURL(ctx, a.URL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !got.LastRefreshedAt.Equal(at) {
		t.Errorf("got refreshed_at %v, want %v", got.LastRefreshedAt, at)
	}
}

func TestFollowLifecycle(t *testing.T) {
	follower := mustActor(t, "https://peer.example/actors/f1")
	target := mustActor(t, "https://peer.example/actors/t1")

	id, err := DB.CreateFollow(ctx, domain.Follow{
		ActorID:  follower.ID,
		TargetID: target.ID,
		State:    domain.FollowPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	f, err := DB.GetFollow(ctx, follower.ID, target.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if f.ID != id || f.State != domain.FollowPending || f.Score != domain.ScoreBase {
		t.Errorf("got %+v, want a pending follow at the base score", f)
	}

	// the URL backfills once and only once
	if err = DB.SetFollowURL(ctx, id, "https://peer.example/activities/follow/f1"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err = DB.SetFollowURL(ctx, id, "https://peer.example/activities/follow/other"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	f, err = DB.GetFollowByURL(ctx, "https://peer.example/activities/follow/f1")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if f.ID != id {
		t.Errorf("expected the first URL to stick, got %+v", f)
	}

	if err = DB.UpdateFollowState(ctx, id, domain.FollowAccepted); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	followers, err := DB.GetFollowerActors(ctx, target.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(followers) != 1 || followers[0].ID != follower.ID {
		t.Errorf("got followers %+v, want just %d", followers, follower.ID)
	}

	if err = DB.DeleteFollow(ctx, id); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = DB.GetFollow(ctx, follower.ID, target.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPendingFollowsAreNotFollowers(t *testing.T) {
	follower := mustActor(t, "https://peer.example/actors/f2")
	target := mustActor(t, "https://peer.example/actors/t2")

	_, err := DB.CreateFollow(ctx, domain.Follow{
		ActorID:  follower.ID,
		TargetID: target.ID,
		State:    domain.FollowPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	followers, err := DB.GetFollowerActors(ctx, target.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(followers) != 0 {
		t.Errorf("a pending follow must not deliver, got %+v", followers)
	}
}

func TestApplyInboxScoresAndPrune(t *testing.T) {
	follower := mustActor(t, "https://peer.example/actors/f3")
	target := mustActor(t, "https://peer.example/actors/t3")

	_, err := DB.CreateFollow(ctx, domain.Follow{
		ActorID:  follower.ID,
		TargetID: target.ID,
		State:    domain.FollowAccepted,
		Score:    10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	err = DB.ApplyInboxScores(ctx, map[string]int{follower.InboxURL: domain.ScorePenalty})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	pruned, err := DB.PruneDeadFollows(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if pruned != 1 {
		t.Errorf("pruned %d follows, want 1", pruned)
	}
	if _, err = DB.GetFollow(ctx, follower.ID, target.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected the decayed follow to be gone, got %v", err)
	}
}

func TestScoreIsClampedAtTheCeiling(t *testing.T) {
	follower := mustActor(t, "https://peer.example/actors/f4")
	target := mustActor(t, "https://peer.example/actors/t4")

	_, err := DB.CreateFollow(ctx, domain.Follow{
		ActorID:  follower.ID,
		TargetID: target.ID,
		State:    domain.FollowAccepted,
		Score:    domain.ScoreMax - 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	err = DB.ApplyInboxScores(ctx, map[string]int{follower.InboxURL: domain.ScoreBonus})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	f, err := DB.GetFollow(ctx, follower.ID, target.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if f.Score != domain.ScoreMax {
		t.Errorf("got score %d, want it clamped at %d", f.Score, domain.ScoreMax)
	}
}

func TestVideoRateCounters(t *testing.T) {
	account := mustActor(t, "https://peer.example/actors/v1")
	video := mustVideo(t, "https://peer.example/videos/v1", account.ID)

	if video.ID == 0 {
		t.Fatal("expected a video id")
	}

	got, err := DB.GetVideoByURL(ctx, video.URL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.Visibility != domain.VisibilityPublic {
		t.Errorf("got visibility %q, want the public default", got.Visibility)
	}

	err = DB.CreateRate(ctx, domain.Rate{
		URL:     "https://peer.example/activities/like/v1",
		ActorID: account.ID,
		VideoID: video.ID,
		Type:    domain.RateLike,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err = DB.AddVideoRates(ctx, video.ID, 1, 0); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	rate, err := DB.GetRate(ctx, account.ID, video.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if rate.Type != domain.RateLike {
		t.Errorf("got rate %+v", rate)
	}

	got, err = DB.GetVideoByURL(ctx, video.URL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.Likes != 1 || got.Dislikes != 0 {
		t.Errorf("got %d likes %d dislikes, want 1 and 0", got.Likes, got.Dislikes)
	}

	if err = DB.DeleteRate(ctx, rate.ID); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = DB.GetRate(ctx, account.ID, video.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestShareRoundTrip(t *testing.T) {
	account := mustActor(t, "https://peer.example/actors/s1")
	video := mustVideo(t, "https://peer.example/videos/s1", account.ID)

	shareURL := "https://peer.example/activities/announce/s1"
	err := DB.CreateShare(ctx, domain.Share{
		URL:     shareURL,
		ActorID: account.ID,
		VideoID: video.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	share, err := DB.GetShareByURL(ctx, shareURL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	at := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	if err = DB.TouchShare(ctx, share.ID, at); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	share, err = DB.GetShareByURL(ctx, shareURL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !share.UpdatedAt.Equal(at) {
		t.Errorf("got updated_at %v, want %v", share.UpdatedAt, at)
	}

	if err = DB.DeleteShareByURL(ctx, shareURL); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = DB.GetShareByURL(ctx, shareURL); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestWithTransactionRollsBack(t *testing.T) {
	boom := errors.New("boom")
	iri := "https://peer.example/actors/rollback"

	err := DB.WithTransaction(ctx, func(tx db.DB) error {
		if _, err := tx.CreateActor(ctx, domain.Actor{URL: iri, Host: "peer.example"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the body's error, got %v", err)
	}

	if _, err = DB.GetActorByURL(ctx, iri); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected the insert to be rolled back, got %v", err)
	}
}

func TestCommentRoundTrip(t *testing.T) {
	account := mustActor(t, "https://peer.example/actors/c1")
	video := mustVideo(t, "https://peer.example/videos/c1", account.ID)

	c := domain.Comment{
		URL:       "https://peer.example/comments/c1",
		Text:      "first",
		VideoID:   video.ID,
		AccountID: account.ID,
	}
	id, err := DB.CreateComment(ctx, c)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, err := DB.GetCommentByURL(ctx, c.URL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.ID != id || got.Text != c.Text || got.VideoID != video.ID {
		t.Errorf("got %+v", got)
	}

	if err = DB.DeleteCommentByURL(ctx, c.URL); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = DB.GetCommentByURL(ctx, c.URL); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteVideoCascadesToShares(t *testing.T) {
	account := mustActor(t, "https://peer.example/actors/casc1")
	video := mustVideo(t, "https://peer.example/videos/casc1", account.ID)

	shareURL := "https://peer.example/activities/announce/casc1"
	err := DB.CreateShare(ctx, domain.Share{URL: shareURL, ActorID: account.ID, VideoID: video.ID})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if err = DB.DeleteVideoByURL(ctx, video.URL); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = DB.GetShareByURL(ctx, shareURL); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected the share to cascade away, got %v", err)
	}
}

func TestSweepDropsSharesUntouchedSinceCutoff(t *testing.T) {
	account := mustActor(t, "https://peer.example/actors/sw1")
	video := mustVideo(t, "https://peer.example/videos/sw1", account.ID)

	cutoff := time.Now().UTC()
	stale := domain.Share{
		URL:       "https://peer.example/activities/announce/sw-old",
		ActorID:   account.ID,
		VideoID:   video.ID,
		UpdatedAt: cutoff.Add(-time.Hour),
	}
	fresh := domain.Share{
		URL:       "https://peer.example/activities/announce/sw-new",
		ActorID:   account.ID,
		VideoID:   video.ID,
		UpdatedAt: cutoff.Add(time.Hour),
	}
	for _, s := range []domain.Share{stale, fresh} {
		if err := DB.CreateShare(ctx, s); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	swept, err := DB.DeleteSharesOlderThan(ctx, video.ID, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if swept != 1 {
		t.Errorf("swept %d shares, want 1", swept)
	}

	if _, err = DB.GetShareByURL(ctx, stale.URL); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected the stale share to be gone, got %v", err)
	}
	if _, err = DB.GetShareByURL(ctx, fresh.URL); err != nil {
		t.Errorf("expected the fresh share to survive, got %v", err)
	}
}
