package health

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/estuaire/vidfed/internal/domain"
)

func TestRecordAndDrain(t *testing.T) {
	tr := New()
	tr.Record("https://peer.example/inbox", Success)
	tr.Record("https://peer.example/inbox", Success)
	tr.Record("https://other.example/inbox", Failure)

	want := map[string]int{
		"https://peer.example/inbox":  2 * domain.ScoreBonus,
		"https://other.example/inbox": domain.ScorePenalty,
	}
	if diff := cmp.Diff(want, tr.DrainAndReset()); diff != "" {
		t.Errorf("drained scores mismatch (-want +got):\n%s", diff)
	}

	if got := tr.DrainAndReset(); len(got) != 0 {
		t.Errorf("expected empty map after drain, got %v", got)
	}
}

func TestDrainLosesNoConcurrentUpdates(t *testing.T) {
	const inbox = "https://peer.example/inbox"
	const successes = 1000
	const failures = 500

	tr := New()

	var wg sync.WaitGroup
	for i := 0; i < successes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Record(inbox, Success)
		}()
	}
	for i := 0; i < failures; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Record(inbox, Failure)
		}()
	}

	// Drain repeatedly while the writers are running; the sum over all
	// drains plus the final one must account for every record.
	done := make(chan struct{})
	total := 0
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			for _, v := range tr.DrainAndReset() {
				total += v
			}
		}
	}()

	wg.Wait()
	<-done
	for _, v := range tr.DrainAndReset() {
		total += v
	}

	want := successes*domain.ScoreBonus + failures*domain.ScorePenalty
	if total != want {
		t.Errorf("lost updates: drained total %d, want %d", total, want)
	}

	if got := tr.DrainAndReset(); len(got) != 0 {
		t.Errorf("tracker not empty after final drain: %v", got)
	}
}
