// The health package accumulates a per-inbox reputation signal from
// delivery outcomes. Scores live in process memory between flushes; the
// periodic drain applies them to the persistent follow scores and
// prunes follows that have decayed to zero.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
)

type Outcome bool

const (
	Success Outcome = true
	Failure Outcome = false
)

// Tracker is constructed once and injected wherever delivery outcomes
// are produced. One mutex guards both the increments and the drain, so
// a score recorded after a drain snapshot lands in the next flush
// rather than being lost.
type Tracker struct {
	mu     sync.Mutex
	scores map[string]int
}

func New() *Tracker {
	return &Tracker{scores: make(map[string]int)}
}

// Record accumulates one delivery outcome for the literal inbox URL the
// transport used.
func (t *Tracker) Record(inboxURL string, outcome Outcome) {
	delta := domain.ScorePenalty
	if outcome == Success {
		delta = domain.ScoreBonus
	}

	t.mu.Lock()
	t.scores[inboxURL] += delta
	t.mu.Unlock()
}

// DrainAndReset atomically takes the accumulated scores and leaves the
// tracker empty.
func (t *Tracker) DrainAndReset() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	drained := t.scores
	t.scores = make(map[string]int)
	return drained
}

// Run flushes on the given cadence until ctx is done, applying drained
// scores to the follow table and pruning follows that hit the floor. A
// final flush runs on shutdown so recorded outcomes are not dropped.
func (t *Tracker) Run(ctx context.Context, d db.DB, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.flush(context.Background(), d)
			return
		case <-ticker.C:
			t.flush(ctx, d)
		}
	}
}

func (t *Tracker) flush(ctx context.Context, d db.DB) {
	scores := t.DrainAndReset()
	if len(scores) == 0 {
		return
	}

	if err := d.ApplyInboxScores(ctx, scores); err != nil {
		log.Error().Err(err).Msg("applying peer health scores")
		return
	}

	pruned, err := d.PruneDeadFollows(ctx)
	if err != nil {
		log.Error().Err(err).Msg("pruning unhealthy follows")
		return
	}
	if pruned > 0 {
		log.Info().Int64("follows", pruned).Msg("pruned follows toward unreachable peers")
	}
}
