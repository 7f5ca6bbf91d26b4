// services/scheduler.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// scoreTickInterval matches the 2s cadence the frontend expects.
const scoreTickInterval = 2 * time.Second

// StartScoreScheduler runs the mutation-and-broadcast cycle on a fixed
// period, independent of how many sessions are connected. Singleton mode
// makes a slow tick skip the next run instead of queueing behind it.
// The returned scheduler is handed back so shutdown can stop the feed.
func (s *LeaderboardService) StartScoreScheduler(b *Broadcaster) gocron.Scheduler {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(scoreTickInterval),
		gocron.NewTask(func() {
			s.runTick(b)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	return sched
}

// runTick executes one tick and fans out the delta, if any. Errors are
// logged and swallowed — the scheduler must survive arbitrarily many failed
// ticks, and the next one starts from fresh state anyway.
func (s *LeaderboardService) runTick(b *Broadcaster) {
	// Bound the store calls so a stuck query cannot wedge later ticks.
	ctx, cancel := context.WithTimeout(context.Background(), scoreTickInterval)
	defer cancel()

	update, err := s.Tick(ctx)
	if err != nil {
		log.Printf("[Scheduler] tick failed: %v", err)
		return
	}
	if update == nil {
		return
	}

	b.BroadcastScoreUpdate(update.CompetitionID, update.Updates)
}
