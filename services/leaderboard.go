package services

import (
	"context"
	"math/rand"
	"sort"

	"github.com/IsiraKasun/innohive-trademini-demo/models"
)

// ScoreUpdate is the result of one mutation tick: the competition that was
// perturbed and the new absolute scores of exactly the mutated participants,
// in mutation order.
type ScoreUpdate struct {
	CompetitionID string
	Updates       []LeaderboardEntry
}

// LeaderboardService builds snapshots and drives the simulated score feed.
// There is no trading engine behind this system — scores move by random
// perturbation, which is the intended behavior, not a placeholder.
type LeaderboardService struct {
	store ScoreStore
	rng   *rand.Rand
}

// NewLeaderboardService wires the service to its store. The random source is
// injected so tests can seed it.
func NewLeaderboardService(store ScoreStore, rng *rand.Rand) *LeaderboardService {
	return &LeaderboardService{store: store, rng: rng}
}

// BuildSnapshot turns a competition's participants into an ordered
// leaderboard, highest score first. The sort is stable, so participants with
// equal scores keep the store's query order (join order).
func (s *LeaderboardService) BuildSnapshot(participants []models.Participant) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(participants))
	for _, p := range participants {
		entries = append(entries, LeaderboardEntry{
			Name:  p.User.Username,
			Score: p.Score(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return entries
}

// Tick perturbs one active competition and persists the result. It returns
// nil without error when there is nothing to do (no active competition, or
// the chosen one has no participants). Any store failure aborts the tick:
// no payload, no partial writes.
func (s *LeaderboardService) Tick(ctx context.Context) (*ScoreUpdate, error) {
	competitions, err := s.store.ListCompetitions(ctx, models.CompetitionStatusActive)
	if err != nil {
		return nil, err
	}
	if len(competitions) == 0 {
		return nil, nil
	}

	competition := competitions[s.rng.Intn(len(competitions))]

	participants, err := s.store.ListParticipants(ctx, competition.ID)
	if err != nil {
		return nil, err
	}
	if len(participants) == 0 {
		return nil, nil
	}

	count := len(participants) / 4
	if count < 1 {
		count = 1
	}

	// Sample without replacement: walk a random permutation.
	order := s.rng.Perm(len(participants))

	mutated := make([]models.Participant, 0, count)
	updates := make([]LeaderboardEntry, 0, count)
	for _, idx := range order[:count] {
		p := &participants[idx]

		delta := s.rng.Float64()*10.0 - 5.0 // uniform [-5, +5)
		next := p.Score() + delta
		p.ROI = &next

		mutated = append(mutated, *p)
		updates = append(updates, LeaderboardEntry{
			Name:  p.User.Username,
			Score: next,
		})
	}

	if err := s.store.SaveParticipants(ctx, mutated); err != nil {
		return nil, err
	}

	return &ScoreUpdate{
		CompetitionID: competition.ID,
		Updates:       updates,
	}, nil
}
