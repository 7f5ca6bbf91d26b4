package services

import (
	"context"
	"sync"

	"github.com/IsiraKasun/innohive-trademini-demo/models"
)

// fakeSession records every frame it is handed and can be told to fail.
type fakeSession struct {
	mu      sync.Mutex
	frames  [][]byte
	sendErr error
	closed  bool
}

func (f *fakeSession) Send(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	f.frames = append(f.frames, buf)
	return nil
}

func (f *fakeSession) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSession) received() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.frames...)
}

func (f *fakeSession) wasClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// fakeStore is an in-memory ScoreStore. Reads hand out copies, the way a
// real store materializes fresh rows, and writes are recorded per batch.
type fakeStore struct {
	mu           sync.Mutex
	competitions []models.Competition
	participants map[string][]models.Participant
	saved        [][]models.Participant

	listCompetitionsErr error
	listParticipantsErr error
	saveErr             error
}

func newFakeStore() *fakeStore {
	return &fakeStore{participants: make(map[string][]models.Participant)}
}

func (f *fakeStore) ListCompetitions(_ context.Context, status string) ([]models.Competition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listCompetitionsErr != nil {
		return nil, f.listCompetitionsErr
	}
	var out []models.Competition
	for _, c := range f.competitions {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) ListParticipants(_ context.Context, competitionID string) ([]models.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listParticipantsErr != nil {
		return nil, f.listParticipantsErr
	}
	stored := f.participants[competitionID]
	out := make([]models.Participant, len(stored))
	for i, p := range stored {
		out[i] = p
		if p.ROI != nil {
			roi := *p.ROI
			out[i].ROI = &roi
		}
	}
	return out, nil
}

func (f *fakeStore) SaveParticipants(_ context.Context, participants []models.Participant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, append([]models.Participant(nil), participants...))
	return nil
}

func (f *fakeStore) savedBatches() [][]models.Participant {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]models.Participant(nil), f.saved...)
}

func roiPtr(v float64) *float64 {
	return &v
}

func makeParticipant(id, competitionID, username string, roi *float64) models.Participant {
	return models.Participant{
		ID:            id,
		CompetitionID: competitionID,
		UserID:        "user-" + id,
		ROI:           roi,
		User:          models.User{ID: "user-" + id, Username: username},
	}
}
