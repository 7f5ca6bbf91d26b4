package services

import (
	"context"
	"fmt"

	"github.com/IsiraKasun/innohive-trademini-demo/models"
	"gorm.io/gorm"
)

// ScoreStore is the read/write surface the leaderboard core consumes.
// The broadcast loop never touches gorm directly.
type ScoreStore interface {
	// ListCompetitions returns competitions, filtered by status when
	// status is non-empty.
	ListCompetitions(ctx context.Context, status string) ([]models.Competition, error)
	// ListParticipants returns a competition's participants with their
	// user preloaded, ordered by join time (the leaderboard tie-break).
	ListParticipants(ctx context.Context, competitionID string) ([]models.Participant, error)
	// SaveParticipants persists a batch of score mutations atomically.
	SaveParticipants(ctx context.Context, participants []models.Participant) error
}

type StoreService struct {
	DB *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{DB: db}
}

func (s *StoreService) ListCompetitions(ctx context.Context, status string) ([]models.Competition, error) {
	q := s.DB.WithContext(ctx).Order("created_at ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var competitions []models.Competition
	if err := q.Find(&competitions).Error; err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

func (s *StoreService) ListParticipants(ctx context.Context, competitionID string) ([]models.Participant, error) {
	var participants []models.Participant
	err := s.DB.WithContext(ctx).
		Preload("User").
		Where("competition_id = ?", competitionID).
		Order("joined_at ASC, id ASC").
		Find(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for competition %s: %w", competitionID, err)
	}
	return participants, nil
}

func (s *StoreService) SaveParticipants(ctx context.Context, participants []models.Participant) error {
	if len(participants) == 0 {
		return nil
	}

	// One transaction for the whole batch: either every new score lands
	// or none of them does.
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range participants {
			if err := tx.Model(&models.Participant{}).
				Where("id = ?", p.ID).
				Update("roi", p.ROI).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save participant scores: %w", err)
	}
	return nil
}
