package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IsiraKasun/innohive-trademini-demo/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedDemoData loads a demo dataset on first boot so the leaderboard feed
// has something to broadcast: one competition already running, one starting
// in an hour, one starting tomorrow, each lasting a day. No-op when any
// competition already exists.
func (s *StoreService) SeedDemoData(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Competition{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing competitions: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()

	competitions := []models.Competition{
		{
			ID:        uuid.NewString(),
			Name:      "Weekly Alpha Sprint",
			EntryFee:  25,
			PrizePool: 5000,
			Status:    models.CompetitionStatusActive,
			StartTime: now,
			EndTime:   now.Add(24 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Midday Momentum Cup",
			EntryFee:  10,
			PrizePool: 1500,
			Status:    models.CompetitionStatusPending,
			StartTime: now.Add(time.Hour),
			EndTime:   now.Add(25 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Overnight Swing Open",
			EntryFee:  50,
			PrizePool: 12000,
			Status:    models.CompetitionStatusPending,
			StartTime: now.Add(24 * time.Hour),
			EndTime:   now.Add(48 * time.Hour),
		},
	}

	demoUsers := []models.User{
		{ID: uuid.NewString(), Username: "ava_sterling", FirstName: "Ava", LastName: "Sterling"},
		{ID: uuid.NewString(), Username: "marcus_reid", FirstName: "Marcus", LastName: "Reid"},
		{ID: uuid.NewString(), Username: "lena_okafor", FirstName: "Lena", LastName: "Okafor"},
		{ID: uuid.NewString(), Username: "dmitri_volkov", FirstName: "Dmitri", LastName: "Volkov"},
		{ID: uuid.NewString(), Username: "sofia_marchetti", FirstName: "Sofia", LastName: "Marchetti"},
		{ID: uuid.NewString(), Username: "kenji_tanaka", FirstName: "Kenji", LastName: "Tanaka"},
		{ID: uuid.NewString(), Username: "priya_nair", FirstName: "Priya", LastName: "Nair"},
		{ID: uuid.NewString(), Username: "owen_castillo", FirstName: "Owen", LastName: "Castillo"},
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&demoUsers).Error; err != nil {
			return err
		}
		if err := tx.Create(&competitions).Error; err != nil {
			return err
		}

		// Everyone joins the running competition, the first four also join
		// the next one, nobody joins the overnight one yet. Scores start
		// NULL (zero) and move only through the tick loop.
		var participants []models.Participant
		for _, u := range demoUsers {
			participants = append(participants, models.Participant{
				ID:            uuid.NewString(),
				CompetitionID: competitions[0].ID,
				UserID:        u.ID,
				JoinedAt:      now,
			})
		}
		for _, u := range demoUsers[:4] {
			participants = append(participants, models.Participant{
				ID:            uuid.NewString(),
				CompetitionID: competitions[1].ID,
				UserID:        u.ID,
				JoinedAt:      now,
			})
		}

		return tx.Create(&participants).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}

	log.Printf("✅ Seeded %d demo competitions and %d demo traders", len(competitions), len(demoUsers))
	return nil
}
