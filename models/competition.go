package models

import (
	"time"
)

// Competition lifecycle states. A competition is pending before its start
// time, active between start and end, and finished after end — and once
// finished it never reverts.
const (
	CompetitionStatusPending  = "pending"
	CompetitionStatusActive   = "active"
	CompetitionStatusFinished = "finished"
)

// Competition represents one trading competition users can join
type Competition struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	EntryFee  float64   `json:"entry_fee" gorm:"default:0"`
	PrizePool float64   `json:"prize_pool" gorm:"default:0"`
	Status    string    `json:"status" gorm:"default:'pending';index"`
	StartTime time.Time `json:"start_time" gorm:"not null"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Participants []Participant `json:"participants,omitempty" gorm:"foreignKey:CompetitionID"`
}
