package models

import (
	"time"
)

// Participant ties one user to one competition. The composite unique index
// guarantees a single row per (competition, user) pair.
//
// ROI is the participant's simulated return-on-investment. It is nullable:
// a participant that has never been scored carries NULL, which every reader
// must treat as zero.
type Participant struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	CompetitionID string    `json:"competition_id" gorm:"not null;uniqueIndex:idx_participant_competition_user"`
	UserID        string    `json:"user_id" gorm:"not null;uniqueIndex:idx_participant_competition_user"`
	JoinedAt      time.Time `json:"joined_at" gorm:"autoCreateTime"`
	ROI           *float64  `json:"roi,omitempty" gorm:"column:roi"`

	// Relationships
	Competition Competition `json:"competition,omitempty" gorm:"foreignKey:CompetitionID"`
	User        User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Score returns the nil-safe ROI.
func (p Participant) Score() float64 {
	if p.ROI == nil {
		return 0
	}
	return *p.ROI
}
