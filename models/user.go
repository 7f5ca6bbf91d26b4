package models

import (
	"time"
)

// User is the identity a participant points at. Registration, credentials
// and token issuance live in the auth service — this table only carries
// what the leaderboard needs to display.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
