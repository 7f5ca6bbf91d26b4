package services

import (
	"encoding/json"
	"log"
)

// LeaderboardEntry is the wire pair for one trader. Derived on every
// snapshot/delta, never persisted.
type LeaderboardEntry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type snapshotMessage struct {
	Type          string             `json:"type"`
	CompetitionID string             `json:"competitionId"`
	Traders       []LeaderboardEntry `json:"traders"`
}

type scoreUpdateMessage struct {
	Type          string             `json:"type"`
	CompetitionID string             `json:"competitionId"`
	Updates       []LeaderboardEntry `json:"updates"`
}

// Broadcaster serializes leaderboard frames and delivers them to sessions.
// A recipient that fails to accept a write is dropped from the hub; it never
// stops delivery to the rest.
type Broadcaster struct {
	hub *Hub
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// SendSnapshot delivers one competition's full leaderboard to one session,
// typically right after it connects.
func (b *Broadcaster) SendSnapshot(sess Session, competitionID string, entries []LeaderboardEntry) {
	data, err := json.Marshal(snapshotMessage{
		Type:          "snapshot",
		CompetitionID: competitionID,
		Traders:       entries,
	})
	if err != nil {
		log.Printf("[Broadcast] failed to encode snapshot for competition %s: %v", competitionID, err)
		return
	}

	if err := sess.Send(data); err != nil {
		log.Printf("[Broadcast] snapshot send failed, dropping session: %v", err)
		b.drop(sess)
	}
}

// BroadcastScoreUpdate fans a delta frame out to every registered session.
// The frame is encoded once; an encoding failure aborts the whole broadcast
// so no client ever sees a partial frame.
func (b *Broadcaster) BroadcastScoreUpdate(competitionID string, entries []LeaderboardEntry) {
	data, err := json.Marshal(scoreUpdateMessage{
		Type:          "score_update",
		CompetitionID: competitionID,
		Updates:       entries,
	})
	if err != nil {
		log.Printf("[Broadcast] failed to encode score update for competition %s: %v", competitionID, err)
		return
	}

	b.hub.ForEach(func(sess Session) {
		if err := sess.Send(data); err != nil {
			log.Printf("[Broadcast] send failed, dropping session: %v", err)
			b.drop(sess)
		}
	})
}

// drop deregisters a session whose channel is unwritable and closes the
// underlying connection so its read loop unblocks right away.
func (b *Broadcaster) drop(sess Session) {
	b.hub.Remove(sess)
	_ = sess.Close()
}
