package handlers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/IsiraKasun/innohive-trademini-demo/services"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// SetupLeaderboardRoutes mounts the live leaderboard push channel on /ws.
func SetupLeaderboardRoutes(app *fiber.App, hub *services.Hub, broadcaster *services.Broadcaster, leaderboard *services.LeaderboardService, store services.ScoreStore) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		sess := newWSSession(conn)
		hub.Add(sess)
		defer func() {
			hub.Remove(sess)
			log.Printf("[WS] client disconnected (%d active)", hub.Len())
		}()

		log.Printf("[WS] client connected (%d active)", hub.Len())
		sendInitialSnapshots(sess, broadcaster, leaderboard, store)

		// Inbound frames are ignored; the read loop exists only to notice
		// the client going away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

// sendInitialSnapshots pushes one snapshot frame per known competition,
// regardless of status, so a fresh client can render every leaderboard
// before the first delta arrives.
func sendInitialSnapshots(sess services.Session, broadcaster *services.Broadcaster, leaderboard *services.LeaderboardService, store services.ScoreStore) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	competitions, err := store.ListCompetitions(ctx, "")
	if err != nil {
		log.Printf("[WS] failed to load competitions for snapshot: %v", err)
		return
	}

	for _, competition := range competitions {
		participants, err := store.ListParticipants(ctx, competition.ID)
		if err != nil {
			log.Printf("[WS] failed to load participants for competition %s: %v", competition.ID, err)
			continue
		}
		broadcaster.SendSnapshot(sess, competition.ID, leaderboard.BuildSnapshot(participants))
	}
}

// wsSession adapts a websocket connection to services.Session. Writes come
// from both the connection handler (snapshots) and the score scheduler
// (deltas), and the underlying connection allows one writer at a time, so
// Send serializes them.
type wsSession struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newWSSession(conn *websocket.Conn) *wsSession {
	return &wsSession{conn: conn}
}

func (s *wsSession) Send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *wsSession) Close() error {
	return s.conn.Close()
}
