package matchmaker

import (
	"log/slog"
	"sync"
	"time"

	"citadel_backend/internal/domain"
	"citadel_backend/internal/engine"
	"citadel_backend/internal/logger"
)

// Matchmaker drains the engine's FIFO queue on a fixed interval, creating a
// match whenever enough identities are waiting. It holds an admin capability
// because dequeueing is a privileged engine operation.
type Matchmaker struct {
	engine     *engine.Engine
	adminToken string
	players    int
	interval   time.Duration

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func New(e *engine.Engine, adminToken string, players int, interval time.Duration) *Matchmaker {
	if players < 2 {
		players = 2
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Matchmaker{
		engine:     e,
		adminToken: adminToken,
		players:    players,
		interval:   interval,
		stopCh:     make(chan struct{}),
	}
}

// Start launches the drain loop.
func (m *Matchmaker) Start() {
	m.wg.Add(1)
	go m.run()
}

// Stop ends the drain loop and waits for it to finish.
func (m *Matchmaker) Stop() {
	close(m.stopCh)
	m.wg.Wait()
}

func (m *Matchmaker) run() {
	defer m.wg.Done()

	log := logger.With("component", "matchmaker")
	log.Info("matchmaker started", "players", m.players, "interval", m.interval.String())

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			log.Info("matchmaker stopped")
			return
		case <-ticker.C:
			m.drain(log)
		}
	}
}

// drain keeps forming matches until fewer than players waiters remain.
func (m *Matchmaker) drain(log *slog.Logger) {
	for m.engine.QueueLength() >= m.players {
		match, err := m.engine.DequeueCreateMatch(m.adminToken, m.players)
		if err != nil {
			if err != domain.ErrInsufficientPlayers {
				log.Warn("dequeue failed", "error", err)
			}
			return
		}
		log.Info("match created from queue", "match", match.ID, "players", m.players)
	}
}
