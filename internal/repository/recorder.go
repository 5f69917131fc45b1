package repository

import (
	"context"
	"log/slog"
	"time"

	"citadel_backend/internal/engine"
	"citadel_backend/internal/events"
	"citadel_backend/internal/logger"
)

// Recorder tails the engine's event stream and persists it: every event
// into engine_events, and on each MatchEnded the terminal snapshot into
// match_history. Persistence is best-effort; a database hiccup never
// blocks or fails an engine transaction.
type Recorder struct {
	engine  *engine.Engine
	events  *EventRepository
	history *MatchHistoryRepository
	stopCh  chan struct{}
}

func NewRecorder(e *engine.Engine, eventRepo *EventRepository, historyRepo *MatchHistoryRepository) *Recorder {
	return &Recorder{
		engine:  e,
		events:  eventRepo,
		history: historyRepo,
		stopCh:  make(chan struct{}),
	}
}

// Start launches the tail loop.
func (r *Recorder) Start() {
	go r.run()
}

// Stop ends the tail loop.
func (r *Recorder) Stop() {
	close(r.stopCh)
}

func (r *Recorder) run() {
	ch, cancel := r.engine.Events().Subscribe()
	defer cancel()

	log := logger.With("component", "recorder")
	log.Info("event recorder started")

	for {
		select {
		case <-r.stopCh:
			log.Info("event recorder stopped")
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			r.persist(ev, log)
		}
	}
}

func (r *Recorder) persist(ev events.Event, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.events.Create(ctx, &ev); err != nil {
		log.Warn("persist event failed", "type", ev.Type, "error", err)
	}

	if ev.Type != events.MatchEnded {
		return
	}
	snapshot, err := r.engine.MatchHistoryByID(ev.ResourceID)
	if err != nil {
		log.Warn("match history missing for ended match", "match", ev.ResourceID)
		return
	}
	if err := r.history.Create(ctx, snapshot); err != nil {
		log.Warn("persist match history failed", "match", ev.ResourceID, "error", err)
	}
}
