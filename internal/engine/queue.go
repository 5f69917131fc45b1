package engine

import (
	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"
)

// JoinQueue appends the identity to the FIFO matchmaking queue.
func (e *Engine) JoinQueue(identityID string) error {
	if _, err := e.GetProfile(identityID); err != nil {
		return err
	}

	e.queue.mu.Lock()
	for _, id := range e.queue.waiting {
		if id == identityID {
			e.queue.mu.Unlock()
			return domain.ErrAlreadyQueued
		}
	}
	e.queue.waiting = append(e.queue.waiting, identityID)
	position := len(e.queue.waiting)
	e.queue.mu.Unlock()

	e.emit(events.QueueJoined, identityID, map[string]any{"position": position})
	return nil
}

// QueueLength reports how many identities are waiting.
func (e *Engine) QueueLength() int {
	e.queue.mu.Lock()
	defer e.queue.mu.Unlock()
	return len(e.queue.waiting)
}

// DequeueCreateMatch removes exactly the first minPlayers waiters in FIFO
// order and creates a Waiting match from them. Privileged; used by the
// matchmaking bot.
func (e *Engine) DequeueCreateMatch(token string, minPlayers int) (*domain.Match, error) {
	if _, err := e.Authorize(token); err != nil {
		return nil, err
	}
	if minPlayers < 2 {
		return nil, domain.ErrInsufficientPlayers
	}

	e.queue.mu.Lock()
	if len(e.queue.waiting) < minPlayers {
		e.queue.mu.Unlock()
		return nil, domain.ErrInsufficientPlayers
	}
	players := append([]string(nil), e.queue.waiting[:minPlayers]...)
	e.queue.waiting = append([]string(nil), e.queue.waiting[minPlayers:]...)
	e.queue.mu.Unlock()

	m := e.newMatch(players, nil, append([]domain.CardTypeID(nil), DefaultDeckInventory...))
	e.emit(events.MatchCreated, m.ID, map[string]any{"players": len(players), "source": "queue"})
	return m, nil
}
