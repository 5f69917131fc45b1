package engine

import (
	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"
)

// The match engine tracks turn/phase state for the external referee. Turn,
// direction, attack counter and the special slot are free-form: sequencing
// is the referee's responsibility, not the engine's. Every mutating call is
// privileged and rejected once the match has ended.

// withMatch runs fn on the locked match after the shared privileged and
// terminal-state checks.
func (e *Engine) withMatch(token, matchID string, fn func(m *domain.Match) error) error {
	if _, err := e.Authorize(token); err != nil {
		return err
	}
	e.matches.mu.Lock()
	defer e.matches.mu.Unlock()
	m, ok := e.matches.byID[matchID]
	if !ok {
		return domain.ErrInvalidGameEntry
	}
	if m.State == domain.MatchEnded {
		return domain.ErrMatchEnded
	}
	return fn(m)
}

// GetMatch returns a copy of the match.
func (e *Engine) GetMatch(matchID string) (*domain.Match, error) {
	e.matches.mu.Lock()
	defer e.matches.mu.Unlock()
	m, ok := e.matches.byID[matchID]
	if !ok {
		return nil, domain.ErrInvalidGameEntry
	}
	snapshot := *m
	return &snapshot, nil
}

// AssignCard mints a card of the given type straight into a player's hand.
func (e *Engine) AssignCard(token, matchID string, playerIndex int, typeID domain.CardTypeID) error {
	var cardID string
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		if playerIndex < 0 || playerIndex >= len(m.Players) {
			return domain.ErrInvalidPlayer
		}
		if _, ok := Catalogue[typeID]; !ok {
			return domain.ErrInvalidCard
		}
		card := e.mintCard(typeID, 0, m.Players[playerIndex].IdentityID)
		e.cards.mu.Lock()
		e.cards.byID[card.ID] = card
		e.cards.mu.Unlock()
		m.Players[playerIndex].Hand = append(m.Players[playerIndex].Hand, card.ID)
		cardID = card.ID
		return nil
	})
	if err != nil {
		return err
	}
	e.emit(events.CardAssigned, matchID, map[string]any{
		"player": playerIndex,
		"card":   cardID,
		"type":   string(typeID),
	})
	return nil
}

// DrawFromPile moves one card-type unit from the deck to the discard pile
// and mints the matching card into the player's hand. Conservation holds:
// len(deck)+len(discard) never changes.
func (e *Engine) DrawFromPile(token, matchID string, playerIndex, cardIndex int) error {
	var cardID string
	var typeID domain.CardTypeID
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		if playerIndex < 0 || playerIndex >= len(m.Players) {
			return domain.ErrInvalidPlayer
		}
		if m.Deck.DrawPileSize <= 0 {
			return domain.ErrEmptyDrawPile
		}
		if cardIndex < 0 || cardIndex >= len(m.Deck.Cards) {
			return domain.ErrInvalidDeckIndex
		}
		typeID = m.Deck.Cards[cardIndex]
		m.Deck.Cards = append(m.Deck.Cards[:cardIndex], m.Deck.Cards[cardIndex+1:]...)
		m.Deck.Discard = append(m.Deck.Discard, typeID)
		m.Deck.DrawPileSize--

		card := e.mintCard(typeID, 0, m.Players[playerIndex].IdentityID)
		e.cards.mu.Lock()
		e.cards.byID[card.ID] = card
		e.cards.mu.Unlock()
		m.Players[playerIndex].Hand = append(m.Players[playerIndex].Hand, card.ID)
		cardID = card.ID
		return nil
	})
	if err != nil {
		return err
	}
	e.emit(events.CardPlayed, matchID, map[string]any{
		"player": playerIndex,
		"card":   cardID,
		"type":   string(typeID),
	})
	return nil
}

// SetDrawPileSize is the explicit deal call: it sizes the draw pile after
// match creation. The size can never exceed the remaining deck.
func (e *Engine) SetDrawPileSize(token, matchID string, size int) error {
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		if size < 0 || size > len(m.Deck.Cards) {
			return domain.ErrInvalidDeckIndex
		}
		m.Deck.DrawPileSize = size
		return nil
	})
	if err != nil {
		return err
	}
	e.emit(events.MatchStateChanged, matchID, map[string]any{"draw_pile_size": size})
	return nil
}

// SetTurn points the turn index at an arbitrary player.
func (e *Engine) SetTurn(token, matchID string, turn int) error {
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		m.Turn = turn
		return nil
	})
	if err != nil {
		return err
	}
	e.emit(events.TurnChanged, matchID, map[string]any{"turn": turn})
	return nil
}

// SetReversed flips the play direction flag.
func (e *Engine) SetReversed(token, matchID string, reversed bool) error {
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		m.IsReversed = reversed
		return nil
	})
	if err != nil {
		return err
	}
	e.emit(events.TurnChanged, matchID, map[string]any{"is_reversed": reversed})
	return nil
}

// SetAttacks sets the pending-attack counter.
func (e *Engine) SetAttacks(token, matchID string, attacks int) error {
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		m.Attacks = attacks
		return nil
	})
	if err != nil {
		return err
	}
	e.emit(events.TurnChanged, matchID, map[string]any{"attacks_remaining": attacks})
	return nil
}

// SetSpecialSlot places or clears (-1) the special marker index.
func (e *Engine) SetSpecialSlot(token, matchID string, slot int) error {
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		m.SpecialSlot = slot
		return nil
	})
	if err != nil {
		return err
	}
	e.emit(events.TurnChanged, matchID, map[string]any{"special_slot": slot})
	return nil
}

// PlayCard removes a card from the player's hand onto the discard side of
// the table. Effect resolution stays with the referee.
func (e *Engine) PlayCard(token, matchID string, playerIndex int, cardID string) error {
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		if playerIndex < 0 || playerIndex >= len(m.Players) {
			return domain.ErrInvalidPlayer
		}
		hand := m.Players[playerIndex].Hand
		for i, id := range hand {
			if id == cardID {
				m.Players[playerIndex].Hand = append(hand[:i], hand[i+1:]...)
				return nil
			}
		}
		return domain.ErrCardNotInHand
	})
	if err != nil {
		return err
	}
	e.emit(events.CardPlayed, matchID, map[string]any{
		"player": playerIndex,
		"card":   cardID,
	})
	return nil
}

// MarkDefeated takes a player out of the running.
func (e *Engine) MarkDefeated(token, matchID string, playerIndex int, reason domain.DefeatReason) error {
	var identity string
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		if playerIndex < 0 || playerIndex >= len(m.Players) {
			return domain.ErrInvalidPlayer
		}
		m.Players[playerIndex].Defeated = true
		m.Players[playerIndex].DefeatReason = reason
		identity = m.Players[playerIndex].IdentityID
		return nil
	})
	if err != nil {
		return err
	}
	e.emit(events.PlayerDefeated, matchID, map[string]any{
		"identity": identity,
		"reason":   string(reason),
	})
	return nil
}

// SetWinner records the winner. Independent of the Ended transition.
func (e *Engine) SetWinner(token, matchID, identityID string) error {
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		for i := range m.Players {
			if m.Players[i].IdentityID == identityID {
				m.Winner = identityID
				return nil
			}
		}
		return domain.ErrInvalidPlayer
	})
	if err != nil {
		return err
	}
	e.emit(events.WinnerSet, matchID, map[string]any{"winner": identityID})
	return nil
}

// UpdateState advances the match lifecycle. Transitions only move forward;
// the Ended transition timestamps the match, records the MatchHistory
// snapshot and applies rating deltas to every player's profile.
func (e *Engine) UpdateState(token, matchID string, state domain.MatchState) error {
	if state != domain.MatchWaiting && state != domain.MatchInProgress && state != domain.MatchEnded {
		return domain.ErrInvalidStateTransition
	}

	var history *domain.MatchHistory
	err := e.withMatch(token, matchID, func(m *domain.Match) error {
		if state <= m.State {
			return domain.ErrInvalidStateTransition
		}
		m.State = state
		if state != domain.MatchEnded {
			return nil
		}
		m.EndedAt = e.clock.NowMillis()
		history = e.settleMatch(m)
		return nil
	})
	if err != nil {
		return err
	}

	if history != nil {
		e.history.mu.Lock()
		e.history.entries = append(e.history.entries, *history)
		e.history.mu.Unlock()
		e.emit(events.MatchEnded, matchID, map[string]any{
			"winner":  history.Winner,
			"players": len(history.Results),
		})
		return nil
	}
	e.emit(events.MatchStateChanged, matchID, map[string]any{"state": state.String()})
	return nil
}

// settleMatch builds the terminal snapshot and applies counters and ELO
// deltas to profiles. Called with the match lock held.
func (e *Engine) settleMatch(m *domain.Match) *domain.MatchHistory {
	h := &domain.MatchHistory{
		MatchID: m.ID,
		Winner:  m.Winner,
		EndedAt: m.EndedAt,
	}

	e.profiles.mu.Lock()
	defer e.profiles.mu.Unlock()

	var winner *domain.Profile
	if m.Winner != "" {
		winner = e.profiles.byID[m.Winner]
	}

	for _, ps := range m.Players {
		p := e.profiles.byID[ps.IdentityID]
		result := domain.PlayerResult{IdentityID: ps.IdentityID}
		if p == nil {
			h.Results = append(h.Results, result)
			continue
		}
		p.Played++
		if winner != nil && ps.IdentityID == m.Winner {
			result.Won = true
			p.Won++
		} else {
			p.Lost++
			if winner != nil {
				d := eloDelta(winner.Rating, p.Rating, len(m.Players))
				result.RatingDelta = -d
				p.Rating = max(0, p.Rating-d)
			}
		}
		h.Results = append(h.Results, result)
	}

	// The winner's gain is the sum of what each loser conceded.
	if winner != nil {
		gain := 0
		for _, r := range h.Results {
			gain -= r.RatingDelta
		}
		for i := range h.Results {
			if h.Results[i].IdentityID == m.Winner {
				h.Results[i].RatingDelta = gain
			}
		}
		winner.Rating += gain
	}
	return h
}

// MatchHistoryByID returns the terminal snapshot of an ended match.
func (e *Engine) MatchHistoryByID(matchID string) (*domain.MatchHistory, error) {
	e.history.mu.Lock()
	defer e.history.mu.Unlock()
	for i := range e.history.entries {
		if e.history.entries[i].MatchID == matchID {
			snapshot := e.history.entries[i]
			return &snapshot, nil
		}
	}
	return nil, domain.ErrInvalidGameEntry
}

// MatchHistoryOf lists recorded snapshots involving the identity.
func (e *Engine) MatchHistoryOf(identityID string) []domain.MatchHistory {
	e.history.mu.Lock()
	defer e.history.mu.Unlock()
	var out []domain.MatchHistory
	for _, h := range e.history.entries {
		for _, r := range h.Results {
			if r.IdentityID == identityID {
				out = append(out, h)
				break
			}
		}
	}
	return out
}
