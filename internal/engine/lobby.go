package engine

import (
	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"

	"github.com/google/uuid"
)

// CreateLobby opens a new lobby with the caller as leader, holding the
// first player slot, in default unrestricted mode.
func (e *Engine) CreateLobby(identityID string) (*domain.Lobby, error) {
	if _, err := e.GetProfile(identityID); err != nil {
		return nil, err
	}
	l := &domain.Lobby{
		ID:        uuid.NewString(),
		Leader:    identityID,
		Players:   []string{identityID},
		CreatedAt: e.clock.NowMillis(),
	}

	e.lobbies.mu.Lock()
	e.lobbies.byID[l.ID] = l
	snapshot := *l
	e.lobbies.mu.Unlock()

	e.emit(events.LobbyCreated, l.ID, map[string]any{"leader": identityID})
	return &snapshot, nil
}

// SetLobbyMode replaces the lobby's custom-rule settings. Leader only.
func (e *Engine) SetLobbyMode(identityID, lobbyID string, mode domain.LobbyMode) error {
	e.lobbies.mu.Lock()
	l, ok := e.lobbies.byID[lobbyID]
	if !ok {
		e.lobbies.mu.Unlock()
		return domain.ErrInvalidLobby
	}
	if l.Leader != identityID {
		e.lobbies.mu.Unlock()
		return domain.ErrNotLobbyLeader
	}
	l.Mode = mode
	e.lobbies.mu.Unlock()

	e.emit(events.LobbyModeSet, lobbyID, map[string]any{"disabled_cards": len(mode.DisabledCards)})
	return nil
}

// JoinLobby adds the caller as a player or spectator. Duplicate membership
// is rejected; the sixth player is rejected; spectators are unbounded.
func (e *Engine) JoinLobby(identityID, lobbyID string, asSpectator bool) (*domain.Lobby, error) {
	if _, err := e.GetProfile(identityID); err != nil {
		return nil, err
	}

	e.lobbies.mu.Lock()
	l, ok := e.lobbies.byID[lobbyID]
	if !ok {
		e.lobbies.mu.Unlock()
		return nil, domain.ErrInvalidLobby
	}
	if l.HasMember(identityID) {
		e.lobbies.mu.Unlock()
		return nil, domain.ErrAlreadyInLobby
	}
	if asSpectator {
		l.Spectators = append(l.Spectators, identityID)
	} else {
		if len(l.Players) >= domain.MaxLobbyPlayers {
			e.lobbies.mu.Unlock()
			return nil, domain.ErrLobbyFull
		}
		l.Players = append(l.Players, identityID)
	}
	snapshot := *l
	e.lobbies.mu.Unlock()

	e.emit(events.LobbyJoined, lobbyID, map[string]any{
		"identity":  identityID,
		"spectator": asSpectator,
	})
	return &snapshot, nil
}

// GetLobby returns a copy of the lobby.
func (e *Engine) GetLobby(lobbyID string) (*domain.Lobby, error) {
	e.lobbies.mu.Lock()
	defer e.lobbies.mu.Unlock()
	l, ok := e.lobbies.byID[lobbyID]
	if !ok {
		return nil, domain.ErrInvalidLobby
	}
	snapshot := *l
	return &snapshot, nil
}

// StartMatch converts the lobby into a Waiting match. Leader only, needs
// at least two players. Hands start empty and the draw pile stays at zero
// until explicit deal calls; the deck inventory is the lobby's card-type
// inventory minus its disabled cards.
func (e *Engine) StartMatch(identityID, lobbyID string) (*domain.Match, error) {
	e.lobbies.mu.Lock()
	l, ok := e.lobbies.byID[lobbyID]
	if !ok {
		e.lobbies.mu.Unlock()
		return nil, domain.ErrInvalidLobby
	}
	if l.Leader != identityID {
		e.lobbies.mu.Unlock()
		return nil, domain.ErrNotLobbyLeader
	}
	if len(l.Players) < 2 {
		e.lobbies.mu.Unlock()
		return nil, domain.ErrInsufficientPlayers
	}
	players := append([]string(nil), l.Players...)
	spectators := append([]string(nil), l.Spectators...)
	disabled := make(map[domain.CardTypeID]bool, len(l.Mode.DisabledCards))
	for _, id := range l.Mode.DisabledCards {
		disabled[id] = true
	}
	delete(e.lobbies.byID, lobbyID)
	e.lobbies.mu.Unlock()

	var inventory []domain.CardTypeID
	for _, id := range DefaultDeckInventory {
		if !disabled[id] {
			inventory = append(inventory, id)
		}
	}

	m := e.newMatch(players, spectators, inventory)
	e.emit(events.MatchStarted, m.ID, map[string]any{
		"lobby":   lobbyID,
		"players": len(players),
	})
	return m, nil
}

// newMatch builds and stores a Waiting match with empty hands.
func (e *Engine) newMatch(players, spectators []string, inventory []domain.CardTypeID) *domain.Match {
	states := make([]domain.PlayerState, len(players))
	for i, id := range players {
		states[i] = domain.PlayerState{IdentityID: id, Hand: []string{}}
	}
	m := &domain.Match{
		ID:          uuid.NewString(),
		Players:     states,
		Spectators:  spectators,
		Deck:        domain.Deck{Cards: inventory, Discard: []domain.CardTypeID{}},
		State:       domain.MatchWaiting,
		SpecialSlot: -1,
		CreatedAt:   e.clock.NowMillis(),
	}

	e.matches.mu.Lock()
	e.matches.byID[m.ID] = m
	snapshot := *m
	e.matches.mu.Unlock()
	return &snapshot
}
