package domain

// MaxLobbyPlayers bounds player slots; spectators are unbounded.
const MaxLobbyPlayers = 5

// LobbyMode carries the custom-rule settings for a lobby. An empty
// DisabledCards list is the default unrestricted mode.
type LobbyMode struct {
	DisabledCards []CardTypeID `json:"disabled_cards,omitempty"`
}

// Lobby is the pre-match staging group. The leader counts against the
// player limit.
type Lobby struct {
	ID         string    `json:"id"`
	Leader     string    `json:"leader"`
	Players    []string  `json:"players"`
	Spectators []string  `json:"spectators"`
	Mode       LobbyMode `json:"mode"`
	CreatedAt  int64     `json:"created_at"`
}

// HasMember reports whether the identity holds any slot in the lobby.
func (l *Lobby) HasMember(identity string) bool {
	for _, p := range l.Players {
		if p == identity {
			return true
		}
	}
	for _, s := range l.Spectators {
		if s == identity {
			return true
		}
	}
	return false
}
