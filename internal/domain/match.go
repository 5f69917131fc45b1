package domain

// MatchState is the match lifecycle state. Transitions only move forward.
type MatchState int

const (
	MatchWaiting    MatchState = 1
	MatchInProgress MatchState = 2
	MatchEnded      MatchState = 3
)

func (s MatchState) String() string {
	switch s {
	case MatchWaiting:
		return "waiting"
	case MatchInProgress:
		return "in_progress"
	case MatchEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// DefeatReason records why a player went out.
type DefeatReason string

const (
	DefeatExplosion DefeatReason = "explosion"
	DefeatTimeout   DefeatReason = "timeout"
	DefeatLeave     DefeatReason = "leave"
)

// PlayerState is the per-player mutable in-match record.
type PlayerState struct {
	IdentityID   string       `json:"identity_id"`
	Hand         []string     `json:"hand"`
	Marked       []string     `json:"marked,omitempty"`
	Defeated     bool         `json:"defeated"`
	DefeatReason DefeatReason `json:"defeat_reason,omitempty"`
}

// Deck tracks the shared remaining card types and the discard pile.
// Invariant: DrawPileSize + len(Discard) stays constant between deals.
type Deck struct {
	Cards        []CardTypeID `json:"cards"`
	Discard      []CardTypeID `json:"discard"`
	DrawPileSize int          `json:"draw_pile_size"`
}

// Match is the shared per-match resource mutated turn-by-turn by the
// external referee through privileged calls.
type Match struct {
	ID         string        `json:"id"`
	Players    []PlayerState `json:"players"`
	Spectators []string      `json:"spectators"`
	Deck       Deck          `json:"deck"`

	State      MatchState `json:"state"`
	Winner     string     `json:"winner,omitempty"`
	Turn       int        `json:"turn"`
	IsReversed bool       `json:"is_reversed"`
	Attacks    int        `json:"attacks_remaining"`
	// SpecialSlot is the imploding-kitten style marker position; -1 = unset.
	SpecialSlot int `json:"special_slot"`

	CreatedAt int64 `json:"created_at"`
	EndedAt   int64 `json:"ended_at,omitempty"`
}

// PlayerResult is the per-player outcome recorded in match history.
type PlayerResult struct {
	IdentityID  string `json:"identity_id"`
	Won         bool   `json:"won"`
	RatingDelta int    `json:"rating_delta"`
}

// MatchHistory is the terminal snapshot recorded once a match ends.
type MatchHistory struct {
	MatchID string         `json:"match_id"`
	Winner  string         `json:"winner,omitempty"`
	Results []PlayerResult `json:"results"`
	EndedAt int64          `json:"ended_at"`
}
