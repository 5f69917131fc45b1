package engine

import (
	"sync"

	"citadel_backend/internal/clock"
	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"
	"citadel_backend/internal/random"

	"github.com/google/uuid"
)

// Engine owns every shared resource of the game core: treasury, profiles,
// cards, lobbies, the matchmaking queue, matches, rentals, friendships and
// the admin registry. Each resource root carries its own mutex, so disjoint
// resources proceed in parallel while a single resource is strictly
// serialized. All failure checks run before any mutation: an operation
// either commits fully or returns a typed error with zero side effects.
//
// Time and randomness are injected; the engine never reads a wall clock or
// a global RNG.
type Engine struct {
	clock clock.Clock
	rand  random.Source
	log   *events.Log

	profiles profileStore
	treasury treasuryStore
	cards    cardStore
	lobbies  lobbyStore
	queue    queueStore
	matches  matchStore
	rentals  rentalStore
	friends  friendStore
	admins   adminRegistry
	history  historyStore

	bootstrap string
}

type profileStore struct {
	mu   sync.Mutex
	byID map[string]*domain.Profile
}

type treasuryStore struct {
	mu        sync.Mutex
	currency  int64
	fragments int64
	claimed   map[string]bool
	wallets   map[string]*wallet
}

type cardStore struct {
	mu   sync.Mutex
	byID map[string]*domain.Card
}

type lobbyStore struct {
	mu   sync.Mutex
	byID map[string]*domain.Lobby
}

type queueStore struct {
	mu      sync.Mutex
	waiting []string
}

type matchStore struct {
	mu   sync.Mutex
	byID map[string]*domain.Match
}

type rentalStore struct {
	mu   sync.Mutex
	byID map[string]*domain.RentalGrant
}

type friendStore struct {
	mu sync.Mutex
	// edges keyed from both sides; both entries share one relation record
	edges map[string]map[string]*domain.FriendRelation
}

type adminRegistry struct {
	mu      sync.Mutex
	byToken map[string]string // capability token -> identity
}

type historyStore struct {
	mu      sync.Mutex
	entries []domain.MatchHistory
}

// New builds an engine around the injected providers. bootstrapToken is the
// root admin capability; when empty a fresh one is minted (readable via
// BootstrapToken, meant for the operator only).
func New(c clock.Clock, r random.Source, log *events.Log, bootstrapToken string) *Engine {
	if bootstrapToken == "" {
		bootstrapToken = uuid.NewString()
	}
	e := &Engine{
		clock: c,
		rand:  r,
		log:   log,
	}
	e.profiles.byID = make(map[string]*domain.Profile)
	e.treasury.claimed = make(map[string]bool)
	e.treasury.wallets = make(map[string]*wallet)
	e.cards.byID = make(map[string]*domain.Card)
	e.lobbies.byID = make(map[string]*domain.Lobby)
	e.matches.byID = make(map[string]*domain.Match)
	e.rentals.byID = make(map[string]*domain.RentalGrant)
	e.friends.edges = make(map[string]map[string]*domain.FriendRelation)
	e.admins.byToken = map[string]string{bootstrapToken: "root"}
	e.bootstrap = bootstrapToken
	return e
}

// emit appends exactly one event to the notification log.
func (e *Engine) emit(eventType, resourceID string, fields map[string]any) {
	e.log.Append(events.Event{
		Type:       eventType,
		ResourceID: resourceID,
		Fields:     fields,
		Timestamp:  e.clock.NowMillis(),
	})
}

// Events exposes the notification log for subscribers.
func (e *Engine) Events() *events.Log { return e.log }

// BootstrapToken returns the root admin capability minted at construction.
func (e *Engine) BootstrapToken() string { return e.bootstrap }
