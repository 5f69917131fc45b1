package engine

import (
	"errors"
	"testing"

	"citadel_backend/internal/domain"
)

func TestJoinQueue(t *testing.T) {
	e, _ := newTestEngine()
	registerFunded(e, "alice")

	if err := e.JoinQueue("alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := e.JoinQueue("alice"); !errors.Is(err, domain.ErrAlreadyQueued) {
		t.Fatalf("duplicate join: err = %v", err)
	}
	if err := e.JoinQueue("ghost"); !errors.Is(err, domain.ErrInvalidProfile) {
		t.Fatalf("unregistered join: err = %v", err)
	}
	if n := e.QueueLength(); n != 1 {
		t.Fatalf("queue length = %d", n)
	}
}

func TestDequeueCreateMatch(t *testing.T) {
	e, _ := newTestEngine()
	for _, id := range []string{"a", "b", "c"} {
		registerFunded(e, id)
		if err := e.JoinQueue(id); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := e.DequeueCreateMatch("bogus", 2); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("bad token: err = %v", err)
	}
	if _, err := e.DequeueCreateMatch(testRootToken, 1); !errors.Is(err, domain.ErrInsufficientPlayers) {
		t.Fatalf("minPlayers 1: err = %v", err)
	}
	if _, err := e.DequeueCreateMatch(testRootToken, 4); !errors.Is(err, domain.ErrInsufficientPlayers) {
		t.Fatalf("too few waiters: err = %v", err)
	}

	// FIFO: the first two waiters, in order.
	m, err := e.DequeueCreateMatch(testRootToken, 2)
	if err != nil {
		t.Fatalf("dequeue: %v", err)
	}
	if m.Players[0].IdentityID != "a" || m.Players[1].IdentityID != "b" {
		t.Fatalf("players = %v", m.Players)
	}
	if m.State != domain.MatchWaiting {
		t.Fatalf("state = %s", m.State)
	}
	if n := e.QueueLength(); n != 1 {
		t.Fatalf("queue length after dequeue = %d", n)
	}

	// A dequeued player can queue again.
	if err := e.JoinQueue("a"); err != nil {
		t.Fatalf("requeue: %v", err)
	}
}
