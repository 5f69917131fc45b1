package ws

import (
	"testing"

	"citadel_backend/internal/events"
)

func TestBroadcastFilter(t *testing.T) {
	hub := NewHub(events.NewLog())

	all := &Client{Send: make(chan []byte, 8)}
	matchOnly := &Client{Filter: "match-1", Send: make(chan []byte, 8)}
	other := &Client{Filter: "match-2", Send: make(chan []byte, 8)}
	hub.register(all)
	hub.register(matchOnly)
	hub.register(other)

	hub.broadcast(events.Event{Type: events.TurnChanged, ResourceID: "match-1"}, []byte("x"))

	if len(all.Send) != 1 {
		t.Fatalf("unfiltered client got %d messages", len(all.Send))
	}
	if len(matchOnly.Send) != 1 {
		t.Fatalf("matching filter got %d messages", len(matchOnly.Send))
	}
	if len(other.Send) != 0 {
		t.Fatalf("non-matching filter got %d messages", len(other.Send))
	}
}

func TestBroadcastDropsWhenFull(t *testing.T) {
	hub := NewHub(events.NewLog())
	slow := &Client{Send: make(chan []byte, 1)}
	hub.register(slow)

	// Second send must not block.
	hub.broadcast(events.Event{Type: events.CardCreated, ResourceID: "a"}, []byte("1"))
	hub.broadcast(events.Event{Type: events.CardCreated, ResourceID: "b"}, []byte("2"))

	if len(slow.Send) != 1 {
		t.Fatalf("buffered %d; want 1", len(slow.Send))
	}
}

func TestUnregisterClosesSend(t *testing.T) {
	hub := NewHub(events.NewLog())
	c := &Client{Send: make(chan []byte, 1)}
	hub.register(c)
	if hub.ClientCount() != 1 {
		t.Fatalf("count = %d", hub.ClientCount())
	}

	hub.unregister(c)
	if hub.ClientCount() != 0 {
		t.Fatalf("count after unregister = %d", hub.ClientCount())
	}
	if _, ok := <-c.Send; ok {
		t.Fatal("send channel open after unregister")
	}
	// Idempotent.
	hub.unregister(c)
}
