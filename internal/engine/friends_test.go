package engine

import (
	"errors"
	"testing"

	"citadel_backend/internal/domain"
)

func TestFriendRequestFlow(t *testing.T) {
	e, _ := newTestEngine()
	registerFunded(e, "alice")
	registerFunded(e, "bob")

	if err := e.SendFriendRequest("alice", "alice"); !errors.Is(err, domain.ErrSelfFriendship) {
		t.Fatalf("self request: err = %v", err)
	}
	if err := e.SendFriendRequest("alice", "ghost"); !errors.Is(err, domain.ErrInvalidProfile) {
		t.Fatalf("unknown recipient: err = %v", err)
	}

	if err := e.SendFriendRequest("alice", "bob"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := e.SendFriendRequest("alice", "bob"); !errors.Is(err, domain.ErrFriendRequestExists) {
		t.Fatalf("duplicate: err = %v", err)
	}
	if err := e.SendFriendRequest("bob", "alice"); !errors.Is(err, domain.ErrFriendRequestExists) {
		t.Fatalf("reverse duplicate: err = %v", err)
	}

	// Only the recipient can accept.
	if err := e.AcceptFriendRequest("alice", "bob"); !errors.Is(err, domain.ErrNoFriendRequest) {
		t.Fatalf("requester accepting: err = %v", err)
	}
	if got := e.PendingRequestsFor("bob"); len(got) != 1 || got[0] != "alice" {
		t.Fatalf("pending = %v", got)
	}
	if err := e.AcceptFriendRequest("bob", "alice"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if got := e.FriendsOf("alice"); len(got) != 1 || got[0] != "bob" {
		t.Fatalf("alice friends = %v", got)
	}
	if got := e.FriendsOf("bob"); len(got) != 1 || got[0] != "alice" {
		t.Fatalf("bob friends = %v", got)
	}
	if err := e.SendFriendRequest("alice", "bob"); !errors.Is(err, domain.ErrAlreadyFriends) {
		t.Fatalf("request to friend: err = %v", err)
	}
}

func TestRejectFriendRequest(t *testing.T) {
	e, _ := newTestEngine()
	registerFunded(e, "alice")
	registerFunded(e, "bob")

	if err := e.RejectFriendRequest("bob", "alice"); !errors.Is(err, domain.ErrNoFriendRequest) {
		t.Fatalf("nothing to reject: err = %v", err)
	}
	if err := e.SendFriendRequest("alice", "bob"); err != nil {
		t.Fatal(err)
	}
	if err := e.RejectFriendRequest("bob", "alice"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	// The edge is gone: a fresh request goes through.
	if err := e.SendFriendRequest("alice", "bob"); err != nil {
		t.Fatalf("resend after reject: %v", err)
	}
}

func TestUnfriend(t *testing.T) {
	e, _ := newTestEngine()
	registerFunded(e, "alice")
	registerFunded(e, "bob")

	if err := e.SendFriendRequest("alice", "bob"); err != nil {
		t.Fatal(err)
	}
	// Pending edges cannot be unfriended.
	if err := e.Unfriend("alice", "bob"); !errors.Is(err, domain.ErrNoFriendRequest) {
		t.Fatalf("unfriend pending: err = %v", err)
	}
	if err := e.AcceptFriendRequest("bob", "alice"); err != nil {
		t.Fatal(err)
	}
	if err := e.Unfriend("bob", "alice"); err != nil {
		t.Fatalf("unfriend: %v", err)
	}
	if got := e.FriendsOf("alice"); len(got) != 0 {
		t.Fatalf("alice friends = %v", got)
	}
}
