package engine

import (
	"errors"
	"testing"

	"citadel_backend/internal/domain"
)

func TestRegisterProfile(t *testing.T) {
	e, _ := newTestEngine()

	p, err := e.RegisterProfile("alice", "Alice", "https://cdn/a.png")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.Rating != defaultRating || p.Played != 0 {
		t.Fatalf("profile %+v", p)
	}

	if _, err := e.RegisterProfile("alice", "Alice Again", ""); !errors.Is(err, domain.ErrDuplicateRegistration) {
		t.Fatalf("duplicate: err = %v", err)
	}
	// The first registration wins.
	got, _ := e.GetProfile("alice")
	if got.Name != "Alice" {
		t.Fatalf("name = %s", got.Name)
	}
}

func TestSetAvatar(t *testing.T) {
	e, _ := newTestEngine()
	if err := e.SetAvatar("ghost", "x"); !errors.Is(err, domain.ErrInvalidProfile) {
		t.Fatalf("unknown profile: err = %v", err)
	}
	if _, err := e.RegisterProfile("alice", "Alice", ""); err != nil {
		t.Fatal(err)
	}
	if err := e.SetAvatar("alice", "https://cdn/new.png"); err != nil {
		t.Fatal(err)
	}
	p, _ := e.GetProfile("alice")
	if p.AvatarURL != "https://cdn/new.png" {
		t.Fatalf("avatar = %s", p.AvatarURL)
	}
}

func TestRecordOutcomes(t *testing.T) {
	e, _ := newTestEngine()
	if _, err := e.RegisterProfile("alice", "Alice", ""); err != nil {
		t.Fatal(err)
	}

	if err := e.RecordWin("bogus", "alice"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("bad token: err = %v", err)
	}
	if err := e.RecordWin(testRootToken, "alice"); err != nil {
		t.Fatal(err)
	}
	if err := e.RecordLoss(testRootToken, "alice"); err != nil {
		t.Fatal(err)
	}

	p, _ := e.GetProfile("alice")
	if p.Played != 2 || p.Won != 1 || p.Lost != 1 {
		t.Fatalf("counters %+v", p)
	}
}

func TestSetRatingFloor(t *testing.T) {
	e, _ := newTestEngine()
	if _, err := e.RegisterProfile("alice", "Alice", ""); err != nil {
		t.Fatal(err)
	}
	if err := e.SetRating(testRootToken, "alice", -50); err != nil {
		t.Fatal(err)
	}
	p, _ := e.GetProfile("alice")
	if p.Rating != 0 {
		t.Fatalf("rating = %d; want 0", p.Rating)
	}
}

func TestTopProfiles(t *testing.T) {
	e, _ := newTestEngine()
	ratings := map[string]int{"a": 900, "b": 1200, "c": 1100, "d": 1200}
	for _, id := range []string{"a", "b", "c", "d"} {
		if _, err := e.RegisterProfile(id, id, ""); err != nil {
			t.Fatal(err)
		}
		if err := e.SetRating(testRootToken, id, ratings[id]); err != nil {
			t.Fatal(err)
		}
	}

	top := e.TopProfiles(3)
	if len(top) != 3 {
		t.Fatalf("len = %d", len(top))
	}
	if top[0].Rating != 1200 || top[1].Rating != 1200 || top[2].Rating != 1100 {
		t.Fatalf("order = %v", top)
	}
}
