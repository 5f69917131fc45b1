package engine

import (
	"errors"
	"testing"

	"citadel_backend/internal/domain"
)

// startTwoPlayerMatch sets up a started lobby match between alice and bob.
func startTwoPlayerMatch(t *testing.T, e *Engine) *domain.Match {
	t.Helper()
	registerFunded(e, "alice")
	registerFunded(e, "bob")
	l, err := e.CreateLobby("alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.JoinLobby("bob", l.ID, false); err != nil {
		t.Fatal(err)
	}
	m, err := e.StartMatch("alice", l.ID)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestAssignCard(t *testing.T) {
	e, _ := newTestEngine()
	m := startTwoPlayerMatch(t, e)

	if err := e.AssignCard(testRootToken, m.ID, 0, domain.CardDefuse); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := e.AssignCard(testRootToken, m.ID, 5, domain.CardDefuse); !errors.Is(err, domain.ErrInvalidPlayer) {
		t.Fatalf("bad index: err = %v", err)
	}
	if err := e.AssignCard(testRootToken, m.ID, 0, "not_a_card"); !errors.Is(err, domain.ErrInvalidCard) {
		t.Fatalf("bad type: err = %v", err)
	}
	if err := e.AssignCard("bogus", m.ID, 0, domain.CardDefuse); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("bad token: err = %v", err)
	}

	got, err := e.GetMatch(m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Players[0].Hand) != 1 {
		t.Fatalf("hand size = %d; want 1", len(got.Players[0].Hand))
	}
	// The minted card belongs to the player.
	card, err := e.GetCard(got.Players[0].Hand[0])
	if err != nil {
		t.Fatal(err)
	}
	if card.Owner != "alice" || card.TypeID != domain.CardDefuse {
		t.Fatalf("unexpected card %+v", card)
	}
}

func TestDrawFromPileConservation(t *testing.T) {
	e, _ := newTestEngine()
	m := startTwoPlayerMatch(t, e)
	total := len(m.Deck.Cards)

	// Nothing dealt yet.
	if err := e.DrawFromPile(testRootToken, m.ID, 0, 0); !errors.Is(err, domain.ErrEmptyDrawPile) {
		t.Fatalf("pre-deal draw: err = %v", err)
	}

	if err := e.SetDrawPileSize(testRootToken, m.ID, 3); err != nil {
		t.Fatal(err)
	}
	if err := e.SetDrawPileSize(testRootToken, m.ID, total+1); !errors.Is(err, domain.ErrInvalidDeckIndex) {
		t.Fatalf("oversized deal: err = %v", err)
	}

	if err := e.DrawFromPile(testRootToken, m.ID, 0, 0); err != nil {
		t.Fatalf("draw: %v", err)
	}
	got, err := e.GetMatch(m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Deck.DrawPileSize != 2 {
		t.Fatalf("pile size = %d; want 2", got.Deck.DrawPileSize)
	}
	if len(got.Deck.Cards)+len(got.Deck.Discard) != total {
		t.Fatalf("conservation broken: %d deck + %d discard != %d",
			len(got.Deck.Cards), len(got.Deck.Discard), total)
	}
	if len(got.Players[0].Hand) != 1 {
		t.Fatalf("hand size = %d", len(got.Players[0].Hand))
	}

	if err := e.DrawFromPile(testRootToken, m.ID, 0, total); !errors.Is(err, domain.ErrInvalidDeckIndex) {
		t.Fatalf("out-of-range index: err = %v", err)
	}
}

func TestPlayCard(t *testing.T) {
	e, _ := newTestEngine()
	m := startTwoPlayerMatch(t, e)
	if err := e.AssignCard(testRootToken, m.ID, 0, domain.CardSkip); err != nil {
		t.Fatal(err)
	}
	got, _ := e.GetMatch(m.ID)
	cardID := got.Players[0].Hand[0]

	if err := e.PlayCard(testRootToken, m.ID, 1, cardID); !errors.Is(err, domain.ErrCardNotInHand) {
		t.Fatalf("wrong hand: err = %v", err)
	}
	if err := e.PlayCard(testRootToken, m.ID, 0, cardID); err != nil {
		t.Fatalf("play: %v", err)
	}
	got, _ = e.GetMatch(m.ID)
	if len(got.Players[0].Hand) != 0 {
		t.Fatal("card still in hand")
	}
	if err := e.PlayCard(testRootToken, m.ID, 0, cardID); !errors.Is(err, domain.ErrCardNotInHand) {
		t.Fatalf("replay: err = %v", err)
	}
}

func TestTurnControls(t *testing.T) {
	e, _ := newTestEngine()
	m := startTwoPlayerMatch(t, e)

	if err := e.SetTurn(testRootToken, m.ID, 1); err != nil {
		t.Fatal(err)
	}
	if err := e.SetReversed(testRootToken, m.ID, true); err != nil {
		t.Fatal(err)
	}
	if err := e.SetAttacks(testRootToken, m.ID, 2); err != nil {
		t.Fatal(err)
	}
	if err := e.SetSpecialSlot(testRootToken, m.ID, 4); err != nil {
		t.Fatal(err)
	}

	got, _ := e.GetMatch(m.ID)
	if got.Turn != 1 || !got.IsReversed || got.Attacks != 2 || got.SpecialSlot != 4 {
		t.Fatalf("unexpected state %+v", got)
	}
}

func TestMarkDefeated(t *testing.T) {
	e, _ := newTestEngine()
	m := startTwoPlayerMatch(t, e)

	if err := e.MarkDefeated(testRootToken, m.ID, 1, domain.DefeatExplosion); err != nil {
		t.Fatal(err)
	}
	got, _ := e.GetMatch(m.ID)
	if !got.Players[1].Defeated || got.Players[1].DefeatReason != domain.DefeatExplosion {
		t.Fatalf("player state %+v", got.Players[1])
	}
}

func TestUpdateStateForwardOnly(t *testing.T) {
	e, _ := newTestEngine()
	m := startTwoPlayerMatch(t, e)

	if err := e.UpdateState(testRootToken, m.ID, domain.MatchInProgress); err != nil {
		t.Fatal(err)
	}
	if err := e.UpdateState(testRootToken, m.ID, domain.MatchWaiting); !errors.Is(err, domain.ErrInvalidStateTransition) {
		t.Fatalf("backward transition: err = %v", err)
	}
	if err := e.UpdateState(testRootToken, m.ID, domain.MatchInProgress); !errors.Is(err, domain.ErrInvalidStateTransition) {
		t.Fatalf("same state: err = %v", err)
	}
}

func TestMatchSettlement(t *testing.T) {
	e, _ := newTestEngine()
	m := startTwoPlayerMatch(t, e)

	if err := e.UpdateState(testRootToken, m.ID, domain.MatchInProgress); err != nil {
		t.Fatal(err)
	}
	if err := e.SetWinner(testRootToken, m.ID, "ghost"); !errors.Is(err, domain.ErrInvalidPlayer) {
		t.Fatalf("non-player winner: err = %v", err)
	}
	if err := e.SetWinner(testRootToken, m.ID, "alice"); err != nil {
		t.Fatal(err)
	}
	if err := e.UpdateState(testRootToken, m.ID, domain.MatchEnded); err != nil {
		t.Fatal(err)
	}

	// Equal ratings, two players: the loser concedes K/2 = 16.
	alice, _ := e.GetProfile("alice")
	bob, _ := e.GetProfile("bob")
	if alice.Rating != 1016 || bob.Rating != 984 {
		t.Fatalf("ratings = %d / %d; want 1016 / 984", alice.Rating, bob.Rating)
	}
	if alice.Played != 1 || alice.Won != 1 || alice.Lost != 0 {
		t.Fatalf("alice counters %+v", alice)
	}
	if bob.Played != 1 || bob.Won != 0 || bob.Lost != 1 {
		t.Fatalf("bob counters %+v", bob)
	}

	got, _ := e.GetMatch(m.ID)
	if got.State != domain.MatchEnded || got.EndedAt == 0 {
		t.Fatalf("terminal state %+v", got)
	}

	history := e.MatchHistoryOf("bob")
	if len(history) != 1 || history[0].Winner != "alice" || len(history[0].Results) != 2 {
		t.Fatalf("history %+v", history)
	}
	for _, r := range history[0].Results {
		switch r.IdentityID {
		case "alice":
			if !r.Won || r.RatingDelta != 16 {
				t.Fatalf("alice result %+v", r)
			}
		case "bob":
			if r.Won || r.RatingDelta != -16 {
				t.Fatalf("bob result %+v", r)
			}
		}
	}
}

func TestEndedMatchRejectsMutation(t *testing.T) {
	e, _ := newTestEngine()
	m := startTwoPlayerMatch(t, e)
	if err := e.UpdateState(testRootToken, m.ID, domain.MatchInProgress); err != nil {
		t.Fatal(err)
	}
	if err := e.UpdateState(testRootToken, m.ID, domain.MatchEnded); err != nil {
		t.Fatal(err)
	}

	if err := e.SetTurn(testRootToken, m.ID, 1); !errors.Is(err, domain.ErrMatchEnded) {
		t.Fatalf("set turn: err = %v", err)
	}
	if err := e.AssignCard(testRootToken, m.ID, 0, domain.CardSkip); !errors.Is(err, domain.ErrMatchEnded) {
		t.Fatalf("assign: err = %v", err)
	}
	if err := e.MarkDefeated(testRootToken, m.ID, 0, domain.DefeatLeave); !errors.Is(err, domain.ErrMatchEnded) {
		t.Fatalf("defeat: err = %v", err)
	}
	// Reads still work.
	if _, err := e.GetMatch(m.ID); err != nil {
		t.Fatalf("read after end: %v", err)
	}
}

func TestEloDelta(t *testing.T) {
	cases := []struct {
		winner, loser, players, want int
	}{
		{1000, 1000, 2, 16},
		{1000, 1000, 5, 4},
		{1200, 1000, 2, 8},
		{1000, 1200, 2, 24},
	}
	for _, tc := range cases {
		if got := eloDelta(tc.winner, tc.loser, tc.players); got != tc.want {
			t.Fatalf("eloDelta(%d, %d, %d) = %d; want %d",
				tc.winner, tc.loser, tc.players, got, tc.want)
		}
	}
}

func TestRatingFloor(t *testing.T) {
	e, _ := newTestEngine()
	m := startTwoPlayerMatch(t, e)
	// Evenly matched at a rating below the full delta.
	if err := e.SetRating(testRootToken, "alice", 5); err != nil {
		t.Fatal(err)
	}
	if err := e.SetRating(testRootToken, "bob", 5); err != nil {
		t.Fatal(err)
	}
	if err := e.SetWinner(testRootToken, m.ID, "alice"); err != nil {
		t.Fatal(err)
	}
	if err := e.UpdateState(testRootToken, m.ID, domain.MatchEnded); err != nil {
		t.Fatal(err)
	}
	bob, _ := e.GetProfile("bob")
	if bob.Rating != 0 {
		t.Fatalf("rating = %d; want floor 0", bob.Rating)
	}
}
