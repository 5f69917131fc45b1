package engine

import (
	"errors"
	"testing"
	"time"

	"citadel_backend/internal/domain"
)

// setupRental draws a card for the owner and creates a grant on it.
func setupRental(t *testing.T, e *Engine, period int64, uses int, fee int64) *domain.RentalGrant {
	t.Helper()
	registerFunded(e, "owner")
	registerFunded(e, "renter")
	card, err := e.Draw("owner", domain.DrawPrice)
	if err != nil {
		t.Fatal(err)
	}
	g, err := e.CreateRental("owner", card.ID, period, uses, fee)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCreateRentalBounds(t *testing.T) {
	e, _ := newTestEngine(0, 0)
	registerFunded(e, "owner")
	card, err := e.Draw("owner", domain.DrawPrice)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		period int64
		uses   int
		want   error
	}{
		{"zero period", 0, 10, domain.ErrInvalidRentalPeriod},
		{"period over cap", domain.MaxRentalPeriod + 1, 10, domain.ErrInvalidRentalPeriod},
		{"zero uses", 1000, 0, domain.ErrInvalidUses},
		{"uses over cap", 1000, domain.MaxRentalUses + 1, domain.ErrInvalidUses},
	}
	for _, tc := range cases {
		if _, err := e.CreateRental("owner", card.ID, tc.period, tc.uses, 10); !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v; want %v", tc.name, err, tc.want)
		}
	}

	if _, err := e.CreateRental("owner", "missing", 1000, 10, 10); !errors.Is(err, domain.ErrInvalidCard) {
		t.Fatalf("missing card: err = %v", err)
	}
}

func TestRentalLifecycle(t *testing.T) {
	e, c := newTestEngine(0, 0)
	period := int64((24 * time.Hour).Milliseconds())
	g := setupRental(t, e, period, 2, 100)

	if _, err := e.Rent("renter", g.ID, 50); !errors.Is(err, domain.ErrIncorrectPaymentAmount) {
		t.Fatalf("underpayment: err = %v", err)
	}

	rented, err := e.Rent("renter", g.ID, 100)
	if err != nil {
		t.Fatalf("rent: %v", err)
	}
	if rented.Renter != "renter" || rented.Expiry != c.Millis+period {
		t.Fatalf("grant %+v", rented)
	}
	// Fee flows straight to the owner.
	if currency, _ := e.WalletBalances("owner"); currency != domain.InitialRewardCurrency-domain.DrawPrice+100 {
		t.Fatalf("owner currency = %d", currency)
	}
	if currency, _ := e.WalletBalances("renter"); currency != domain.InitialRewardCurrency-100 {
		t.Fatalf("renter currency = %d", currency)
	}

	if _, err := e.Rent("other", g.ID, 100); !errors.Is(err, domain.ErrRentalActive) {
		t.Fatalf("double rent: err = %v", err)
	}

	if _, err := e.UseRental("owner", g.ID); !errors.Is(err, domain.ErrNotRenter) {
		t.Fatalf("owner use: err = %v", err)
	}
	used, err := e.UseRental("renter", g.ID)
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	if used.UsesLeft != 1 {
		t.Fatalf("uses left = %d", used.UsesLeft)
	}

	// Still inside the period with uses remaining: cannot end.
	if err := e.EndRental(g.ID); !errors.Is(err, domain.ErrRentalNotExpired) {
		t.Fatalf("early end: err = %v", err)
	}

	if _, err := e.UseRental("renter", g.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := e.UseRental("renter", g.ID); !errors.Is(err, domain.ErrNoUsesLeft) {
		t.Fatalf("exhausted use: err = %v", err)
	}

	// Uses exhausted: ending is allowed before expiry.
	if err := e.EndRental(g.ID); err != nil {
		t.Fatalf("end: %v", err)
	}
	got, err := e.GetRental(g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Renter != "" || got.Active(c.Millis) {
		t.Fatalf("grant not reset %+v", got)
	}
}

func TestRentalExpiry(t *testing.T) {
	e, c := newTestEngine(0, 0)
	period := int64(time.Hour.Milliseconds())
	g := setupRental(t, e, period, 5, 100)

	if _, err := e.Rent("renter", g.ID, 100); err != nil {
		t.Fatal(err)
	}
	c.Advance(2 * time.Hour)

	if _, err := e.UseRental("renter", g.ID); !errors.Is(err, domain.ErrRentalExpired) {
		t.Fatalf("expired use: err = %v", err)
	}
	if err := e.EndRental(g.ID); err != nil {
		t.Fatalf("end after expiry: %v", err)
	}

	// A reset grant can be rented again.
	if _, err := e.Rent("renter", g.ID, 100); err != nil {
		t.Fatalf("re-rent: %v", err)
	}
}

func TestRentForeignCard(t *testing.T) {
	e, _ := newTestEngine(0, 0)
	registerFunded(e, "owner")
	registerFunded(e, "mallory")
	card, err := e.Draw("owner", domain.DrawPrice)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.CreateRental("mallory", card.ID, 1000, 10, 10); !errors.Is(err, domain.ErrNotCardOwner) {
		t.Fatalf("err = %v", err)
	}
}
