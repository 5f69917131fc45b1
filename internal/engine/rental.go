package engine

import (
	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"

	"github.com/google/uuid"
)

// Rentals lend a card out for a bounded period and number of uses. The fee
// goes straight to the owner when the grant is rented; there is no escrow
// and early termination refunds nothing.

// CreateRental derives a lending grant from a caller-owned card.
func (e *Engine) CreateRental(identityID, cardID string, period int64, uses int, fee int64) (*domain.RentalGrant, error) {
	if period <= 0 || period > domain.MaxRentalPeriod {
		return nil, domain.ErrInvalidRentalPeriod
	}
	if uses <= 0 || uses > domain.MaxRentalUses {
		return nil, domain.ErrInvalidUses
	}

	e.cards.mu.Lock()
	card, ok := e.cards.byID[cardID]
	if !ok {
		e.cards.mu.Unlock()
		return nil, domain.ErrInvalidCard
	}
	if card.Owner != identityID {
		e.cards.mu.Unlock()
		return nil, domain.ErrNotCardOwner
	}
	e.cards.mu.Unlock()

	g := &domain.RentalGrant{
		ID:       uuid.NewString(),
		CardID:   cardID,
		Owner:    identityID,
		Period:   period,
		UsesLeft: uses,
		Fee:      fee,
	}

	e.rentals.mu.Lock()
	e.rentals.byID[g.ID] = g
	snapshot := *g
	e.rentals.mu.Unlock()

	e.emit(events.RentalCreated, g.ID, map[string]any{
		"card":   cardID,
		"owner":  identityID,
		"period": period,
		"uses":   uses,
		"fee":    fee,
	})
	return &snapshot, nil
}

// Rent activates the grant for the caller. Payment must cover the fee,
// which is paid to the owner immediately; expiry = now + period.
func (e *Engine) Rent(identityID, rentalID string, payment int64) (*domain.RentalGrant, error) {
	now := e.clock.NowMillis()

	e.rentals.mu.Lock()
	defer e.rentals.mu.Unlock()

	g, ok := e.rentals.byID[rentalID]
	if !ok {
		return nil, domain.ErrInvalidRental
	}
	if g.Renter != "" {
		return nil, domain.ErrRentalActive
	}
	if payment < g.Fee {
		return nil, domain.ErrIncorrectPaymentAmount
	}
	if err := e.transferCurrency(identityID, g.Owner, g.Fee); err != nil {
		return nil, err
	}
	g.Renter = identityID
	g.Expiry = now + g.Period
	snapshot := *g

	e.emit(events.CardRented, rentalID, map[string]any{
		"renter": identityID,
		"expiry": g.Expiry,
		"fee":    g.Fee,
	})
	return &snapshot, nil
}

// UseRental consumes one use. Fails once the grant has expired or run out.
func (e *Engine) UseRental(identityID, rentalID string) (*domain.RentalGrant, error) {
	now := e.clock.NowMillis()

	e.rentals.mu.Lock()
	defer e.rentals.mu.Unlock()

	g, ok := e.rentals.byID[rentalID]
	if !ok {
		return nil, domain.ErrInvalidRental
	}
	if g.Renter != identityID {
		return nil, domain.ErrNotRenter
	}
	if now > g.Expiry {
		return nil, domain.ErrRentalExpired
	}
	if g.UsesLeft <= 0 {
		return nil, domain.ErrNoUsesLeft
	}
	g.UsesLeft--
	snapshot := *g

	e.emit(events.RentalUsed, rentalID, map[string]any{"uses_left": g.UsesLeft})
	return &snapshot, nil
}

// EndRental resets the grant back to unset. Only allowed once the period
// has passed or the uses are exhausted.
func (e *Engine) EndRental(rentalID string) error {
	now := e.clock.NowMillis()

	e.rentals.mu.Lock()
	g, ok := e.rentals.byID[rentalID]
	if !ok {
		e.rentals.mu.Unlock()
		return domain.ErrInvalidRental
	}
	if g.Renter == "" {
		e.rentals.mu.Unlock()
		return domain.ErrInvalidRental
	}
	if now <= g.Expiry && g.UsesLeft > 0 {
		e.rentals.mu.Unlock()
		return domain.ErrRentalNotExpired
	}
	g.Renter = ""
	g.Expiry = 0
	e.rentals.mu.Unlock()

	e.emit(events.RentalEnded, rentalID, nil)
	return nil
}

// GetRental returns a copy of the grant.
func (e *Engine) GetRental(rentalID string) (*domain.RentalGrant, error) {
	e.rentals.mu.Lock()
	defer e.rentals.mu.Unlock()
	g, ok := e.rentals.byID[rentalID]
	if !ok {
		return nil, domain.ErrInvalidRental
	}
	snapshot := *g
	return &snapshot, nil
}
