package domain

const (
	// MaxRentalPeriod is 30 days in milliseconds.
	MaxRentalPeriod = int64(30 * 24 * 60 * 60 * 1000)
	MaxRentalUses   = 100
)

// RentalGrant is a time- and use-bounded lending grant derived from a card.
// Renter == "" means the grant is not currently active. The fee is paid to
// the owner at rent time; there is no escrow and no partial refund.
type RentalGrant struct {
	ID       string `json:"id"`
	CardID   string `json:"card_id"`
	Owner    string `json:"owner"`
	Renter   string `json:"renter,omitempty"`
	Period   int64  `json:"period"`
	UsesLeft int    `json:"uses_left"`
	Expiry   int64  `json:"expiry,omitempty"`
	Fee      int64  `json:"fee"`
}

// Active reports whether the grant is currently rented out at the given
// timestamp with uses remaining.
func (g *RentalGrant) Active(now int64) bool {
	return g.Renter != "" && now <= g.Expiry && g.UsesLeft > 0
}
