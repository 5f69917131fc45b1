package domain

// Profile is the persistent per-identity player record. Created once per
// external credential, never deleted. Win/lose/rating counters are only
// touched by admin-gated calls.
type Profile struct {
	IdentityID string `json:"identity_id"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Rating     int    `json:"rating"`
	Played     int    `json:"played"`
	Won        int    `json:"won"`
	Lost       int    `json:"lost"`

	// Millisecond timestamps from the injected clock.
	CreatedAt      int64 `json:"created_at"`
	LastDailyClaim int64 `json:"last_daily_claim,omitempty"`
}

// FriendState is the state of a friendship edge.
type FriendState string

const (
	FriendStatePending  FriendState = "pending"
	FriendStateAccepted FriendState = "accepted"
)

// FriendRelation is a symmetric edge between two identities, stored on both
// sides. Requester is the identity that sent the request.
type FriendRelation struct {
	Requester string      `json:"requester"`
	Recipient string      `json:"recipient"`
	State     FriendState `json:"state"`
	CreatedAt int64       `json:"created_at"`
}
