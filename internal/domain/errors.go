package domain

import "errors"

// Typed precondition failures. Every operation either succeeds or returns
// exactly one of these with zero partial effects.
var (
	ErrDuplicateRegistration = errors.New("identity already registered")
	ErrInvalidProfile        = errors.New("profile not found")
	ErrNotAuthorized         = errors.New("not authorized")
	ErrSelfRevocation        = errors.New("cannot revoke own admin capability")

	ErrIncorrectPaymentAmount = errors.New("incorrect payment amount")
	ErrInvalidLevel           = errors.New("invalid card level")
	ErrInvalidCard            = errors.New("card not found")
	ErrNotCardOwner           = errors.New("caller does not own this card")

	ErrInsufficientBalance = errors.New("insufficient treasury balance")
	ErrAlreadyClaimed      = errors.New("initial rewards already claimed")
	ErrDailyNotElapsed     = errors.New("daily rewards not yet available")

	ErrLobbyFull           = errors.New("lobby is full")
	ErrNotLobbyLeader      = errors.New("caller is not the lobby leader")
	ErrAlreadyInLobby      = errors.New("identity already in lobby")
	ErrInsufficientPlayers = errors.New("not enough players")
	ErrAlreadyQueued       = errors.New("identity already in queue")
	ErrInvalidLobby        = errors.New("lobby not found")

	ErrInvalidGameEntry       = errors.New("match not found")
	ErrMatchEnded             = errors.New("match already ended")
	ErrInvalidStateTransition = errors.New("invalid match state transition")
	ErrInvalidPlayer          = errors.New("player index out of range")
	ErrEmptyDrawPile          = errors.New("draw pile is empty")
	ErrInvalidDeckIndex       = errors.New("deck index out of range")
	ErrCardNotInHand          = errors.New("card not in hand")

	ErrInvalidRentalPeriod = errors.New("invalid rental period")
	ErrInvalidUses         = errors.New("invalid rental uses")
	ErrInvalidRental       = errors.New("rental not found")
	ErrRentalActive        = errors.New("rental already active")
	ErrRentalExpired       = errors.New("rental expired")
	ErrRentalNotExpired    = errors.New("rental not yet expired")
	ErrNoUsesLeft          = errors.New("no rental uses left")
	ErrNotRenter           = errors.New("caller is not the renter")

	ErrFriendRequestExists = errors.New("friend request already exists")
	ErrNoFriendRequest     = errors.New("no pending friend request")
	ErrAlreadyFriends      = errors.New("already friends")
	ErrSelfFriendship      = errors.New("cannot befriend yourself")
)
