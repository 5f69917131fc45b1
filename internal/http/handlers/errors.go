package handlers

import (
	"errors"
	"net/http"

	"citadel_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps typed engine errors onto HTTP status codes. Anything
// unrecognized is a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidProfile),
		errors.Is(err, domain.ErrInvalidCard),
		errors.Is(err, domain.ErrInvalidLobby),
		errors.Is(err, domain.ErrInvalidGameEntry),
		errors.Is(err, domain.ErrInvalidRental):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden

	case errors.Is(err, domain.ErrNotCardOwner),
		errors.Is(err, domain.ErrNotLobbyLeader),
		errors.Is(err, domain.ErrNotRenter):
		return http.StatusForbidden

	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired

	case errors.Is(err, domain.ErrDuplicateRegistration),
		errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrDailyNotElapsed),
		errors.Is(err, domain.ErrAlreadyInLobby),
		errors.Is(err, domain.ErrLobbyFull),
		errors.Is(err, domain.ErrAlreadyQueued),
		errors.Is(err, domain.ErrInsufficientPlayers),
		errors.Is(err, domain.ErrMatchEnded),
		errors.Is(err, domain.ErrEmptyDrawPile),
		errors.Is(err, domain.ErrCardNotInHand),
		errors.Is(err, domain.ErrRentalActive),
		errors.Is(err, domain.ErrRentalExpired),
		errors.Is(err, domain.ErrRentalNotExpired),
		errors.Is(err, domain.ErrNoUsesLeft),
		errors.Is(err, domain.ErrFriendRequestExists),
		errors.Is(err, domain.ErrNoFriendRequest),
		errors.Is(err, domain.ErrAlreadyFriends):
		return http.StatusConflict

	case errors.Is(err, domain.ErrIncorrectPaymentAmount),
		errors.Is(err, domain.ErrInvalidLevel),
		errors.Is(err, domain.ErrInvalidPlayer),
		errors.Is(err, domain.ErrInvalidDeckIndex),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrInvalidRentalPeriod),
		errors.Is(err, domain.ErrInvalidUses),
		errors.Is(err, domain.ErrSelfFriendship),
		errors.Is(err, domain.ErrSelfRevocation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
