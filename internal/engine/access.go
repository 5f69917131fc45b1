package engine

import (
	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"

	"github.com/google/uuid"
)

// Capability tokens are opaque values checked by membership, never a
// mutable flag on a profile. Holding a valid token is the only way through
// a privileged call.

// Authorize resolves a capability token to the identity it was issued to.
func (e *Engine) Authorize(token string) (string, error) {
	e.admins.mu.Lock()
	defer e.admins.mu.Unlock()
	identity, ok := e.admins.byToken[token]
	if !ok {
		return "", domain.ErrNotAuthorized
	}
	return identity, nil
}

// CreateAdmin issues a fresh capability for the target identity. Requires a
// valid capability from the caller.
func (e *Engine) CreateAdmin(callerToken, targetIdentity string) (string, error) {
	e.admins.mu.Lock()
	if _, ok := e.admins.byToken[callerToken]; !ok {
		e.admins.mu.Unlock()
		return "", domain.ErrNotAuthorized
	}
	token := uuid.NewString()
	e.admins.byToken[token] = targetIdentity
	e.admins.mu.Unlock()

	e.emit(events.AdminCreated, targetIdentity, nil)
	return token, nil
}

// RevokeAdmin removes every capability issued to the target identity.
// Self-revocation is rejected so the registry can never empty itself out.
func (e *Engine) RevokeAdmin(callerToken, targetIdentity string) error {
	e.admins.mu.Lock()
	caller, ok := e.admins.byToken[callerToken]
	if !ok {
		e.admins.mu.Unlock()
		return domain.ErrNotAuthorized
	}
	if caller == targetIdentity {
		e.admins.mu.Unlock()
		return domain.ErrSelfRevocation
	}
	found := false
	for tok, id := range e.admins.byToken {
		if id == targetIdentity {
			delete(e.admins.byToken, tok)
			found = true
		}
	}
	e.admins.mu.Unlock()

	if !found {
		return domain.ErrNotAuthorized
	}
	e.emit(events.AdminRevoked, targetIdentity, nil)
	return nil
}
