package handlers

import (
	"citadel_backend/internal/engine"
	"citadel_backend/internal/repository"
)

// Handler carries the shared dependencies of every HTTP endpoint. History is
// nil when no database is configured; reads then fall back to the in-memory
// engine log.
type Handler struct {
	Engine  *engine.Engine
	History *repository.MatchHistoryRepository
}

func NewHandler(e *engine.Engine, history *repository.MatchHistoryRepository) *Handler {
	return &Handler{Engine: e, History: history}
}

// getIdentityID extracts the authenticated identity from the gin context.
func getIdentityID(c interface{ Get(string) (any, bool) }) (string, bool) {
	v, ok := c.Get("identity_id")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
