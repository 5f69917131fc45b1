package handlers

import (
	"net/http"

	"citadel_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateLobby(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	lobby, err := h.Engine.CreateLobby(identityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lobby)
}

func (h *Handler) GetLobby(c *gin.Context) {
	lobby, err := h.Engine.GetLobby(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lobby)
}

type JoinLobbyRequest struct {
	Spectator bool `json:"spectator"`
}

func (h *Handler) JoinLobby(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req JoinLobbyRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	lobby, err := h.Engine.JoinLobby(identityID, c.Param("id"), req.Spectator)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lobby)
}

type LobbyModeRequest struct {
	DisabledCards []domain.CardTypeID `json:"disabled_cards"`
}

// SetLobbyMode replaces the lobby's custom-rule settings. Leader only.
func (h *Handler) SetLobbyMode(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req LobbyModeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	mode := domain.LobbyMode{DisabledCards: req.DisabledCards}
	if err := h.Engine.SetLobbyMode(identityID, c.Param("id"), mode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StartLobbyMatch converts the lobby into a match. Leader only.
func (h *Handler) StartLobbyMatch(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	match, err := h.Engine.StartMatch(identityID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// JoinQueue puts the caller into the matchmaking queue.
func (h *Handler) JoinQueue(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Engine.JoinQueue(identityID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"position": h.Engine.QueueLength()})
}

func (h *Handler) QueueStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"waiting": h.Engine.QueueLength()})
}
