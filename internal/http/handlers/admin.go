package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateAdminRequest struct {
	IdentityID string `json:"identity_id"`
}

// CreateAdmin mints a fresh capability token for the target identity.
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.BindJSON(&req); err != nil || req.IdentityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	token, err := h.Engine.CreateAdmin(adminToken(c), req.IdentityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RevokeAdmin removes every capability of the target identity.
func (h *Handler) RevokeAdmin(c *gin.Context) {
	if err := h.Engine.RevokeAdmin(adminToken(c), c.Param("identity")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RecordWin bumps the target's played/won counters.
func (h *Handler) RecordWin(c *gin.Context) {
	if err := h.Engine.RecordWin(adminToken(c), c.Param("identity")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RecordLoss bumps the target's played/lost counters.
func (h *Handler) RecordLoss(c *gin.Context) {
	if err := h.Engine.RecordLoss(adminToken(c), c.Param("identity")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type RatingRequest struct {
	Rating int `json:"rating"`
}

// SetRating overwrites the target's rating.
func (h *Handler) SetRating(c *gin.Context) {
	var req RatingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := h.Engine.SetRating(adminToken(c), c.Param("identity"), req.Rating); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
