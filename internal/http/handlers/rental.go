package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateRentalRequest struct {
	CardID string `json:"card_id"`
	Period int64  `json:"period"`
	Uses   int    `json:"uses"`
	Fee    int64  `json:"fee"`
}

// CreateRental derives a lending grant from a caller-owned card.
func (h *Handler) CreateRental(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateRentalRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	grant, err := h.Engine.CreateRental(identityID, req.CardID, req.Period, req.Uses, req.Fee)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

func (h *Handler) GetRental(c *gin.Context) {
	grant, err := h.Engine.GetRental(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

type RentRequest struct {
	Payment int64 `json:"payment"`
}

// Rent activates the grant for the caller.
func (h *Handler) Rent(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req RentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	grant, err := h.Engine.Rent(identityID, c.Param("id"), req.Payment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

// UseRental consumes one use of an active grant.
func (h *Handler) UseRental(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	grant, err := h.Engine.UseRental(identityID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

// EndRental resets an expired or exhausted grant.
func (h *Handler) EndRental(c *gin.Context) {
	if err := h.Engine.EndRental(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
