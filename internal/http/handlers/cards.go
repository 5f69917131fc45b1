package handlers

import (
	"net/http"

	"citadel_backend/internal/engine"

	"github.com/gin-gonic/gin"
)

// Catalogue returns the fixed card-type inventory.
func (h *Handler) Catalogue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"card_types": engine.Catalogue})
}

// MyCards lists the caller's owned cards.
func (h *Handler) MyCards(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": h.Engine.CardsOf(identityID)})
}

func (h *Handler) GetCard(c *gin.Context) {
	card, err := h.Engine.GetCard(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

type DrawRequest struct {
	Payment int64 `json:"payment"`
}

// Draw buys one random level-0 card at the fixed price.
func (h *Handler) Draw(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req DrawRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	card, err := h.Engine.Draw(identityID, req.Payment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

type CombineRequest struct {
	CardA string `json:"card_a"`
	CardB string `json:"card_b"`
	CardC string `json:"card_c"`
	Fee   int64  `json:"fee"`
}

// Combine burns three cards plus the fragment fee for one synthesized card.
func (h *Handler) Combine(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CombineRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	card, err := h.Engine.Combine(identityID, req.CardA, req.CardB, req.CardC, req.Fee)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

type UpgradeRequest struct {
	Fee int64 `json:"fee"`
}

// Upgrade attempts to raise a card one level. The fee is consumed whether
// or not the roll succeeds.
func (h *Handler) Upgrade(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req UpgradeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	card, success, err := h.Engine.Upgrade(identityID, c.Param("id"), req.Fee)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"card": card, "success": success})
}

// Burn destroys a caller-owned card.
func (h *Handler) Burn(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Engine.Burn(identityID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
