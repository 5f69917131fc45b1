package handlers

import (
	"net/http"

	"citadel_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetMatch(c *gin.Context) {
	match, err := h.Engine.GetMatch(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// Referee endpoints. Every call is gated on the X-Admin-Token capability
// header; the engine revalidates the token itself.

func adminToken(c *gin.Context) string {
	return c.GetHeader("X-Admin-Token")
}

type AssignCardRequest struct {
	Player int               `json:"player"`
	TypeID domain.CardTypeID `json:"type_id"`
}

func (h *Handler) AssignCard(c *gin.Context) {
	var req AssignCardRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := h.Engine.AssignCard(adminToken(c), c.Param("id"), req.Player, req.TypeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type PileDrawRequest struct {
	Player    int `json:"player"`
	CardIndex int `json:"card_index"`
}

func (h *Handler) DrawFromPile(c *gin.Context) {
	var req PileDrawRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := h.Engine.DrawFromPile(adminToken(c), c.Param("id"), req.Player, req.CardIndex); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type DealRequest struct {
	Size int `json:"size"`
}

func (h *Handler) SetDrawPileSize(c *gin.Context) {
	var req DealRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := h.Engine.SetDrawPileSize(adminToken(c), c.Param("id"), req.Size); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type TurnRequest struct {
	Turn        *int  `json:"turn,omitempty"`
	Reversed    *bool `json:"reversed,omitempty"`
	Attacks     *int  `json:"attacks,omitempty"`
	SpecialSlot *int  `json:"special_slot,omitempty"`
}

// SetTurnState applies any subset of the free-form turn controls in one
// call; each present field maps to its own engine operation.
func (h *Handler) SetTurnState(c *gin.Context) {
	var req TurnRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	token, matchID := adminToken(c), c.Param("id")
	if req.Turn != nil {
		if err := h.Engine.SetTurn(token, matchID, *req.Turn); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.Reversed != nil {
		if err := h.Engine.SetReversed(token, matchID, *req.Reversed); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.Attacks != nil {
		if err := h.Engine.SetAttacks(token, matchID, *req.Attacks); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.SpecialSlot != nil {
		if err := h.Engine.SetSpecialSlot(token, matchID, *req.SpecialSlot); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type PlayCardRequest struct {
	Player int    `json:"player"`
	CardID string `json:"card_id"`
}

func (h *Handler) PlayCard(c *gin.Context) {
	var req PlayCardRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := h.Engine.PlayCard(adminToken(c), c.Param("id"), req.Player, req.CardID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type DefeatRequest struct {
	Player int                 `json:"player"`
	Reason domain.DefeatReason `json:"reason"`
}

func (h *Handler) MarkDefeated(c *gin.Context) {
	var req DefeatRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := h.Engine.MarkDefeated(adminToken(c), c.Param("id"), req.Player, req.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type WinnerRequest struct {
	IdentityID string `json:"identity_id"`
}

func (h *Handler) SetWinner(c *gin.Context) {
	var req WinnerRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := h.Engine.SetWinner(adminToken(c), c.Param("id"), req.IdentityID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type StateRequest struct {
	State domain.MatchState `json:"state"`
}

func (h *Handler) UpdateMatchState(c *gin.Context) {
	var req StateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := h.Engine.UpdateState(adminToken(c), c.Param("id"), req.State); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type DequeueRequest struct {
	MinPlayers int `json:"min_players"`
}

// DequeueMatch drains the queue head into a fresh match.
func (h *Handler) DequeueMatch(c *gin.Context) {
	var req DequeueRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	match, err := h.Engine.DequeueCreateMatch(adminToken(c), req.MinPlayers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}
