package handlers

import (
	"net/http"

	"citadel_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// TreasuryBalances is the public view of the singleton treasury.
func (h *Handler) TreasuryBalances(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.Balances())
}

type DepositRequest struct {
	Amount  int64                 `json:"amount"`
	Purpose domain.DepositPurpose `json:"purpose"`
}

// Deposit credits the treasury unconditionally.
func (h *Handler) Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.BindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Purpose == "" {
		req.Purpose = domain.PurposeGeneric
	}
	balance := h.Engine.Deposit(req.Amount, req.Purpose)
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

type WithdrawRequest struct {
	Amount int64 `json:"amount"`
}

// Withdraw debits the treasury. Capability-gated.
func (h *Handler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.BindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	balance, err := h.Engine.Withdraw(adminToken(c), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
