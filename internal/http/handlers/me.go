package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Me returns the caller's profile plus wallet balances and the onboarding
// claim flag.
func (h *Handler) Me(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.Engine.GetProfile(identityID)
	if err != nil {
		respondError(c, err)
		return
	}
	currency, fragments := h.Engine.WalletBalances(identityID)

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"wallet": gin.H{
			"currency":  currency,
			"fragments": fragments,
		},
		"initial_rewards_claimed": h.Engine.HasClaimedInitialRewards(identityID),
	})
}

type AvatarRequest struct {
	AvatarURL string `json:"avatar_url"`
}

func (h *Handler) SetAvatar(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req AvatarRequest
	if err := c.BindJSON(&req); err != nil || req.AvatarURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.Engine.SetAvatar(identityID, req.AvatarURL); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Profile is the public profile view.
func (h *Handler) Profile(c *gin.Context) {
	profile, err := h.Engine.GetProfile(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ClaimInitialRewards hands out the one-time onboarding grant.
func (h *Handler) ClaimInitialRewards(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Engine.DistributeInitialRewards(identityID); err != nil {
		respondError(c, err)
		return
	}
	currency, fragments := h.Engine.WalletBalances(identityID)
	c.JSON(http.StatusOK, gin.H{"currency": currency, "fragments": fragments})
}

// ClaimDailyRewards hands out the daily fragment grant.
func (h *Handler) ClaimDailyRewards(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Engine.DistributeDailyRewards(identityID); err != nil {
		respondError(c, err)
		return
	}
	currency, fragments := h.Engine.WalletBalances(identityID)
	c.JSON(http.StatusOK, gin.H{"currency": currency, "fragments": fragments})
}

// MyMatches lists the caller's recorded match outcomes. Prefers the database
// when history persistence is configured.
func (h *Handler) MyMatches(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if h.History != nil {
		entries, err := h.History.GetByIdentity(c.Request.Context(), identityID, 100)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"matches": entries})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": h.Engine.MatchHistoryOf(identityID)})
}
