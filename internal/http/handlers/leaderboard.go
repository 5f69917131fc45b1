package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Leaderboard returns the top profiles by rating.
func (h *Handler) Leaderboard(c *gin.Context) {
	limit := 100
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	c.JSON(http.StatusOK, gin.H{"top": h.Engine.TopProfiles(limit)})
}
