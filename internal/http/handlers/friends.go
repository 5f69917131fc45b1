package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FriendRequestBody struct {
	IdentityID string `json:"identity_id"`
}

func (h *Handler) SendFriendRequest(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req FriendRequestBody
	if err := c.BindJSON(&req); err != nil || req.IdentityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.Engine.SendFriendRequest(identityID, req.IdentityID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) AcceptFriendRequest(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Engine.AcceptFriendRequest(identityID, c.Param("identity")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) RejectFriendRequest(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Engine.RejectFriendRequest(identityID, c.Param("identity")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Unfriend(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Engine.Unfriend(identityID, c.Param("identity")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ListFriends(c *gin.Context) {
	identityID, ok := getIdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"friends": h.Engine.FriendsOf(identityID),
		"pending": h.Engine.PendingRequestsFor(identityID),
	})
}
