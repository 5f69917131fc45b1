package handlers

import (
	"errors"
	"net/http"

	"citadel_backend/internal/domain"
	"citadel_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthRequest struct {
	IdentityID string `json:"identity_id"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url"`
}

// Auth registers the identity on first contact and issues a session token.
// A repeat call with a known identity is a plain login.
func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	identityID := req.IdentityID
	if identityID == "" {
		identityID = uuid.NewString()
	}
	if len(identityID) > 128 || len(req.Name) > 128 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field too long"})
		return
	}

	profile, err := h.Engine.GetProfile(identityID)
	if err != nil {
		name := req.Name
		if name == "" {
			name = identityID
		}
		profile, err = h.Engine.RegisterProfile(identityID, name, req.AvatarURL)
		if err != nil {
			// A concurrent registration of the same identity is a login.
			if errors.Is(err, domain.ErrDuplicateRegistration) {
				profile, err = h.Engine.GetProfile(identityID)
			}
			if err != nil {
				respondError(c, err)
				return
			}
		}
	}

	token, err := service.GenerateJWT(profile.IdentityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"profile": profile,
	})
}
