package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/services"
)

// ProfileHandler handles user-profile requests.
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile returns the user's profile, creating one on first access.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfileRequest represents the request payload for updating a profile.
type UpdateProfileRequest struct {
	Name           string `json:"name" binding:"max=100"`
	CurrencySymbol string `json:"currency_symbol" binding:"max=5"`
	CycleStartDay  *int   `json:"cycle_start_day" binding:"omitempty,cycle_start_day"`
}

// UpdateProfile updates the provided profile fields.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, req.Name, req.CurrencySymbol, req.CycleStartDay)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
