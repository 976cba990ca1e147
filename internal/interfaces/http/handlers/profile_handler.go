package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/internal/interfaces/http/middleware"
	"scholar-seeker.backend/internal/interfaces/http/response"
)

// ProfileService is the slice of the profile usecase the handler needs
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, *entities.Completeness, error)
}

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileService ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the authenticated user's profile
// GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Update upserts the authenticated user's profile
// PUT /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, completeness, err := h.profileService.SaveProfile(c.Request.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) {
			response.Error(c, domainerrors.BadRequest("Invalid date of birth"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profile":      profile,
		"completeness": completeness,
	})
}
