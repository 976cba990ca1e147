package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/internal/interfaces/http/middleware"
	"scholar-seeker.backend/internal/interfaces/http/response"
	"scholar-seeker.backend/internal/usecases"
)

// MatchService is the slice of the match usecase the handler needs
type MatchService interface {
	MatchForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Scholarship, error)
	Preview(ctx context.Context, profile *entities.Profile) ([]*entities.Scholarship, error)
}

// MatchHandler handles eligibility matching endpoints
type MatchHandler struct {
	matchService MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// Match returns the scholarships matching the user's saved profile
// GET /api/v1/matches
func (h *MatchHandler) Match(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	matches, err := h.matchService.MatchForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// Preview matches an ad-hoc profile payload without persisting it
// POST /api/v1/matches/preview
func (h *MatchHandler) Preview(c *gin.Context) {
	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := usecases.ProfileFromInput(uuid.Nil, &input)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid date of birth"))
		return
	}

	matches, err := h.matchService.Preview(c.Request.Context(), profile)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}
