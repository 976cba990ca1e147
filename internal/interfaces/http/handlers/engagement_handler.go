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
)

// EngagementService is the slice of the engagement usecase the handler needs
type EngagementService interface {
	ToggleBookmark(ctx context.Context, userID, scholarshipID uuid.UUID) (entities.BookmarkState, error)
	Apply(ctx context.Context, userID, scholarshipID uuid.UUID) (*entities.ApplyResult, error)
	IsBookmarked(ctx context.Context, userID, scholarshipID uuid.UUID) (bool, error)
	HasApplied(ctx context.Context, userID, scholarshipID uuid.UUID) (bool, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entities.Scholarship, error)
	ListApplications(ctx context.Context, userID uuid.UUID) ([]*entities.Application, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*entities.DashboardSummary, error)
}

// EngagementHandler handles bookmark and application endpoints
type EngagementHandler struct {
	engagementService EngagementService
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(engagementService EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

func (h *EngagementHandler) bindIdentity(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return uuid.Nil, uuid.Nil, false
	}

	scholarshipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid scholarship ID"))
		return uuid.Nil, uuid.Nil, false
	}
	return userID, scholarshipID, true
}

// ToggleBookmark flips the bookmark state for one scholarship
// POST /api/v1/scholarships/:id/bookmark
func (h *EngagementHandler) ToggleBookmark(c *gin.Context) {
	userID, scholarshipID, ok := h.bindIdentity(c)
	if !ok {
		return
	}

	state, err := h.engagementService.ToggleBookmark(c.Request.Context(), userID, scholarshipID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"scholarshipId": scholarshipID,
		"state":         state,
	})
}

// Apply records an application for one scholarship. Reapplying is reported as
// success with the existing record.
// POST /api/v1/scholarships/:id/apply
func (h *EngagementHandler) Apply(c *gin.Context) {
	userID, scholarshipID, ok := h.bindIdentity(c)
	if !ok {
		return
	}

	result, err := h.engagementService.Apply(c.Request.Context(), userID, scholarshipID)
	if err != nil {
		response.Error(c, err)
		return
	}

	status := http.StatusCreated
	if result.Outcome == entities.ApplyOutcomeAlreadyApplied {
		status = http.StatusOK
	}

	response.Success(c, status, gin.H{
		"outcome":     result.Outcome,
		"application": result.Application,
		"url":         result.URL,
	})
}

// EngagementStatus reports whether the caller has bookmarked or applied to
// one scholarship, so a detail view can render its save/apply state
// GET /api/v1/scholarships/:id/engagement
func (h *EngagementHandler) EngagementStatus(c *gin.Context) {
	userID, scholarshipID, ok := h.bindIdentity(c)
	if !ok {
		return
	}

	bookmarked, err := h.engagementService.IsBookmarked(c.Request.Context(), userID, scholarshipID)
	if err != nil {
		response.Error(c, err)
		return
	}

	applied, err := h.engagementService.HasApplied(c.Request.Context(), userID, scholarshipID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"scholarshipId": scholarshipID,
		"bookmarked":    bookmarked,
		"applied":       applied,
	})
}

// ListBookmarks returns the user's saved scholarships
// GET /api/v1/bookmarks
func (h *EngagementHandler) ListBookmarks(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	scholarships, err := h.engagementService.ListBookmarks(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookmarks": scholarships,
		"count":     len(scholarships),
	})
}

// ListApplications returns the user's application records
// GET /api/v1/applications
func (h *EngagementHandler) ListApplications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	applications, err := h.engagementService.ListApplications(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"applications": applications,
		"count":        len(applications),
	})
}

// Dashboard returns the user's engagement summary
// GET /api/v1/dashboard
func (h *EngagementHandler) Dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	summary, err := h.engagementService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}
