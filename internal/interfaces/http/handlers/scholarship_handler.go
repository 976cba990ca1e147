package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/internal/interfaces/http/response"
	"scholar-seeker.backend/pkg/utils"
)

// CatalogService is the slice of the scholarship usecase the handler needs
type CatalogService interface {
	List(ctx context.Context, input *entities.ListScholarshipsInput) ([]*entities.Scholarship, *utils.PaginationMeta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Scholarship, error)
}

// ScholarshipHandler handles catalog endpoints
type ScholarshipHandler struct {
	catalogService CatalogService
}

// NewScholarshipHandler creates a new scholarship handler
func NewScholarshipHandler(catalogService CatalogService) *ScholarshipHandler {
	return &ScholarshipHandler{catalogService: catalogService}
}

// List returns a page of the scholarship catalog
// GET /api/v1/scholarships
func (h *ScholarshipHandler) List(c *gin.Context) {
	var input entities.ListScholarshipsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	scholarships, meta, err := h.catalogService.List(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"scholarships": scholarships,
		"pagination":   meta,
	})
}

// GetByID returns one catalog entry
// GET /api/v1/scholarships/:id
func (h *ScholarshipHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid scholarship ID"))
		return
	}

	scholarship, err := h.catalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, scholarship)
}
