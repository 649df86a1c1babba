package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/creadoresuy/directorio-backend/internal/domain"
	"github.com/creadoresuy/directorio-backend/internal/lib/logger/sl"
	"github.com/creadoresuy/directorio-backend/internal/usecase/directory"
	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	directoryUseCase *directory.DirectoryUseCase
	log              *slog.Logger
}

func NewDirectoryHandler(directoryUseCase *directory.DirectoryUseCase, log *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUseCase: directoryUseCase,
		log:              log,
	}
}

// Search handles GET /directory
// @Summary Public directory search
// @Description List approved profiles matching the query filters
// @Tags directory
// @Produce json
// @Param niche query string false "Niche"
// @Param department query string false "Department"
// @Param ageMin query int false "Minimum age"
// @Param ageMax query int false "Maximum age"
// @Param followersMin query int false "Minimum followers"
// @Param followersMax query int false "Maximum followers"
// @Param engagementMin query number false "Minimum engagement rate"
// @Param engagementMax query number false "Maximum engagement rate"
// @Param platforms query string false "Comma-joined platform names"
// @Param collaborationType query string false "Collaboration type"
// @Success 200 {array} domain.Influencer
// @Failure 500 {object} ErrorResponse
// @Router /directory [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	filter := domain.ParseDirectoryFilter(c.Request.URL.Query())

	influencers, err := h.directoryUseCase.Search(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("failed to search influencers", sl.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Error al obtener influencers",
		})
		return
	}

	if influencers == nil {
		influencers = []*domain.Influencer{}
	}
	c.JSON(http.StatusOK, influencers)
}

// GetByID handles GET /directory/:id
// @Summary Get one approved profile
// @Tags directory
// @Produce json
// @Param id path string true "Influencer ID"
// @Success 200 {object} domain.Influencer
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /directory/{id} [get]
func (h *DirectoryHandler) GetByID(c *gin.Context) {
	influencer, err := h.directoryUseCase.GetApproved(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInfluencerNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Influencer no encontrado",
			})
			return
		}
		h.log.Error("failed to get influencer", sl.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Error al obtener influencer",
		})
		return
	}

	c.JSON(http.StatusOK, influencer)
}

// Counts handles GET /directory/counts
// @Summary Pending/approved totals
// @Description Diagnostic endpoint to confirm rows reach the database
// @Tags directory
// @Produce json
// @Success 200 {object} directory.Counts
// @Router /directory/counts [get]
func (h *DirectoryHandler) Counts(c *gin.Context) {
	counts, err := h.directoryUseCase.CountByStatus(c.Request.Context())
	if err != nil {
		h.log.Error("failed to count influencers", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Error al contar",
			"pending":  0,
			"approved": 0,
		})
		return
	}

	c.JSON(http.StatusOK, counts)
}
