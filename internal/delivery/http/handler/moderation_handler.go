package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/creadoresuy/directorio-backend/internal/domain"
	"github.com/creadoresuy/directorio-backend/internal/lib/logger/sl"
	"github.com/creadoresuy/directorio-backend/internal/usecase/moderation"
	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationUseCase *moderation.ModerationUseCase
	log               *slog.Logger
}

func NewModerationHandler(moderationUseCase *moderation.ModerationUseCase, log *slog.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUseCase: moderationUseCase,
		log:               log,
	}
}

// ApproveResponse mirrors the panel's historical payload.
type ApproveResponse struct {
	Message    string             `json:"message"`
	Influencer *domain.Influencer `json:"influencer"`
}

// ListPending handles GET /moderation/pending
// @Summary List profiles awaiting moderation
// @Tags moderation
// @Produce json
// @Success 200 {array} domain.Influencer
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /moderation/pending [get]
func (h *ModerationHandler) ListPending(c *gin.Context) {
	influencers, err := h.moderationUseCase.ListPending(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list pending influencers", sl.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Error al obtener influencers pendientes",
		})
		return
	}

	if influencers == nil {
		influencers = []*domain.Influencer{}
	}
	c.JSON(http.StatusOK, influencers)
}

// ListApproved handles GET /moderation/approved
// @Summary List approved profiles for auditing
// @Tags moderation
// @Produce json
// @Success 200 {array} domain.Influencer
// @Failure 500 {object} ErrorResponse
// @Router /moderation/approved [get]
func (h *ModerationHandler) ListApproved(c *gin.Context) {
	influencers, err := h.moderationUseCase.ListApproved(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list approved influencers", sl.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Error al obtener influencers aprobados",
		})
		return
	}

	if influencers == nil {
		influencers = []*domain.Influencer{}
	}
	c.JSON(http.StatusOK, influencers)
}

// Approve handles PATCH /moderation/:id/approve
// @Summary Approve a pending profile
// @Tags moderation
// @Produce json
// @Param id path string true "Influencer ID"
// @Success 200 {object} ApproveResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /moderation/{id}/approve [patch]
func (h *ModerationHandler) Approve(c *gin.Context) {
	influencer, err := h.moderationUseCase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		// a missing id also lands here, kept as 500 for compatibility with
		// the panel this replaces
		h.log.Error("failed to approve influencer", sl.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Error al aprobar el influencer",
		})
		return
	}

	c.JSON(http.StatusOK, ApproveResponse{
		Message:    "Influencer aprobado exitosamente",
		Influencer: influencer,
	})
}

// Delete handles DELETE /moderation/:id
// @Summary Delete a profile and its platform entries
// @Tags moderation
// @Produce json
// @Param id path string true "Influencer ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /moderation/{id} [delete]
func (h *ModerationHandler) Delete(c *gin.Context) {
	if err := h.moderationUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		// missing id kept as 500, same as Approve
		h.log.Error("failed to delete influencer", sl.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Error al eliminar el influencer",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Influencer eliminado",
	})
}

// FindByEmail handles GET /moderation/by-email
// @Summary Locate a profile by email
// @Description Recovery lookup for profiles invisible to the pending/approved split
// @Tags moderation
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} moderation.EmailLookup
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /moderation/by-email [get]
func (h *ModerationHandler) FindByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Falta el email",
		})
		return
	}

	lookup, err := h.moderationUseCase.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.log.Error("failed to find influencer by email", sl.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Error al buscar",
		})
		return
	}

	c.JSON(http.StatusOK, lookup)
}

// ResetByEmailRequest identifies the rows to put back in the queue.
type ResetByEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetByEmail handles PATCH /moderation/by-email
// @Summary Reset a profile to pending by email
// @Tags moderation
// @Accept json
// @Produce json
// @Param request body ResetByEmailRequest true "Email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /moderation/by-email [patch]
func (h *ModerationHandler) ResetByEmail(c *gin.Context) {
	var req ResetByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Falta el email",
		})
		return
	}

	err := h.moderationUseCase.ResetToPending(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrInfluencerNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "No se encontró ese email",
			})
			return
		}
		h.log.Error("failed to reset influencer status", sl.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Error al actualizar",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Perfil pasado a pendientes",
	})
}
