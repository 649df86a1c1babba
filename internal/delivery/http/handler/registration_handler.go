package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/creadoresuy/directorio-backend/internal/domain"
	"github.com/creadoresuy/directorio-backend/internal/lib/logger/sl"
	"github.com/creadoresuy/directorio-backend/internal/usecase/registration"
	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationUseCase *registration.RegistrationUseCase
	log                 *slog.Logger
}

func NewRegistrationHandler(registrationUseCase *registration.RegistrationUseCase, log *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUseCase: registrationUseCase,
		log:                 log,
	}
}

// RegisterResponse mirrors the panel's historical payload.
type RegisterResponse struct {
	Message    string             `json:"message"`
	Influencer *domain.Influencer `json:"influencer"`
}

// Register handles POST /registration
// @Summary Register a creator profile
// @Description Create a pending profile with its platform entries
// @Tags registration
// @Accept json
// @Produce json
// @Param request body registration.RegisterRequest true "Profile data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /registration [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req registration.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	influencer, err := h.registrationUseCase.Register(c.Request.Context(), &req)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: validationErr.Message,
			})
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Este email ya está registrado",
			})
		default:
			h.log.Error("failed to create influencer", sl.Err(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "Error al crear el registro. Intenta nuevamente.",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message:    "Registro exitoso. Tu perfil está pendiente de aprobación.",
		Influencer: influencer,
	})
}
