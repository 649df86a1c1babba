package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/creadoresuy/directorio-backend/internal/domain"
	"github.com/creadoresuy/directorio-backend/internal/repository"
)

type RegistrationUseCase struct {
	influencerRepo repository.InfluencerRepository
}

func NewRegistrationUseCase(influencerRepo repository.InfluencerRepository) *RegistrationUseCase {
	return &RegistrationUseCase{
		influencerRepo: influencerRepo,
	}
}

// PlatformInput is one declared social account in a registration payload.
type PlatformInput struct {
	Platform       string  `json:"platform"`
	Username       string  `json:"username"`
	Followers      int     `json:"followers" binding:"min=0"`
	EngagementRate float64 `json:"engagementRate" binding:"min=0,max=100"`
}

// RegisterRequest represents the full registration payload. Required-field
// checks happen in the use case so rejections carry the panel's own messages
// instead of binding errors.
type RegisterRequest struct {
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Photo               string          `json:"photo"`
	Bio                 string          `json:"bio"`
	Niche               string          `json:"niche"`
	Department          string          `json:"department"`
	Age                 *int            `json:"age"`
	AudienceGender      string          `json:"audienceGender"`
	AudienceAgeRange    string          `json:"audienceAgeRange"`
	HasProfessionalTeam bool            `json:"hasProfessionalTeam"`
	InfluencerType      string          `json:"influencerType"`
	CollaborationTypes  []string        `json:"collaborationTypes"`
	Platforms           []PlatformInput `json:"platforms"`
}

// Register validates the payload and creates the influencer with its platform
// rows atomically, always in PENDING status. No write happens on rejection.
func (uc *RegistrationUseCase) Register(ctx context.Context, req *RegisterRequest) (*domain.Influencer, error) {
	if req.Name == "" || req.Email == "" || req.Niche == "" || req.Department == "" {
		return nil, domain.NewValidationError("Faltan campos requeridos")
	}
	if len(req.Platforms) == 0 {
		return nil, domain.NewValidationError("Debe agregar al menos una plataforma")
	}
	if len(req.CollaborationTypes) == 0 {
		return nil, domain.NewValidationError("Debe seleccionar al menos un tipo de colaboración")
	}
	for _, p := range req.Platforms {
		if !domain.IsRegistrablePlatform(p.Platform) {
			return nil, domain.NewValidationError(fmt.Sprintf("Plataforma no válida: %s", p.Platform))
		}
		if p.Username == "" {
			return nil, domain.NewValidationError("Cada plataforma debe tener un usuario")
		}
	}

	_, err := uc.influencerRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrInfluencerNotFound) {
		return nil, err
	}

	influencer := &domain.Influencer{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               optional(req.Phone),
		Photo:               optional(req.Photo),
		Bio:                 optional(req.Bio),
		Niche:               req.Niche,
		Department:          req.Department,
		Age:                 req.Age,
		AudienceGender:      optional(req.AudienceGender),
		AudienceAgeRange:    optional(req.AudienceAgeRange),
		HasProfessionalTeam: req.HasProfessionalTeam,
		InfluencerType:      optional(req.InfluencerType),
		Collaborations:      req.CollaborationTypes,
		Status:              domain.StatusPending,
	}
	for _, p := range req.Platforms {
		influencer.Platforms = append(influencer.Platforms, domain.SocialPlatform{
			Platform:       p.Platform,
			Username:       p.Username,
			Followers:      p.Followers,
			EngagementRate: p.EngagementRate,
		})
	}

	if err := uc.influencerRepo.Create(ctx, influencer); err != nil {
		return nil, err
	}

	return influencer, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
