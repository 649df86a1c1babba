package registration

import (
	"context"
	"testing"

	"github.com/creadoresuy/directorio-backend/internal/domain"
	"github.com/creadoresuy/directorio-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	repository.InfluencerRepository
	existing    map[string]*domain.Influencer
	createCalls int
}

func (s *stubRepo) GetByEmail(ctx context.Context, email string) (*domain.Influencer, error) {
	if inf, ok := s.existing[email]; ok {
		return inf, nil
	}
	return nil, domain.ErrInfluencerNotFound
}

func (s *stubRepo) Create(ctx context.Context, influencer *domain.Influencer) error {
	s.createCalls++
	influencer.ID = "created"
	return nil
}

func validRequest() *RegisterRequest {
	return &RegisterRequest{
		Name:               "Ana",
		Email:              "ana@example.com",
		Niche:              "Tech",
		Department:         "Montevideo",
		CollaborationTypes: []string{"Canje"},
		Platforms: []PlatformInput{
			{Platform: domain.PlatformInstagram, Username: "@ana", Followers: 5000, EngagementRate: 4.2},
		},
	}
}

func TestRegisterRejectsMissingRequiredFields(t *testing.T) {
	cases := map[string]func(*RegisterRequest){
		"name":       func(r *RegisterRequest) { r.Name = "" },
		"email":      func(r *RegisterRequest) { r.Email = "" },
		"niche":      func(r *RegisterRequest) { r.Niche = "" },
		"department": func(r *RegisterRequest) { r.Department = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &stubRepo{}
			uc := NewRegistrationUseCase(repo)

			req := validRequest()
			mutate(req)

			_, err := uc.Register(context.Background(), req)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Zero(t, repo.createCalls, "rejected payload must not write")
		})
	}
}

func TestRegisterRejectsEmptyPlatformsAndCollaborations(t *testing.T) {
	repo := &stubRepo{}
	uc := NewRegistrationUseCase(repo)

	req := validRequest()
	req.Platforms = nil
	_, err := uc.Register(context.Background(), req)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)

	req = validRequest()
	req.CollaborationTypes = nil
	_, err = uc.Register(context.Background(), req)
	require.ErrorAs(t, err, &validationErr)

	assert.Zero(t, repo.createCalls)
}

func TestRegisterRejectsUnknownPlatform(t *testing.T) {
	repo := &stubRepo{}
	uc := NewRegistrationUseCase(repo)

	req := validRequest()
	req.Platforms[0].Platform = domain.PlatformFacebook

	_, err := uc.Register(context.Background(), req)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, repo.createCalls)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := &stubRepo{existing: map[string]*domain.Influencer{
		"ana@example.com": {ID: "x", Email: "ana@example.com"},
	}}
	uc := NewRegistrationUseCase(repo)

	_, err := uc.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Zero(t, repo.createCalls)
}

func TestRegisterCreatesPendingWithChildren(t *testing.T) {
	repo := &stubRepo{}
	uc := NewRegistrationUseCase(repo)

	influencer, err := uc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, domain.StatusPending, influencer.Status)
	require.Len(t, influencer.Platforms, 1)
	assert.Equal(t, "@ana", influencer.Platforms[0].Username)
	assert.Equal(t, []string{"Canje"}, []string(influencer.Collaborations))
	assert.Nil(t, influencer.Phone)
}
