package directory

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
	searchResult []*domain.Influencer
	pending      int
	approved     int
}

func (s *stubRepo) Search(ctx context.Context, filter domain.DirectoryFilter) ([]*domain.Influencer, error) {
	return s.searchResult, nil
}

func (s *stubRepo) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	if status == domain.StatusPending {
		return s.pending, nil
	}
	return s.approved, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*domain.Influencer, error) {
	for _, inf := range s.searchResult {
		if inf.ID == id {
			return inf, nil
		}
	}
	return nil, domain.ErrInfluencerNotFound
}

func TestSearchDropsPlatformlessResultsUnderPlatformFilter(t *testing.T) {
	withPlatforms := &domain.Influencer{
		ID:     "a",
		Status: domain.StatusApproved,
		Platforms: []domain.SocialPlatform{
			{Platform: domain.PlatformInstagram, Followers: 50000},
		},
	}
	withoutPlatforms := &domain.Influencer{
		ID:        "b",
		Status:    domain.StatusApproved,
		Platforms: []domain.SocialPlatform{},
	}

	uc := NewDirectoryUseCase(&stubRepo{searchResult: []*domain.Influencer{withPlatforms, withoutPlatforms}})

	min := 10000
	result, err := uc.Search(context.Background(), domain.DirectoryFilter{FollowersMin: &min})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].ID)
}

func TestSearchKeepsPlatformlessResultsWithoutPlatformFilter(t *testing.T) {
	withoutPlatforms := &domain.Influencer{
		ID:        "b",
		Status:    domain.StatusApproved,
		Platforms: []domain.SocialPlatform{},
	}

	uc := NewDirectoryUseCase(&stubRepo{searchResult: []*domain.Influencer{withoutPlatforms}})

	result, err := uc.Search(context.Background(), domain.DirectoryFilter{Niche: "Tech"})
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestGetApprovedHidesPending(t *testing.T) {
	pending := &domain.Influencer{ID: "p", Status: domain.StatusPending}
	uc := NewDirectoryUseCase(&stubRepo{searchResult: []*domain.Influencer{pending}})

	_, err := uc.GetApproved(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrInfluencerNotFound)
}

func TestCountByStatus(t *testing.T) {
	uc := NewDirectoryUseCase(&stubRepo{pending: 3, approved: 7})

	counts, err := uc.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Pending)
	assert.Equal(t, 7, counts.Approved)
}
