package directory

import (
	"context"

	"github.com/creadoresuy/directorio-backend/internal/domain"
	"github.com/creadoresuy/directorio-backend/internal/repository"
)

type DirectoryUseCase struct {
	influencerRepo repository.InfluencerRepository
}

func NewDirectoryUseCase(influencerRepo repository.InfluencerRepository) *DirectoryUseCase {
	return &DirectoryUseCase{
		influencerRepo: influencerRepo,
	}
}

// Counts holds the per-status totals exposed for diagnostics.
type Counts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
}

// Search returns approved influencers matching the filter, newest first. When
// a platform-level constraint is active, influencers left with zero matching
// platform rows are dropped even if the store returned them.
func (uc *DirectoryUseCase) Search(ctx context.Context, filter domain.DirectoryFilter) ([]*domain.Influencer, error) {
	influencers, err := uc.influencerRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	if !filter.HasPlatformFilter() {
		return influencers, nil
	}

	filtered := make([]*domain.Influencer, 0, len(influencers))
	for _, inf := range influencers {
		if len(inf.Platforms) == 0 {
			continue
		}
		filtered = append(filtered, inf)
	}
	return filtered, nil
}

// GetApproved returns a single approved influencer with its platforms. A
// pending profile is reported as not found, never exposed.
func (uc *DirectoryUseCase) GetApproved(ctx context.Context, id string) (*domain.Influencer, error) {
	influencer, err := uc.influencerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if influencer.Status != domain.StatusApproved {
		return nil, domain.ErrInfluencerNotFound
	}
	return influencer, nil
}

// CountByStatus returns pending/approved totals.
func (uc *DirectoryUseCase) CountByStatus(ctx context.Context) (*Counts, error) {
	pending, err := uc.influencerRepo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := uc.influencerRepo.CountByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	return &Counts{Pending: pending, Approved: approved}, nil
}
