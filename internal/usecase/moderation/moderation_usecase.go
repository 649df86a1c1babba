package moderation

import (
	"context"

	"github.com/creadoresuy/directorio-backend/internal/domain"
	"github.com/creadoresuy/directorio-backend/internal/repository"
)

type ModerationUseCase struct {
	influencerRepo repository.InfluencerRepository
}

func NewModerationUseCase(influencerRepo repository.InfluencerRepository) *ModerationUseCase {
	return &ModerationUseCase{
		influencerRepo: influencerRepo,
	}
}

// EmailLookup is the admin view of a profile located by email. Found=false
// (not an error) marks an absent email.
type EmailLookup struct {
	Found  bool          `json:"found"`
	ID     string        `json:"id,omitempty"`
	Name   string        `json:"name,omitempty"`
	Email  string        `json:"email,omitempty"`
	Status domain.Status `json:"status,omitempty"`
}

// ListPending returns profiles awaiting moderation, newest first.
func (uc *ModerationUseCase) ListPending(ctx context.Context) ([]*domain.Influencer, error) {
	return uc.influencerRepo.ListByStatus(ctx, domain.StatusPending)
}

// ListApproved returns the publicly visible profiles for auditing.
func (uc *ModerationUseCase) ListApproved(ctx context.Context) ([]*domain.Influencer, error) {
	return uc.influencerRepo.ListByStatus(ctx, domain.StatusApproved)
}

// Approve grants directory visibility. Approving an already approved profile
// is a no-op, not an error.
func (uc *ModerationUseCase) Approve(ctx context.Context, id string) (*domain.Influencer, error) {
	return uc.influencerRepo.UpdateStatus(ctx, id, domain.StatusApproved)
}

// Delete removes the profile and, by cascade, its platform rows.
func (uc *ModerationUseCase) Delete(ctx context.Context, id string) error {
	return uc.influencerRepo.Delete(ctx, id)
}

// FindByEmail locates a profile regardless of its status. Registration keeps
// emails unique, so this is the recovery handle when a profile is invisible
// to the pending/approved split.
func (uc *ModerationUseCase) FindByEmail(ctx context.Context, email string) (*EmailLookup, error) {
	influencer, err := uc.influencerRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrInfluencerNotFound {
			return &EmailLookup{Found: false}, nil
		}
		return nil, err
	}
	return &EmailLookup{
		Found:  true,
		ID:     influencer.ID,
		Name:   influencer.Name,
		Email:  influencer.Email,
		Status: influencer.Status,
	}, nil
}

// ResetToPending puts every row matching the email back into the moderation
// queue. ErrInfluencerNotFound when nothing matched.
func (uc *ModerationUseCase) ResetToPending(ctx context.Context, email string) error {
	count, err := uc.influencerRepo.ResetStatusByEmail(ctx, email, domain.StatusPending)
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrInfluencerNotFound
	}
	return nil
}
