package repository

import (
	"context"

	"github.com/creadoresuy/directorio-backend/internal/domain"
)

type InfluencerRepository interface {
	// Create inserts the influencer and all its platform rows atomically.
	Create(ctx context.Context, influencer *domain.Influencer) error
	GetByID(ctx context.Context, id string) (*domain.Influencer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Influencer, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Influencer, error)
	// Search returns approved influencers matching the filter, newest first.
	// Under an active platform filter the returned platform lists carry only
	// the matching rows.
	Search(ctx context.Context, filter domain.DirectoryFilter) ([]*domain.Influencer, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Influencer, error)
	// ResetStatusByEmail updates every row matching the email and reports how
	// many rows were affected.
	ResetStatusByEmail(ctx context.Context, email string, status domain.Status) (int64, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status domain.Status) (int, error)
}
