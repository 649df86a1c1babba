package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/creadoresuy/directorio-backend/internal/domain"
	"github.com/creadoresuy/directorio-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type influencerRepository struct {
	db *sqlx.DB
}

func NewInfluencerRepository(db *sqlx.DB) repository.InfluencerRepository {
	return &influencerRepository{db: db}
}

func (r *influencerRepository) Create(ctx context.Context, influencer *domain.Influencer) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if influencer.ID == "" {
		influencer.ID = uuid.NewString()
	}

	query := `
		INSERT INTO influencers (
			id, name, email, phone, photo, bio, niche, department, age,
			audience_gender, audience_age_range, has_professional_team,
			influencer_type, collaborations, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(
		ctx, query,
		influencer.ID, influencer.Name, influencer.Email, influencer.Phone,
		influencer.Photo, influencer.Bio, influencer.Niche, influencer.Department,
		influencer.Age, influencer.AudienceGender, influencer.AudienceAgeRange,
		influencer.HasProfessionalTeam, influencer.InfluencerType,
		influencer.Collaborations, influencer.Status,
	).Scan(&influencer.CreatedAt, &influencer.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrEmailTaken
		}
		return err
	}

	platformQuery := `
		INSERT INTO platforms (id, influencer_id, platform, username, followers, engagement_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	for i := range influencer.Platforms {
		p := &influencer.Platforms[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		p.InfluencerID = influencer.ID
		err = tx.QueryRowContext(
			ctx, platformQuery,
			p.ID, p.InfluencerID, p.Platform, p.Username, p.Followers, p.EngagementRate,
		).Scan(&p.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *influencerRepository) GetByID(ctx context.Context, id string) (*domain.Influencer, error) {
	var influencer domain.Influencer
	query := `SELECT * FROM influencers WHERE id = $1`
	if err := r.db.GetContext(ctx, &influencer, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInfluencerNotFound
		}
		return nil, err
	}
	if err := r.attachPlatforms(ctx, []*domain.Influencer{&influencer}, domain.DirectoryFilter{}); err != nil {
		return nil, err
	}
	return &influencer, nil
}

func (r *influencerRepository) GetByEmail(ctx context.Context, email string) (*domain.Influencer, error) {
	var influencer domain.Influencer
	query := `SELECT * FROM influencers WHERE email = $1`
	if err := r.db.GetContext(ctx, &influencer, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInfluencerNotFound
		}
		return nil, err
	}
	if err := r.attachPlatforms(ctx, []*domain.Influencer{&influencer}, domain.DirectoryFilter{}); err != nil {
		return nil, err
	}
	return &influencer, nil
}

func (r *influencerRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Influencer, error) {
	var influencers []*domain.Influencer
	query := `SELECT * FROM influencers WHERE status = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &influencers, query, status); err != nil {
		return nil, err
	}
	if err := r.attachPlatforms(ctx, influencers, domain.DirectoryFilter{}); err != nil {
		return nil, err
	}
	return influencers, nil
}

func (r *influencerRepository) Search(ctx context.Context, filter domain.DirectoryFilter) ([]*domain.Influencer, error) {
	var influencers []*domain.Influencer

	query := `SELECT * FROM influencers WHERE status = $1`
	args := []interface{}{domain.StatusApproved}
	argCount := 2

	if filter.Niche != "" {
		query += fmt.Sprintf(" AND niche = $%d", argCount)
		args = append(args, filter.Niche)
		argCount++
	}

	if filter.Department != "" {
		query += fmt.Sprintf(" AND department = $%d", argCount)
		args = append(args, filter.Department)
		argCount++
	}

	if filter.AgeMin != nil {
		query += fmt.Sprintf(" AND age >= $%d", argCount)
		args = append(args, *filter.AgeMin)
		argCount++
	}

	if filter.AgeMax != nil {
		query += fmt.Sprintf(" AND age <= $%d", argCount)
		args = append(args, *filter.AgeMax)
		argCount++
	}

	if filter.CollaborationType != "" {
		query += fmt.Sprintf(" AND $%d = ANY(collaborations)", argCount)
		args = append(args, filter.CollaborationType)
		argCount++
	}

	query += " ORDER BY created_at DESC"

	if err := r.db.SelectContext(ctx, &influencers, query, args...); err != nil {
		return nil, err
	}
	if err := r.attachPlatforms(ctx, influencers, filter); err != nil {
		return nil, err
	}
	return influencers, nil
}

// attachPlatforms loads platform rows for the given influencers in one query
// and distributes them. Platform-level filter fields narrow the loaded rows;
// an empty filter loads the full child set.
func (r *influencerRepository) attachPlatforms(ctx context.Context, influencers []*domain.Influencer, filter domain.DirectoryFilter) error {
	if len(influencers) == 0 {
		return nil
	}

	ids := make([]string, 0, len(influencers))
	byID := make(map[string]*domain.Influencer, len(influencers))
	for _, inf := range influencers {
		inf.Platforms = []domain.SocialPlatform{}
		ids = append(ids, inf.ID)
		byID[inf.ID] = inf
	}

	query := `SELECT * FROM platforms WHERE influencer_id = ANY($1)`
	args := []interface{}{pq.Array(ids)}
	argCount := 2

	if len(filter.Platforms) > 0 {
		query += fmt.Sprintf(" AND platform = ANY($%d)", argCount)
		args = append(args, pq.Array(filter.Platforms))
		argCount++
	}

	if filter.FollowersMin != nil {
		query += fmt.Sprintf(" AND followers >= $%d", argCount)
		args = append(args, *filter.FollowersMin)
		argCount++
	}

	if filter.FollowersMax != nil {
		query += fmt.Sprintf(" AND followers <= $%d", argCount)
		args = append(args, *filter.FollowersMax)
		argCount++
	}

	if filter.EngagementMin != nil {
		query += fmt.Sprintf(" AND engagement_rate >= $%d", argCount)
		args = append(args, *filter.EngagementMin)
		argCount++
	}

	if filter.EngagementMax != nil {
		query += fmt.Sprintf(" AND engagement_rate <= $%d", argCount)
		args = append(args, *filter.EngagementMax)
		argCount++
	}

	query += " ORDER BY created_at ASC"

	var platforms []domain.SocialPlatform
	if err := r.db.SelectContext(ctx, &platforms, query, args...); err != nil {
		return err
	}

	for _, p := range platforms {
		if inf, ok := byID[p.InfluencerID]; ok {
			inf.Platforms = append(inf.Platforms, p)
		}
	}
	return nil
}

func (r *influencerRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Influencer, error) {
	query := `UPDATE influencers SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrInfluencerNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *influencerRepository) ResetStatusByEmail(ctx context.Context, email string, status domain.Status) (int64, error) {
	query := `UPDATE influencers SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE email = $2`
	result, err := r.db.ExecContext(ctx, query, status, email)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *influencerRepository) Delete(ctx context.Context, id string) error {
	// platform rows go with the parent via ON DELETE CASCADE
	query := `DELETE FROM influencers WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInfluencerNotFound
	}
	return nil
}

func (r *influencerRepository) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM influencers WHERE status = $1`
	if err := r.db.GetContext(ctx, &count, query, status); err != nil {
		return 0, err
	}
	return count, nil
}
