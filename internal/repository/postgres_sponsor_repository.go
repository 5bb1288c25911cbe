package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/pkg/database"
)

const sponsorColumns = `id, name, COALESCE(industry, '') as industry, COALESCE(website, '') as website,
	COALESCE(logo_url, '') as logo_url, COALESCE(contact_name, '') as contact_name,
	COALESCE(contact_email, '') as contact_email, COALESCE(contact_phone, '') as contact_phone,
	owner_user_id, is_archived, created_at, updated_at`

// PostgresSponsorRepository implements SponsorRepository using PostgreSQL
type PostgresSponsorRepository struct {
	db *database.PostgresDB
}

// NewPostgresSponsorRepository creates a new PostgresSponsorRepository
func NewPostgresSponsorRepository(db *database.PostgresDB) *PostgresSponsorRepository {
	return &PostgresSponsorRepository{db: db}
}

func (r *PostgresSponsorRepository) scanSponsor(row pgx.Row) (*domain.Sponsor, error) {
	s := &domain.Sponsor{}
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Industry,
		&s.Website,
		&s.LogoURL,
		&s.ContactName,
		&s.ContactEmail,
		&s.ContactPhone,
		&s.OwnerUserID,
		&s.IsArchived,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSponsorNotFound
		}
		return nil, fmt.Errorf("scan sponsor: %w", err)
	}
	return s, nil
}

// Create creates a new sponsor
func (r *PostgresSponsorRepository) Create(ctx context.Context, sponsor *domain.Sponsor) error {
	query := `
		INSERT INTO sponsors (id, name, industry, website, logo_url, contact_name,
			contact_email, contact_phone, owner_user_id, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Querier(ctx).Exec(ctx, query,
		sponsor.ID,
		sponsor.Name,
		sponsor.Industry,
		sponsor.Website,
		sponsor.LogoURL,
		sponsor.ContactName,
		sponsor.ContactEmail,
		sponsor.ContactPhone,
		sponsor.OwnerUserID,
		sponsor.IsArchived,
		sponsor.CreatedAt,
		sponsor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create sponsor: %w", err)
	}
	return nil
}

// GetByID retrieves a sponsor by ID
func (r *PostgresSponsorRepository) GetByID(ctx context.Context, id string) (*domain.Sponsor, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsors WHERE id = $1`
	return r.scanSponsor(r.db.Querier(ctx).QueryRow(ctx, query, id))
}

// List retrieves sponsors with pagination and filters
func (r *PostgresSponsorRepository) List(ctx context.Context, filter SponsorListFilter) ([]*domain.Sponsor, int, error) {
	where := `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		AND ($2 = '' OR industry = $2)
		AND ($3 OR NOT is_archived)`

	var total int
	countQuery := `SELECT COUNT(*) FROM sponsors ` + where
	err := r.db.Querier(ctx).QueryRow(ctx, countQuery, filter.Search, filter.Industry, filter.IncludeArchived).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count sponsors: %w", err)
	}

	query := `SELECT ` + sponsorColumns + ` FROM sponsors ` + where + `
		ORDER BY name ASC
		LIMIT $4 OFFSET $5`
	rows, err := r.db.Querier(ctx).Query(ctx, query,
		filter.Search, filter.Industry, filter.IncludeArchived, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sponsors: %w", err)
	}
	defer rows.Close()

	var sponsors []*domain.Sponsor
	for rows.Next() {
		s, err := r.scanSponsor(rows)
		if err != nil {
			return nil, 0, err
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, total, rows.Err()
}

// Update updates a sponsor profile
func (r *PostgresSponsorRepository) Update(ctx context.Context, sponsor *domain.Sponsor) error {
	query := `
		UPDATE sponsors
		SET name = $2, industry = $3, website = $4, logo_url = $5, contact_name = $6,
			contact_email = $7, contact_phone = $8, updated_at = $9
		WHERE id = $1
	`
	sponsor.UpdatedAt = time.Now()
	result, err := r.db.Querier(ctx).Exec(ctx, query,
		sponsor.ID,
		sponsor.Name,
		sponsor.Industry,
		sponsor.Website,
		sponsor.LogoURL,
		sponsor.ContactName,
		sponsor.ContactEmail,
		sponsor.ContactPhone,
		sponsor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sponsor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSponsorNotFound
	}
	return nil
}

// Archive hides a sponsor from the directory without deleting it
func (r *PostgresSponsorRepository) Archive(ctx context.Context, id string) error {
	query := `UPDATE sponsors SET is_archived = TRUE, updated_at = $2 WHERE id = $1`
	result, err := r.db.Querier(ctx).Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("archive sponsor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSponsorNotFound
	}
	return nil
}
