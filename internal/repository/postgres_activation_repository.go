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

const activationColumns = `id, deal_id, title, COALESCE(type, '') as type, status,
	COALESCE(location, '') as location, COALESCE(description, '') as description,
	created_at, updated_at`

// PostgresActivationRepository implements ActivationRepository using PostgreSQL
type PostgresActivationRepository struct {
	db *database.PostgresDB
}

// NewPostgresActivationRepository creates a new PostgresActivationRepository
func NewPostgresActivationRepository(db *database.PostgresDB) *PostgresActivationRepository {
	return &PostgresActivationRepository{db: db}
}

func (r *PostgresActivationRepository) scanActivation(row pgx.Row) (*domain.Activation, error) {
	a := &domain.Activation{}
	err := row.Scan(
		&a.ID,
		&a.DealID,
		&a.Title,
		&a.Type,
		&a.Status,
		&a.Location,
		&a.Description,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivationNotFound
		}
		return nil, fmt.Errorf("scan activation: %w", err)
	}
	return a, nil
}

// Create inserts a new activation
func (r *PostgresActivationRepository) Create(ctx context.Context, activation *domain.Activation) error {
	query := `
		INSERT INTO activations (id, deal_id, title, type, status, location, description, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9)
	`
	_, err := r.db.Querier(ctx).Exec(ctx, query,
		activation.ID,
		activation.DealID,
		activation.Title,
		activation.Type,
		activation.Status,
		activation.Location,
		activation.Description,
		activation.CreatedAt,
		activation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create activation: %w", err)
	}
	return nil
}

// CreateBatch inserts all activations, failing as a unit
func (r *PostgresActivationRepository) CreateBatch(ctx context.Context, activations []*domain.Activation) error {
	for _, a := range activations {
		if err := r.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves an activation by ID
func (r *PostgresActivationRepository) GetByID(ctx context.Context, id string) (*domain.Activation, error) {
	query := `SELECT ` + activationColumns + ` FROM activations WHERE id = $1`
	return r.scanActivation(r.db.Querier(ctx).QueryRow(ctx, query, id))
}

// ListByDeal retrieves all activations for a deal
func (r *PostgresActivationRepository) ListByDeal(ctx context.Context, dealID string) ([]*domain.Activation, error) {
	query := `SELECT ` + activationColumns + ` FROM activations WHERE deal_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Querier(ctx).Query(ctx, query, dealID)
	if err != nil {
		return nil, fmt.Errorf("list activations: %w", err)
	}
	defer rows.Close()

	var activations []*domain.Activation
	for rows.Next() {
		a, err := r.scanActivation(rows)
		if err != nil {
			return nil, err
		}
		activations = append(activations, a)
	}
	return activations, rows.Err()
}

// UpdateStatus moves an activation to a new status
func (r *PostgresActivationRepository) UpdateStatus(ctx context.Context, id string, status domain.ActivationStatus) error {
	query := `UPDATE activations SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Querier(ctx).Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update activation status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrActivationNotFound
	}
	return nil
}
