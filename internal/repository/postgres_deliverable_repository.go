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

const deliverableColumns = `id, deal_id, title, due_date, status,
	COALESCE(asset_url, '') as asset_url, created_at, updated_at`

// PostgresDeliverableRepository implements DeliverableRepository using PostgreSQL
type PostgresDeliverableRepository struct {
	db *database.PostgresDB
}

// NewPostgresDeliverableRepository creates a new PostgresDeliverableRepository
func NewPostgresDeliverableRepository(db *database.PostgresDB) *PostgresDeliverableRepository {
	return &PostgresDeliverableRepository{db: db}
}

func (r *PostgresDeliverableRepository) scanDeliverable(row pgx.Row) (*domain.Deliverable, error) {
	d := &domain.Deliverable{}
	err := row.Scan(
		&d.ID,
		&d.DealID,
		&d.Title,
		&d.DueDate,
		&d.Status,
		&d.AssetURL,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeliverableNotFound
		}
		return nil, fmt.Errorf("scan deliverable: %w", err)
	}
	return d, nil
}

// Create inserts a new deliverable
func (r *PostgresDeliverableRepository) Create(ctx context.Context, deliverable *domain.Deliverable) error {
	query := `
		INSERT INTO deliverables (id, deal_id, title, due_date, status, asset_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
	`
	_, err := r.db.Querier(ctx).Exec(ctx, query,
		deliverable.ID,
		deliverable.DealID,
		deliverable.Title,
		deliverable.DueDate,
		deliverable.Status,
		deliverable.AssetURL,
		deliverable.CreatedAt,
		deliverable.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create deliverable: %w", err)
	}
	return nil
}

// CreateBatch inserts all deliverables, failing as a unit
func (r *PostgresDeliverableRepository) CreateBatch(ctx context.Context, deliverables []*domain.Deliverable) error {
	for _, d := range deliverables {
		if err := r.Create(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a deliverable by ID
func (r *PostgresDeliverableRepository) GetByID(ctx context.Context, id string) (*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE id = $1`
	return r.scanDeliverable(r.db.Querier(ctx).QueryRow(ctx, query, id))
}

// ListByDeal retrieves all deliverables for a deal
func (r *PostgresDeliverableRepository) ListByDeal(ctx context.Context, dealID string) ([]*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE deal_id = $1 ORDER BY due_date ASC NULLS LAST, created_at ASC`
	rows, err := r.db.Querier(ctx).Query(ctx, query, dealID)
	if err != nil {
		return nil, fmt.Errorf("list deliverables: %w", err)
	}
	defer rows.Close()

	var deliverables []*domain.Deliverable
	for rows.Next() {
		d, err := r.scanDeliverable(rows)
		if err != nil {
			return nil, err
		}
		deliverables = append(deliverables, d)
	}
	return deliverables, rows.Err()
}

// UpdateStatus moves a deliverable to a new status, optionally recording
// the uploaded asset URL
func (r *PostgresDeliverableRepository) UpdateStatus(ctx context.Context, id string, status domain.DeliverableStatus, assetURL string) error {
	query := `
		UPDATE deliverables
		SET status = $2, asset_url = COALESCE(NULLIF($3, ''), asset_url), updated_at = $4
		WHERE id = $1
	`
	result, err := r.db.Querier(ctx).Exec(ctx, query, id, status, assetURL, time.Now())
	if err != nil {
		return fmt.Errorf("update deliverable status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDeliverableNotFound
	}
	return nil
}
