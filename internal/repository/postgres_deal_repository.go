package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/pkg/database"
)

const dealColumns = `id, event_id, sponsor_id, status, level, cash_value, in_kind_value,
	COALESCE(contract_url, '') as contract_url, COALESCE(idempotency_key, '') as idempotency_key,
	created_at, updated_at`

// PostgresDealRepository implements DealRepository using PostgreSQL
type PostgresDealRepository struct {
	db *database.PostgresDB
}

// NewPostgresDealRepository creates a new PostgresDealRepository
func NewPostgresDealRepository(db *database.PostgresDB) *PostgresDealRepository {
	return &PostgresDealRepository{db: db}
}

// WithTx runs fn inside a single transaction
func (r *PostgresDealRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithTx(ctx, fn)
}

func (r *PostgresDealRepository) scanDeal(row pgx.Row) (*domain.Deal, error) {
	d := &domain.Deal{}
	err := row.Scan(
		&d.ID,
		&d.EventID,
		&d.SponsorID,
		&d.Status,
		&d.Level,
		&d.CashValue,
		&d.InKindValue,
		&d.ContractURL,
		&d.IdempotencyKey,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDealNotFound
		}
		return nil, fmt.Errorf("scan deal: %w", err)
	}
	return d, nil
}

// Create inserts a new deal
func (r *PostgresDealRepository) Create(ctx context.Context, deal *domain.Deal) error {
	query := `
		INSERT INTO deals (id, event_id, sponsor_id, status, level, cash_value, in_kind_value,
			contract_url, idempotency_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11)
	`
	_, err := r.db.Querier(ctx).Exec(ctx, query,
		deal.ID,
		deal.EventID,
		deal.SponsorID,
		deal.Status,
		deal.Level,
		deal.CashValue,
		deal.InKindValue,
		deal.ContractURL,
		deal.IdempotencyKey,
		deal.CreatedAt,
		deal.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSubmit
		}
		return fmt.Errorf("create deal: %w", err)
	}
	return nil
}

// GetByID retrieves a deal by ID
func (r *PostgresDealRepository) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`
	return r.scanDeal(r.db.Querier(ctx).QueryRow(ctx, query, id))
}

// GetByIdempotencyKey retrieves the deal a prior submit created with
// this key, or nil when no such submit happened
func (r *PostgresDealRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE idempotency_key = $1`
	deal, err := r.scanDeal(r.db.Querier(ctx).QueryRow(ctx, query, key))
	if errors.Is(err, domain.ErrDealNotFound) {
		return nil, nil
	}
	return deal, err
}

// List retrieves deals with pagination and filters
func (r *PostgresDealRepository) List(ctx context.Context, filter DealListFilter) ([]*domain.Deal, int, error) {
	where := `WHERE ($1 = '' OR event_id::text = $1)
		AND ($2 = '' OR sponsor_id::text = $2)
		AND ($3 = '' OR status::text = $3)`

	var total int
	countQuery := `SELECT COUNT(*) FROM deals ` + where
	err := r.db.Querier(ctx).QueryRow(ctx, countQuery, filter.EventID, filter.SponsorID, filter.Status).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count deals: %w", err)
	}

	query := `SELECT ` + dealColumns + ` FROM deals ` + where + `
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.db.Querier(ctx).Query(ctx, query,
		filter.EventID, filter.SponsorID, filter.Status, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	var deals []*domain.Deal
	for rows.Next() {
		d, err := r.scanDeal(rows)
		if err != nil {
			return nil, 0, err
		}
		deals = append(deals, d)
	}
	return deals, total, rows.Err()
}

// ListByEvent retrieves every deal for an event
func (r *PostgresDealRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE event_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Querier(ctx).Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list deals by event: %w", err)
	}
	defer rows.Close()

	var deals []*domain.Deal
	for rows.Next() {
		d, err := r.scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}

// CountReserving counts deals on an event/level whose status is one of
// the given reserving statuses. Run inside the submit transaction after
// the package row lock so the count cannot move under the caller.
func (r *PostgresDealRepository) CountReserving(ctx context.Context, eventID, level string, statuses []string) (int, error) {
	query := `SELECT COUNT(*) FROM deals WHERE event_id = $1 AND level = $2 AND status::text = ANY($3)`
	var count int
	if err := r.db.Querier(ctx).QueryRow(ctx, query, eventID, level, statuses).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reserving deals: %w", err)
	}
	return count, nil
}

// Update updates deal terms
func (r *PostgresDealRepository) Update(ctx context.Context, deal *domain.Deal) error {
	query := `
		UPDATE deals
		SET level = $2, cash_value = $3, in_kind_value = $4, contract_url = NULLIF($5, ''), updated_at = $6
		WHERE id = $1
	`
	deal.UpdatedAt = time.Now()
	result, err := r.db.Querier(ctx).Exec(ctx, query,
		deal.ID,
		deal.Level,
		deal.CashValue,
		deal.InKindValue,
		deal.ContractURL,
		deal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDealNotFound
	}
	return nil
}

// UpdateStatus moves a deal to a new status only if its stored status
// still equals expected. The compare-and-set and the audit row commit
// together.
func (r *PostgresDealRepository) UpdateStatus(ctx context.Context, id string, expected, next domain.DealStatus, reason string) error {
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		query := `UPDATE deals SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`
		result, err := r.db.Querier(ctx).Exec(ctx, query, id, expected, next, time.Now())
		if err != nil {
			return fmt.Errorf("update deal status: %w", err)
		}
		if result.RowsAffected() == 0 {
			// Distinguish a missing deal from a lost race
			var exists bool
			if err := r.db.Querier(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM deals WHERE id = $1)`, id).Scan(&exists); err != nil {
				return fmt.Errorf("check deal exists: %w", err)
			}
			if !exists {
				return domain.ErrDealNotFound
			}
			return domain.ErrStaleStatus
		}

		audit := `
			INSERT INTO deal_status_changes (id, deal_id, from_status, to_status, reason, changed_at)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		`
		if _, err := r.db.Querier(ctx).Exec(ctx, audit, uuid.NewString(), id, expected, next, reason, time.Now()); err != nil {
			return fmt.Errorf("record status change: %w", err)
		}
		return nil
	})
}
