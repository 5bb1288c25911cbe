package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/pkg/database"
)

const packageColumns = `id, name, default_price, default_slots, deliverables, created_at, updated_at`

// PostgresPackageRepository implements PackageRepository using PostgreSQL.
// The deliverable template list is stored as a JSONB column.
type PostgresPackageRepository struct {
	db *database.PostgresDB
}

// NewPostgresPackageRepository creates a new PostgresPackageRepository
func NewPostgresPackageRepository(db *database.PostgresDB) *PostgresPackageRepository {
	return &PostgresPackageRepository{db: db}
}

func (r *PostgresPackageRepository) scanPackage(row pgx.Row) (*domain.Package, error) {
	p := &domain.Package{}
	var deliverables []byte
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.DefaultPrice,
		&p.DefaultSlots,
		&deliverables,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("scan package: %w", err)
	}
	if len(deliverables) > 0 {
		if err := json.Unmarshal(deliverables, &p.Deliverables); err != nil {
			return nil, fmt.Errorf("decode package deliverables: %w", err)
		}
	}
	return p, nil
}

// Create creates a new package template
func (r *PostgresPackageRepository) Create(ctx context.Context, pkg *domain.Package) error {
	deliverables, err := json.Marshal(pkg.Deliverables)
	if err != nil {
		return fmt.Errorf("encode package deliverables: %w", err)
	}
	query := `
		INSERT INTO sponsorship_packages (id, name, default_price, default_slots, deliverables, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.Querier(ctx).Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.DefaultPrice,
		pkg.DefaultSlots,
		deliverables,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("name", "a package with this name already exists")
		}
		return fmt.Errorf("create package: %w", err)
	}
	return nil
}

// GetByID retrieves a package by ID
func (r *PostgresPackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM sponsorship_packages WHERE id = $1`
	return r.scanPackage(r.db.Querier(ctx).QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a package by ID and locks its row. Callers
// must be inside a transaction; the lock serializes concurrent deal
// submits against the same package.
func (r *PostgresPackageRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM sponsorship_packages WHERE id = $1 FOR UPDATE`
	return r.scanPackage(r.db.Querier(ctx).QueryRow(ctx, query, id))
}

// List retrieves the full package catalog
func (r *PostgresPackageRepository) List(ctx context.Context) ([]*domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM sponsorship_packages ORDER BY default_price DESC, name ASC`
	rows, err := r.db.Querier(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var packages []*domain.Package
	for rows.Next() {
		p, err := r.scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

// Update updates a package template
func (r *PostgresPackageRepository) Update(ctx context.Context, pkg *domain.Package) error {
	deliverables, err := json.Marshal(pkg.Deliverables)
	if err != nil {
		return fmt.Errorf("encode package deliverables: %w", err)
	}
	query := `
		UPDATE sponsorship_packages
		SET name = $2, default_price = $3, default_slots = $4, deliverables = $5, updated_at = $6
		WHERE id = $1
	`
	pkg.UpdatedAt = time.Now()
	result, err := r.db.Querier(ctx).Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.DefaultPrice,
		pkg.DefaultSlots,
		deliverables,
		pkg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update package: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}
