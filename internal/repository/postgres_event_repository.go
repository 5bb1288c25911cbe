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

const eventColumns = `id, name, COALESCE(venue, '') as venue, start_time,
	COALESCE(end_time, start_time) as end_time, created_at, updated_at`

const tierColumns = `id, event_id, name, price, quantity_total, quantity_sold, created_at, updated_at`

const phaseColumns = `id, event_id, name, order_index, status, created_at, updated_at`

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	db *database.PostgresDB
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(db *database.PostgresDB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) scanEvent(row pgx.Row) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.Name, &e.Venue, &e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return e, nil
}

// Create creates a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, name, venue, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, $4), $6, $7)
	`
	_, err := r.db.Querier(ctx).Exec(ctx, query,
		event.ID,
		event.Name,
		event.Venue,
		event.StartTime,
		event.EndTime,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.scanEvent(r.db.Querier(ctx).QueryRow(ctx, query, id))
}

// List retrieves events with pagination and filters
func (r *PostgresEventRepository) List(ctx context.Context, filter EventListFilter) ([]*domain.Event, int, error) {
	where := `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		AND (NOT $2 OR start_time > NOW())`

	var total int
	countQuery := `SELECT COUNT(*) FROM events ` + where
	err := r.db.Querier(ctx).QueryRow(ctx, countQuery, filter.Search, filter.Upcoming).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	query := `SELECT ` + eventColumns + ` FROM events ` + where + `
		ORDER BY start_time ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Querier(ctx).Query(ctx, query, filter.Search, filter.Upcoming, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := r.scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

// Update updates an event
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET name = $2, venue = $3, start_time = $4, end_time = NULLIF($5, $4), updated_at = $6
		WHERE id = $1
	`
	event.UpdatedAt = time.Now()
	result, err := r.db.Querier(ctx).Exec(ctx, query,
		event.ID,
		event.Name,
		event.Venue,
		event.StartTime,
		event.EndTime,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *PostgresEventRepository) scanTier(row pgx.Row) (*domain.TicketTier, error) {
	t := &domain.TicketTier{}
	err := row.Scan(&t.ID, &t.EventID, &t.Name, &t.Price, &t.QuantityTotal, &t.QuantitySold, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan ticket tier: %w", err)
	}
	return t, nil
}

// CreateTier adds a ticket tier to an event
func (r *PostgresEventRepository) CreateTier(ctx context.Context, tier *domain.TicketTier) error {
	query := `
		INSERT INTO ticket_tiers (id, event_id, name, price, quantity_total, quantity_sold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Querier(ctx).Exec(ctx, query,
		tier.ID,
		tier.EventID,
		tier.Name,
		tier.Price,
		tier.QuantityTotal,
		tier.QuantitySold,
		tier.CreatedAt,
		tier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create ticket tier: %w", err)
	}
	return nil
}

// GetTierByID retrieves a ticket tier by ID
func (r *PostgresEventRepository) GetTierByID(ctx context.Context, id string) (*domain.TicketTier, error) {
	query := `SELECT ` + tierColumns + ` FROM ticket_tiers WHERE id = $1`
	return r.scanTier(r.db.Querier(ctx).QueryRow(ctx, query, id))
}

// ListTiers retrieves all ticket tiers for an event
func (r *PostgresEventRepository) ListTiers(ctx context.Context, eventID string) ([]*domain.TicketTier, error) {
	query := `SELECT ` + tierColumns + ` FROM ticket_tiers WHERE event_id = $1 ORDER BY price DESC, name ASC`
	rows, err := r.db.Querier(ctx).Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list ticket tiers: %w", err)
	}
	defer rows.Close()

	var tiers []*domain.TicketTier
	for rows.Next() {
		t, err := r.scanTier(rows)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

// UpdateTier updates a ticket tier
func (r *PostgresEventRepository) UpdateTier(ctx context.Context, tier *domain.TicketTier) error {
	query := `
		UPDATE ticket_tiers
		SET name = $2, price = $3, quantity_total = $4, quantity_sold = $5, updated_at = $6
		WHERE id = $1
	`
	tier.UpdatedAt = time.Now()
	result, err := r.db.Querier(ctx).Exec(ctx, query,
		tier.ID,
		tier.Name,
		tier.Price,
		tier.QuantityTotal,
		tier.QuantitySold,
		tier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ticket tier: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *PostgresEventRepository) scanPhase(row pgx.Row) (*domain.Phase, error) {
	p := &domain.Phase{}
	err := row.Scan(&p.ID, &p.EventID, &p.Name, &p.OrderIndex, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan phase: %w", err)
	}
	return p, nil
}

// CreatePhases inserts a batch of production phases for an event
func (r *PostgresEventRepository) CreatePhases(ctx context.Context, phases []*domain.Phase) error {
	query := `
		INSERT INTO event_phases (id, event_id, name, order_index, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, p := range phases {
		_, err := r.db.Querier(ctx).Exec(ctx, query,
			p.ID, p.EventID, p.Name, p.OrderIndex, p.Status, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("create phase %q: %w", p.Name, err)
		}
	}
	return nil
}

// GetPhaseByID retrieves a phase by ID
func (r *PostgresEventRepository) GetPhaseByID(ctx context.Context, id string) (*domain.Phase, error) {
	query := `SELECT ` + phaseColumns + ` FROM event_phases WHERE id = $1`
	return r.scanPhase(r.db.Querier(ctx).QueryRow(ctx, query, id))
}

// ListPhases retrieves all phases for an event ordered by position
func (r *PostgresEventRepository) ListPhases(ctx context.Context, eventID string) ([]*domain.Phase, error) {
	query := `SELECT ` + phaseColumns + ` FROM event_phases WHERE event_id = $1 ORDER BY order_index ASC`
	rows, err := r.db.Querier(ctx).Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}
	defer rows.Close()

	var phases []*domain.Phase
	for rows.Next() {
		p, err := r.scanPhase(rows)
		if err != nil {
			return nil, err
		}
		phases = append(phases, p)
	}
	return phases, rows.Err()
}

// UpdatePhaseStatus moves a checklist phase to a new status
func (r *PostgresEventRepository) UpdatePhaseStatus(ctx context.Context, id string, status domain.PhaseStatus) error {
	query := `UPDATE event_phases SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Querier(ctx).Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update phase status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
