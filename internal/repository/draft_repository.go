package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/pkg/redis"
)

// DraftRepository defines the interface for wizard draft storage
type DraftRepository interface {
	// Save stores a draft, overwriting any previous version
	Save(ctx context.Context, draft *domain.DealDraft) error
	// Get retrieves a draft by ID
	Get(ctx context.Context, id string) (*domain.DealDraft, error)
	// Delete removes a draft after a successful submit
	Delete(ctx context.Context, id string) error
}

// RedisDraftRepository stores wizard drafts as JSON blobs in Redis. A
// TTL of zero keeps drafts until the caller deletes them; abandoning a
// draft is the caller's concern.
type RedisDraftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftRepository creates a new RedisDraftRepository
func NewRedisDraftRepository(client *redis.Client, ttl time.Duration) *RedisDraftRepository {
	return &RedisDraftRepository{client: client, ttl: ttl}
}

func draftKey(id string) string {
	return "draft:deal:" + id
}

// Save stores a draft, overwriting any previous version
func (r *RedisDraftRepository) Save(ctx context.Context, draft *domain.DealDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := r.client.Set(ctx, draftKey(draft.ID), payload, r.ttl); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Get retrieves a draft by ID
func (r *RedisDraftRepository) Get(ctx context.Context, id string) (*domain.DealDraft, error) {
	payload, err := r.client.Get(ctx, draftKey(id))
	if err != nil {
		if redis.IsNil(err) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	draft := &domain.DealDraft{}
	if err := json.Unmarshal([]byte(payload), draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

// Delete removes a draft after a successful submit
func (r *RedisDraftRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, draftKey(id)); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
