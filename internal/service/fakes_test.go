package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/repository"
	"github.com/runwaydesk/sponsorhub/pkg/logger"
)

// loggerForTest builds a quiet logger for service tests
func loggerForTest() (*logger.Logger, error) {
	return logger.New(&logger.Config{Level: "error", ServiceName: "test"})
}

// memStore backs the in-memory repository fakes used by the service tests
type memStore struct {
	sponsors     map[string]*domain.Sponsor
	events       map[string]*domain.Event
	tiers        map[string]*domain.TicketTier
	phases       map[string]*domain.Phase
	packages     map[string]*domain.Package
	deals        map[string]*domain.Deal
	activations  map[string]*domain.Activation
	deliverables map[string]*domain.Deliverable
}

func newMemStore() *memStore {
	return &memStore{
		sponsors:     make(map[string]*domain.Sponsor),
		events:       make(map[string]*domain.Event),
		tiers:        make(map[string]*domain.TicketTier),
		phases:       make(map[string]*domain.Phase),
		packages:     make(map[string]*domain.Package),
		deals:        make(map[string]*domain.Deal),
		activations:  make(map[string]*domain.Activation),
		deliverables: make(map[string]*domain.Deliverable),
	}
}

func copyMap[V any](src map[string]*V) map[string]*V {
	dst := make(map[string]*V, len(src))
	for k, v := range src {
		c := *v
		dst[k] = &c
	}
	return dst
}

type fakeSponsorRepo struct{ store *memStore }

func (r *fakeSponsorRepo) Create(_ context.Context, s *domain.Sponsor) error {
	r.store.sponsors[s.ID] = s
	return nil
}

func (r *fakeSponsorRepo) GetByID(_ context.Context, id string) (*domain.Sponsor, error) {
	s, ok := r.store.sponsors[id]
	if !ok {
		return nil, domain.ErrSponsorNotFound
	}
	return s, nil
}

func (r *fakeSponsorRepo) List(_ context.Context, _ repository.SponsorListFilter) ([]*domain.Sponsor, int, error) {
	var out []*domain.Sponsor
	for _, s := range r.store.sponsors {
		out = append(out, s)
	}
	return out, len(out), nil
}

func (r *fakeSponsorRepo) Update(_ context.Context, s *domain.Sponsor) error {
	if _, ok := r.store.sponsors[s.ID]; !ok {
		return domain.ErrSponsorNotFound
	}
	r.store.sponsors[s.ID] = s
	return nil
}

func (r *fakeSponsorRepo) Archive(_ context.Context, id string) error {
	s, ok := r.store.sponsors[id]
	if !ok {
		return domain.ErrSponsorNotFound
	}
	s.IsArchived = true
	return nil
}

type fakeEventRepo struct{ store *memStore }

func (r *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	r.store.events[e.ID] = e
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.store.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

func (r *fakeEventRepo) List(_ context.Context, _ repository.EventListFilter) ([]*domain.Event, int, error) {
	var out []*domain.Event
	for _, e := range r.store.events {
		out = append(out, e)
	}
	return out, len(out), nil
}

func (r *fakeEventRepo) Update(_ context.Context, e *domain.Event) error {
	if _, ok := r.store.events[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	r.store.events[e.ID] = e
	return nil
}

func (r *fakeEventRepo) CreateTier(_ context.Context, t *domain.TicketTier) error {
	r.store.tiers[t.ID] = t
	return nil
}

func (r *fakeEventRepo) GetTierByID(_ context.Context, id string) (*domain.TicketTier, error) {
	t, ok := r.store.tiers[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return t, nil
}

func (r *fakeEventRepo) ListTiers(_ context.Context, eventID string) ([]*domain.TicketTier, error) {
	var out []*domain.TicketTier
	for _, t := range r.store.tiers {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) UpdateTier(_ context.Context, t *domain.TicketTier) error {
	if _, ok := r.store.tiers[t.ID]; !ok {
		return domain.ErrEventNotFound
	}
	r.store.tiers[t.ID] = t
	return nil
}

func (r *fakeEventRepo) CreatePhases(_ context.Context, phases []*domain.Phase) error {
	for _, p := range phases {
		r.store.phases[p.ID] = p
	}
	return nil
}

func (r *fakeEventRepo) GetPhaseByID(_ context.Context, id string) (*domain.Phase, error) {
	p, ok := r.store.phases[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return p, nil
}

func (r *fakeEventRepo) ListPhases(_ context.Context, eventID string) ([]*domain.Phase, error) {
	var out []*domain.Phase
	for _, p := range r.store.phases {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) UpdatePhaseStatus(_ context.Context, id string, status domain.PhaseStatus) error {
	p, ok := r.store.phases[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	p.Status = status
	return nil
}

type fakePackageRepo struct{ store *memStore }

func (r *fakePackageRepo) Create(_ context.Context, p *domain.Package) error {
	r.store.packages[p.ID] = p
	return nil
}

func (r *fakePackageRepo) GetByID(_ context.Context, id string) (*domain.Package, error) {
	p, ok := r.store.packages[id]
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	return p, nil
}

func (r *fakePackageRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Package, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePackageRepo) List(_ context.Context) ([]*domain.Package, error) {
	var out []*domain.Package
	for _, p := range r.store.packages {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePackageRepo) Update(_ context.Context, p *domain.Package) error {
	if _, ok := r.store.packages[p.ID]; !ok {
		return domain.ErrPackageNotFound
	}
	r.store.packages[p.ID] = p
	return nil
}

// fakeDealRepo implements DealRepository with snapshot-based rollback so
// WithTx behaves transactionally across deals, activations and
// deliverables.
type fakeDealRepo struct{ store *memStore }

func (r *fakeDealRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	deals := copyMap(r.store.deals)
	activations := copyMap(r.store.activations)
	deliverables := copyMap(r.store.deliverables)
	if err := fn(ctx); err != nil {
		r.store.deals = deals
		r.store.activations = activations
		r.store.deliverables = deliverables
		return err
	}
	return nil
}

func (r *fakeDealRepo) Create(_ context.Context, d *domain.Deal) error {
	if d.IdempotencyKey != "" {
		for _, existing := range r.store.deals {
			if existing.IdempotencyKey == d.IdempotencyKey {
				return domain.ErrDuplicateSubmit
			}
		}
	}
	r.store.deals[d.ID] = d
	return nil
}

func (r *fakeDealRepo) GetByID(_ context.Context, id string) (*domain.Deal, error) {
	d, ok := r.store.deals[id]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	return d, nil
}

func (r *fakeDealRepo) GetByIdempotencyKey(_ context.Context, key string) (*domain.Deal, error) {
	for _, d := range r.store.deals {
		if d.IdempotencyKey == key {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDealRepo) List(_ context.Context, filter repository.DealListFilter) ([]*domain.Deal, int, error) {
	var out []*domain.Deal
	for _, d := range r.store.deals {
		if filter.EventID != "" && d.EventID != filter.EventID {
			continue
		}
		if filter.SponsorID != "" && d.SponsorID != filter.SponsorID {
			continue
		}
		if filter.Status != "" && string(d.Status) != filter.Status {
			continue
		}
		out = append(out, d)
	}
	return out, len(out), nil
}

func (r *fakeDealRepo) ListByEvent(_ context.Context, eventID string) ([]*domain.Deal, error) {
	var out []*domain.Deal
	for _, d := range r.store.deals {
		if d.EventID == eventID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDealRepo) CountReserving(_ context.Context, eventID, level string, statuses []string) (int, error) {
	reserving := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		reserving[s] = true
	}
	count := 0
	for _, d := range r.store.deals {
		if d.EventID == eventID && d.Level == level && reserving[string(d.Status)] {
			count++
		}
	}
	return count, nil
}

func (r *fakeDealRepo) Update(_ context.Context, d *domain.Deal) error {
	if _, ok := r.store.deals[d.ID]; !ok {
		return domain.ErrDealNotFound
	}
	r.store.deals[d.ID] = d
	return nil
}

func (r *fakeDealRepo) UpdateStatus(_ context.Context, id string, expected, next domain.DealStatus, _ string) error {
	d, ok := r.store.deals[id]
	if !ok {
		return domain.ErrDealNotFound
	}
	if d.Status != expected {
		return domain.ErrStaleStatus
	}
	d.Status = next
	return nil
}

type fakeActivationRepo struct {
	store      *memStore
	failCreate bool
}

var errActivationInsert = errors.New("activation insert failed")

func (r *fakeActivationRepo) Create(_ context.Context, a *domain.Activation) error {
	if r.failCreate {
		return errActivationInsert
	}
	r.store.activations[a.ID] = a
	return nil
}

func (r *fakeActivationRepo) CreateBatch(ctx context.Context, activations []*domain.Activation) error {
	for _, a := range activations {
		if err := r.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeActivationRepo) GetByID(_ context.Context, id string) (*domain.Activation, error) {
	a, ok := r.store.activations[id]
	if !ok {
		return nil, domain.ErrActivationNotFound
	}
	return a, nil
}

func (r *fakeActivationRepo) ListByDeal(_ context.Context, dealID string) ([]*domain.Activation, error) {
	var out []*domain.Activation
	for _, a := range r.store.activations {
		if a.DealID == dealID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivationRepo) UpdateStatus(_ context.Context, id string, status domain.ActivationStatus) error {
	a, ok := r.store.activations[id]
	if !ok {
		return domain.ErrActivationNotFound
	}
	a.Status = status
	return nil
}

type fakeDeliverableRepo struct{ store *memStore }

func (r *fakeDeliverableRepo) Create(_ context.Context, d *domain.Deliverable) error {
	r.store.deliverables[d.ID] = d
	return nil
}

func (r *fakeDeliverableRepo) CreateBatch(ctx context.Context, deliverables []*domain.Deliverable) error {
	for _, d := range deliverables {
		if err := r.Create(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeDeliverableRepo) GetByID(_ context.Context, id string) (*domain.Deliverable, error) {
	d, ok := r.store.deliverables[id]
	if !ok {
		return nil, domain.ErrDeliverableNotFound
	}
	return d, nil
}

func (r *fakeDeliverableRepo) ListByDeal(_ context.Context, dealID string) ([]*domain.Deliverable, error) {
	var out []*domain.Deliverable
	for _, d := range r.store.deliverables {
		if d.DealID == dealID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDeliverableRepo) UpdateStatus(_ context.Context, id string, status domain.DeliverableStatus, assetURL string) error {
	d, ok := r.store.deliverables[id]
	if !ok {
		return domain.ErrDeliverableNotFound
	}
	d.Status = status
	if assetURL != "" {
		d.AssetURL = assetURL
	}
	return nil
}

// fakeDraftRepo stores drafts with JSON round-trips so mutations on a
// returned draft never leak into the store, mirroring Redis semantics.
type fakeDraftRepo struct {
	drafts map[string][]byte
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{drafts: make(map[string][]byte)}
}

func (r *fakeDraftRepo) Save(_ context.Context, draft *domain.DealDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	r.drafts[draft.ID] = payload
	return nil
}

func (r *fakeDraftRepo) Get(_ context.Context, id string) (*domain.DealDraft, error) {
	payload, ok := r.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	draft := &domain.DealDraft{}
	if err := json.Unmarshal(payload, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (r *fakeDraftRepo) Delete(_ context.Context, id string) error {
	delete(r.drafts, id)
	return nil
}

// recordingPublisher captures lifecycle events for assertions
type recordingPublisher struct {
	submitted     []string
	statusChanges []string
}

func (p *recordingPublisher) PublishDealSubmitted(_ context.Context, deal *domain.Deal) {
	p.submitted = append(p.submitted, deal.ID)
}

func (p *recordingPublisher) PublishStatusChanged(_ context.Context, deal *domain.Deal, _ domain.DealStatus, _ string) {
	p.statusChanges = append(p.statusChanges, deal.ID)
}
