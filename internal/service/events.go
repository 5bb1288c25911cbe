package service

import (
	"context"
	"time"

	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/pkg/kafka"
	"github.com/runwaydesk/sponsorhub/pkg/logger"
	"go.uber.org/zap"
)

// Lifecycle event types emitted to the deal feed
const (
	EventDealSubmitted     = "deal.submitted"
	EventDealStatusChanged = "deal.status_changed"
)

// DealEvent is the record published for downstream CRM and analytics
// consumers after a deal write commits.
type DealEvent struct {
	Type       string    `json:"type"`
	DealID     string    `json:"deal_id"`
	EventID    string    `json:"event_id"`
	SponsorID  string    `json:"sponsor_id"`
	Status     string    `json:"status"`
	FromStatus string    `json:"from_status,omitempty"`
	Level      string    `json:"level,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DealEventPublisher emits deal lifecycle events. Implementations must
// never block or fail the caller; delivery is best effort.
type DealEventPublisher interface {
	PublishDealSubmitted(ctx context.Context, deal *domain.Deal)
	PublishStatusChanged(ctx context.Context, deal *domain.Deal, from domain.DealStatus, reason string)
}

// KafkaDealEventPublisher publishes lifecycle events to the deal topic,
// logging delivery failures instead of surfacing them.
type KafkaDealEventPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

// NewKafkaDealEventPublisher creates a new KafkaDealEventPublisher
func NewKafkaDealEventPublisher(producer *kafka.Producer, log *logger.Logger) *KafkaDealEventPublisher {
	return &KafkaDealEventPublisher{producer: producer, log: log}
}

func (p *KafkaDealEventPublisher) publish(ctx context.Context, event DealEvent) {
	err := p.producer.Publish(ctx, event.DealID, event, func(err error) {
		if err != nil {
			p.log.Warn("deal event delivery failed",
				zap.String("type", event.Type),
				zap.String("deal_id", event.DealID),
				zap.Error(err))
		}
	})
	if err != nil {
		p.log.Warn("deal event publish failed",
			zap.String("type", event.Type),
			zap.String("deal_id", event.DealID),
			zap.Error(err))
	}
}

// PublishDealSubmitted emits a deal.submitted record
func (p *KafkaDealEventPublisher) PublishDealSubmitted(ctx context.Context, deal *domain.Deal) {
	p.publish(ctx, DealEvent{
		Type:       EventDealSubmitted,
		DealID:     deal.ID,
		EventID:    deal.EventID,
		SponsorID:  deal.SponsorID,
		Status:     string(deal.Status),
		Level:      deal.Level,
		OccurredAt: time.Now(),
	})
}

// PublishStatusChanged emits a deal.status_changed record
func (p *KafkaDealEventPublisher) PublishStatusChanged(ctx context.Context, deal *domain.Deal, from domain.DealStatus, reason string) {
	p.publish(ctx, DealEvent{
		Type:       EventDealStatusChanged,
		DealID:     deal.ID,
		EventID:    deal.EventID,
		SponsorID:  deal.SponsorID,
		Status:     string(deal.Status),
		FromStatus: string(from),
		Reason:     reason,
		OccurredAt: time.Now(),
	})
}

// NoopDealEventPublisher is used when the Kafka feed is disabled
type NoopDealEventPublisher struct{}

// PublishDealSubmitted does nothing
func (NoopDealEventPublisher) PublishDealSubmitted(context.Context, *domain.Deal) {}

// PublishStatusChanged does nothing
func (NoopDealEventPublisher) PublishStatusChanged(context.Context, *domain.Deal, domain.DealStatus, string) {
}
