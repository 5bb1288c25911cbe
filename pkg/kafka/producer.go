package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Config holds Kafka producer settings
type Config struct {
	Brokers  []string
	ClientID string
	Topic    string
}

// Producer publishes JSON records to a single topic
type Producer struct {
	client *kgo.Client
	topic  string
}

// NewProducer creates a Kafka producer
func NewProducer(cfg *Config) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &Producer{client: client, topic: cfg.Topic}, nil
}

// Publish marshals value to JSON and produces it asynchronously. The
// callback receives the delivery error, if any; publishing never blocks
// the caller.
func (p *Producer) Publish(ctx context.Context, key string, value interface{}, done func(error)) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal kafka payload: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(key),
		Value: payload,
	}

	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if done != nil {
			done(err)
		}
	})
	return nil
}

// Flush waits for buffered records to be delivered
func (p *Producer) Flush(ctx context.Context) error {
	return p.client.Flush(ctx)
}

// Close flushes and closes the underlying client
func (p *Producer) Close() {
	p.client.Close()
}
