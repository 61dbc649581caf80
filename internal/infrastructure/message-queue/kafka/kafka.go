package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/khangviet/storefront/config"
	"github.com/khangviet/storefront/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const maxRetries = 3

// Publisher sends domain events to the storefront topic.
type Publisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
	Close() error
}

type PublisherImpl struct {
	conn    *kafka.Conn
	mu      sync.Mutex
	backoff time.Duration
	timeout time.Duration
}

func CreateKafkaProducer(ctx context.Context, config *config.Config) (Publisher, error) {
	conn, err := kafka.DialLeader(ctx, "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, err
	}

	return &PublisherImpl{conn: conn, backoff: time.Second, timeout: config.KafkaConfig.WriteTimeout}, nil
}

func (p *PublisherImpl) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	for i := 0; i < maxRetries; i++ {
		err = p.writeKafkaMessageWithKey(ctx, jsonMsg, key)
		if err == nil {
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", msg.EventType).Msg("")
		if i == maxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to write Kafka message after %d attempts: %w", i+1, ctx.Err())
		case <-time.After(p.backoff * time.Duration(i+1)):
		}
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", maxRetries, err)
}

// writeKafkaMessageWithKey bounds the write by the publisher timeout or the
// context deadline, whichever comes first.
func (p *PublisherImpl) writeKafkaMessageWithKey(ctx context.Context, msg []byte, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var deadline time.Time
	if p.timeout > 0 {
		deadline = time.Now().Add(p.timeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	if err := p.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}

	_, err := p.conn.WriteMessages(
		kafka.Message{
			Key:   []byte(key),
			Value: msg,
		},
	)
	return err
}

func (p *PublisherImpl) Close() error {
	return p.conn.Close()
}

// NoopPublisher drops events when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	log.Ctx(ctx).Debug().Str("component", "Publish").Str("event_type", msg.EventType).Msg("no broker configured, event dropped")
	return nil
}

func (NoopPublisher) Close() error { return nil }
