package events

import (
	"context"
	"time"

	"restaurant-reservation/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event-type"

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaPublisher writes synchronously so a returned nil means the broker acknowledged the batch.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msgs []Message) error {
	if len(msgs) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		batch = append(batch, toKafkaMessage(m))
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return errs.Wrapf(err, "failed to publish %d events", len(msgs))
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Messages with the same key land on one partition, so a reservation's events stay ordered.
func toKafkaMessage(m Message) kafka.Message {
	return kafka.Message{
		Key:   []byte(m.Key),
		Value: m.Payload,
		Time:  m.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(m.Type)},
		},
	}
}
