package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	headerEventType = "event-type"
	headerEventID   = "event-id"
	headerSource    = "source"

	source = "doctors-portal"
)

// KafkaNotificationService writes events to a single Kafka topic through an async writer.
type KafkaNotificationService struct {
	writer *kafka.Writer
}

func NewKafkaNotificationService(brokers []string, topic string) (*KafkaNotificationService, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // Hash by key for ordering
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				zap.L().Error("kafka: failed to deliver events", zap.Int("count", len(messages)), zap.Error(err))
			}
		},
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			zap.L().Sugar().Errorf("kafka: "+msg, args...)
		}),
	}
	return &KafkaNotificationService{writer: writer}, nil
}

// Publish enqueues the event and returns without waiting for the brokers.
// Delivery failures are reported by the writer's Completion callback.
func (s *KafkaNotificationService) Publish(ctx context.Context, eventType, key string, payload interface{}) error {
	event := Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(eventType)},
			{Key: headerEventID, Value: []byte(event.ID)},
			{Key: headerSource, Value: []byte(source)},
		},
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

func (s *KafkaNotificationService) Close() error {
	return s.writer.Close()
}
