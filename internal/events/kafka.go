package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/example/mely/pkg/logger"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to Kafka. The topic is set per message so a
// single writer serves every topic.
type KafkaPublisher struct {
	writer messageWriter
	log    logger.Logger
}

// publishBatchTimeout bounds how long a single synchronous write waits for
// its batch to fill before flushing.
const publishBatchTimeout = 10 * time.Millisecond

// NewKafkaPublisher creates a publisher for the given brokers. Each event is
// flushed on its own so request handlers do not wait for a batch to fill.
func NewKafkaPublisher(brokers []string, log logger.Logger) *KafkaPublisher {
	log.Info("kafka publisher configured", logger.Any("brokers", brokers))

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           5 * time.Second,
			BatchSize:              1,
			BatchTimeout:           publishBatchTimeout,
		},
		log: log,
	}
}

// New returns a Kafka publisher when brokers are configured and Nop otherwise.
func New(brokers []string, log logger.Logger) Publisher {
	if len(brokers) == 0 {
		return Nop{}
	}
	return NewKafkaPublisher(brokers, log)
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	if topic == "" {
		return errors.New("topic is empty")
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("failed to write message to kafka", logger.String("topic", topic), logger.Error(err))
		return fmt.Errorf("publish to kafka topic %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.log.Info("closing kafka publisher")
	return p.writer.Close()
}
