package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"ojitos/internal/entities"
	"ojitos/internal/pkg/config"
	"ojitos/pkg/logger"
)

const producerMaxRetries = 5

// Publisher writes package status events to the configured topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg, err := baseConfig(versionStr)
	if err != nil {
		return nil, err
	}

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerMaxRetries
	cfg.Producer.Return.Successes = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

func NewPublisher(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Publisher, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build producer config: %w", err)
	}

	brokers := Brokers(cfg)
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := waitForBrokers(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return NewPublisherWithProducer(producer, cfg.Topic), nil
}

func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishStatusChanged sends the events as one batch.
func (p *Publisher) PublishStatusChanged(ctx context.Context, events ...entities.PackageStatusEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(FromDomainEvent(event))
		if err != nil {
			return fmt.Errorf("encode event %s: %w", event.PackageID, err)
		}
		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(event.PackageID),
			Value: sarama.ByteEncoder(value),
		})
	}

	if err := p.producer.SendMessages(messages); err != nil {
		return fmt.Errorf("send %d status events: %w", len(messages), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
