package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"ojitos/internal/pkg/config"
	"ojitos/pkg/logger"
	"ojitos/pkg/retrier"
	"ojitos/pkg/retrier/backoff_adapter"
)

var ConsumerGroupErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_consumer_group_errors_total",
		Help: "Errors reported by the consumer group, by topic",
	},
	[]string{"topic"},
)

// sessionRetry bounds how long Start keeps rejoining the group after a
// failed session before giving up.
var sessionRetry = retrier.Config{
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     15 * time.Second,
	MaxElapsedTime:  3 * time.Minute,
	Randomization:   0.3,
	Multiplier:      2,
}

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
	wg      sync.WaitGroup
}

// NewConsumerConfig starts a group without committed offsets at the oldest
// message.
func NewConsumerConfig(versionStr string, autoCommit bool) (*sarama.Config, error) {
	cfg, err := baseConfig(versionStr)
	if err != nil {
		return nil, err
	}

	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

func NewConsumer(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Kafka,
	handler sarama.ConsumerGroupHandler,
) (*Consumer, error) {
	brokers := Brokers(cfg)
	topics := []string{cfg.Topic}

	saramaConfig, err := NewConsumerConfig(cfg.Sarama.Version, cfg.Sarama.ConsumerOffsetsAutocommit)
	if err != nil {
		return nil, fmt.Errorf("build consumer config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	if err := waitForBrokers(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	c := &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}

	c.wg.Add(1)
	go c.drainErrors()

	return c, nil
}

// Start consumes until ctx is cancelled. A failed session is rejoined with
// backoff; Start returns the last error once the retry budget is spent.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer joining group")

	join := sessionRetry
	join.ShouldRetry = func(err error) bool {
		return !errors.Is(err, sarama.ErrClosedConsumerGroup) && ctx.Err() == nil
	}
	join.OnRetry = func(err error, wait time.Duration) {
		c.log.Warn("consumer session failed, rejoining",
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		)
	}
	rejoin := backoff_adapter.New(join)

	for ctx.Err() == nil {
		err := rejoin.ExecuteWithContext(ctx, func(ctx context.Context) error {
			return c.client.Consume(ctx, c.topics, c.handler)
		})
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			c.log.Error("kafka consumer stopped", logger.NewField("error", err))
			return fmt.Errorf("consumer error: %w", err)
		}
	}

	c.log.Info("context cancelled, consumer leaving group")
	return ctx.Err()
}

// Close leaves the group and waits for the error drain to finish.
func (c *Consumer) Close() error {
	err := c.client.Close()
	c.wg.Wait()
	return err
}

func (c *Consumer) drainErrors() {
	defer c.wg.Done()

	for err := range c.client.Errors() {
		topic := "unknown"
		var consumerErr *sarama.ConsumerError
		if errors.As(err, &consumerErr) {
			topic = consumerErr.Topic
		}
		ConsumerGroupErrors.WithLabelValues(topic).Inc()

		c.log.Warn("consumer group error",
			logger.NewField("topic", topic),
			logger.NewField("error", err),
		)
	}
}
