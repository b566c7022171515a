package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"ojitos/internal/pkg/config"
	"ojitos/pkg/logger"
	"ojitos/pkg/retrier"
	"ojitos/pkg/retrier/backoff_adapter"
)

// Brokers splits the comma separated KAFKA_BROKERS list.
func Brokers(cfg *config.Kafka) []string {
	parts := strings.Split(cfg.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		if broker := strings.TrimSpace(part); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func baseConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = "ojitos"

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	return cfg, nil
}

// waitForBrokers blocks until the cluster answers a metadata request or the
// connect retry budget runs out.
func waitForBrokers(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	if len(brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}

	var attempt uint64
	connect := retrier.ConnectConfig()
	connect.OnRetry = func(err error, wait time.Duration) {
		log.Warn("kafka not reachable yet",
			logger.NewField("attempt", attempt),
			logger.NewField("retry_in", wait.String()),
			logger.NewField("error", err),
		)
	}

	err := backoff_adapter.New(connect).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close kafka check client",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.Error("kafka connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.Info("kafka connection established",
		logger.NewField("attempts", attempt),
	)
	return nil
}
