package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"ojitos/internal/pkg/config"
	"ojitos/internal/pkg/migrations"
	"ojitos/internal/pkg/postgres"
	"ojitos/pkg/logger/zap_adapter"
	"ojitos/pkg/querier"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier connects once per test binary and applies the migrations.
// Connection settings come from the environment the Makefile exports.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := migrations.Up(ctx, zapLogger, connPool); err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

// TeardownDB empties every table except the seeded freight rates.
func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE
			marketing_campaign_recipients, marketing_campaigns, whatsapp_messages, notification_log,
			package_labels, tracking_events, package_debts, customer_payments, dispatch_packages,
			dispatch_relations, packages, trips, travelers, customers
		CASCADE;
	`)
	require.NoError(t, err)
}

// Fixed ids shared by the repository integration tests.
const (
	CustomerID = "11111111-1111-1111-1111-111111111111"
	TripID     = "22222222-2222-2222-2222-222222222222"
	PackageID  = "33333333-3333-3333-3333-333333333333"
	PackageID2 = "44444444-4444-4444-4444-444444444444"
)

// SeedPackages inserts one customer, one trip and two packages: a COP package
// with 100000 to collect and an AWG package with nothing to collect.
const SeedPackages = `
	INSERT INTO customers (id, name, phone, whatsapp_number)
	VALUES ('11111111-1111-1111-1111-111111111111', 'Maria Perez', '573001234567', '573001234567');

	INSERT INTO trips (id, trip_date, origin, destination, flight_number)
	VALUES ('22222222-2222-2222-2222-222222222222', '2025-03-10', 'Barranquilla', 'Curazao', 'AV123');

	INSERT INTO packages (id, tracking_number, customer_id, trip_id, origin, destination, weight, freight,
		amount_to_collect, currency, status, created_at)
	VALUES
		('33333333-3333-3333-3333-333333333333', 'EO-250310-AAAAAA', '11111111-1111-1111-1111-111111111111',
			'22222222-2222-2222-2222-222222222222', 'Barranquilla', 'Curazao', 2.50, 45000, 100000, 'COP',
			'recibido', '2025-03-01 10:00:00+00'),
		('44444444-4444-4444-4444-444444444444', 'EO-250310-BBBBBB', '11111111-1111-1111-1111-111111111111',
			'22222222-2222-2222-2222-222222222222', 'Barranquilla', 'Curazao', 1.00, 30000, NULL, 'AWG',
			'bodega', '2025-03-02 10:00:00+00');
`
