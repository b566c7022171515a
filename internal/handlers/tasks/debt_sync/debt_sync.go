package debt_sync

import (
	"context"
	"time"

	"ojitos/pkg/logger"
)

type Service interface {
	SyncDebts(ctx context.Context) (int64, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// DebtSync keeps the package_debts projection in line with the pending
// amounts computed from packages and payments.
type DebtSync struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewDebtSync(log taskLogger, service Service, interval time.Duration) *DebtSync {
	return &DebtSync{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DebtSync) TTL() time.Duration {
	return d.interval
}

func (d *DebtSync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	rowsAffected, err := d.service.SyncDebts(ctxWithTimeout)

	if rowsAffected > 0 {
		d.log.With(
			logger.NewField("debts_updated", rowsAffected),
		).Info("debt sync")
	}

	return err
}

func (d *DebtSync) Info() string {
	return "debt sync"
}
