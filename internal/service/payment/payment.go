package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ojitos/internal/entities"
	"ojitos/pkg/logger"
	"ojitos/pkg/saga"
)

type Payment struct {
	repository Repository
	packages   PackageRepository
	publisher  EventPublisher
	txManager  TxManager
	log        serviceLogger
	now        func() time.Time
}

func New(
	repository Repository,
	packages PackageRepository,
	publisher EventPublisher,
	txManager TxManager,
	log serviceLogger,
) *Payment {
	return &Payment{
		repository: repository,
		packages:   packages,
		publisher:  publisher,
		txManager:  txManager,
		log:        log.With(logger.NewField("component", "payment")),
		now:        time.Now,
	}
}

// DeliverWithPayment marks a package delivered and records the payments
// collected on hand-over. The database procedure does it atomically; when the
// procedure cannot be called the same writes run as compensating steps.
func (p *Payment) DeliverWithPayment(
	ctx context.Context,
	packageID string,
	deliveredBy string,
	payments []entities.CustomerPayment,
) (*entities.PackageDetails, error) {
	if !isValidID(packageID) {
		return nil, ErrInvalidPackageID
	}
	deliveredBy = strings.TrimSpace(deliveredBy)
	if deliveredBy == "" {
		return nil, ErrMissingDeliveredBy
	}

	pkg, err := p.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	if pkg.Status == entities.StatusDelivered {
		return nil, ErrAlreadyDelivered
	}

	prepared := make([]entities.CustomerPayment, 0, len(payments))
	for _, payment := range payments {
		ready, err := p.preparePayment(*pkg, payment, deliveredBy)
		if err != nil {
			return nil, err
		}
		prepared = append(prepared, ready)
	}

	err = p.repository.DeliverWithPayment(ctx, pkg.ID, deliveredBy, prepared)
	switch {
	case errors.Is(err, entities.ErrProcedureUnavailable):
		p.log.Warn("delivery procedure unavailable, delivering step by step",
			logger.NewField("package_id", pkg.ID),
			logger.NewField("error", err),
		)
		if err := p.deliverStepByStep(ctx, *pkg, deliveredBy, prepared); err != nil {
			return nil, fmt.Errorf("deliver package: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("deliver package: %w", err)
	}

	p.publish(ctx, entities.PackageStatusEvent{
		PackageID:      pkg.ID,
		TrackingNumber: pkg.TrackingNumber,
		CustomerID:     pkg.CustomerID,
		Status:         entities.StatusDelivered,
		OccurredAt:     p.now().UTC(),
	})

	return p.packageDetails(ctx, pkg.ID)
}

func (p *Payment) deliverStepByStep(
	ctx context.Context,
	pkg entities.Package,
	deliveredBy string,
	payments []entities.CustomerPayment,
) error {
	deliveredAt := p.now().UTC()
	previous := entities.DeliveryState{
		Status:      pkg.Status,
		DeliveredAt: pkg.DeliveredAt,
		DeliveredBy: pkg.DeliveredBy,
	}

	var inserted []entities.CustomerPayment

	steps := saga.New(
		saga.Step{
			Name: "mark delivered",
			Do: func(ctx context.Context) error {
				return p.packages.SetDeliveryState(ctx, pkg.ID, entities.DeliveryState{
					Status:      entities.StatusDelivered,
					DeliveredAt: &deliveredAt,
					DeliveredBy: &deliveredBy,
				})
			},
			Undo: func(ctx context.Context) error {
				return p.packages.SetDeliveryState(ctx, pkg.ID, previous)
			},
		},
		saga.Step{
			Name: "insert payments",
			Do: func(ctx context.Context) error {
				if len(payments) == 0 {
					return nil
				}
				var err error
				inserted, err = p.repository.Create(ctx, payments)
				return err
			},
			Undo: func(ctx context.Context) error {
				return p.repository.DeleteByIDs(ctx, paymentIDs(inserted))
			},
		},
		saga.Step{
			Name: "project debt",
			Do: func(ctx context.Context) error {
				all, err := p.repository.ListByPackage(ctx, pkg.ID)
				if err != nil {
					return err
				}
				delivered := pkg
				delivered.Status = entities.StatusDelivered
				debt, ok := ProjectDebt(delivered, all)
				if !ok {
					return nil
				}
				_, err = p.repository.UpsertDebts(ctx, []entities.PackageDebt{debt})
				return err
			},
		},
	)

	return steps.Run(ctx)
}

// RecordPayment stores a payment made after delivery, or an advance payment,
// and refreshes the package debt projection.
func (p *Payment) RecordPayment(ctx context.Context, payment entities.CustomerPayment) (*entities.CustomerPayment, error) {
	if !isValidID(payment.PackageID) {
		return nil, ErrInvalidPackageID
	}

	pkg, err := p.packages.GetByID(ctx, payment.PackageID)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	prepared, err := p.preparePayment(*pkg, payment, payment.CreatedBy)
	if err != nil {
		return nil, err
	}

	var created entities.CustomerPayment
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		rows, err := p.repository.Create(ctx, []entities.CustomerPayment{prepared})
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		created = rows[0]

		all, err := p.repository.ListByPackage(ctx, pkg.ID)
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		debt, ok := ProjectDebt(*pkg, all)
		if !ok {
			return nil
		}
		if _, err := p.repository.UpsertDebts(ctx, []entities.PackageDebt{debt}); err != nil {
			return fmt.Errorf("project debt: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListDebts computes the outstanding amounts from packages and payments.
func (p *Payment) ListDebts(ctx context.Context) (*entities.DebtReport, error) {
	sources, payments, err := p.loadDebtInputs(ctx)
	if err != nil {
		return nil, err
	}

	report := AggregateDebts(sources, payments)
	return &report, nil
}

// SyncDebts rewrites the stored debt projection from the computed amounts.
func (p *Payment) SyncDebts(ctx context.Context) (int64, error) {
	sources, payments, err := p.loadDebtInputs(ctx)
	if err != nil {
		return 0, err
	}

	debts := ProjectDebts(sources, payments)
	if len(debts) == 0 {
		return 0, nil
	}

	affected, err := p.repository.UpsertDebts(ctx, debts)
	if err != nil {
		return 0, fmt.Errorf("upsert debts: %w", err)
	}
	return affected, nil
}

// loadDebtInputs reads packages and payments from one snapshot.
func (p *Payment) loadDebtInputs(ctx context.Context) ([]entities.DebtSource, []entities.CustomerPayment, error) {
	var (
		sources  []entities.DebtSource
		payments []entities.CustomerPayment
	)

	err := p.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		sources, err = p.repository.ListDebtSources(ctx)
		if err != nil {
			return fmt.Errorf("list debt sources: %w", err)
		}
		if len(sources) == 0 {
			return nil
		}

		ids := make([]string, 0, len(sources))
		for _, src := range sources {
			ids = append(ids, src.ID)
		}

		payments, err = p.repository.ListByPackageIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return sources, payments, nil
}

func (p *Payment) packageDetails(ctx context.Context, packageID string) (*entities.PackageDetails, error) {
	pkg, err := p.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("reload package: %w", err)
	}
	payments, err := p.repository.ListByPackage(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return &entities.PackageDetails{
		Package:       *pkg,
		Payments:      payments,
		PendingAmount: PendingAmount(*pkg, payments),
	}, nil
}

func (p *Payment) preparePayment(
	pkg entities.Package,
	payment entities.CustomerPayment,
	createdBy string,
) (entities.CustomerPayment, error) {
	if !payment.Amount.IsPositive() {
		return entities.CustomerPayment{}, ErrInvalidAmount
	}
	if payment.Currency == "" {
		payment.Currency = pkg.Currency
	}
	if !payment.Currency.IsValid() {
		return entities.CustomerPayment{}, ErrInvalidCurrency
	}
	if payment.Currency != pkg.Currency {
		return entities.CustomerPayment{}, fmt.Errorf("%w: %s != %s", ErrCurrencyMismatch, payment.Currency, pkg.Currency)
	}
	if payment.PaymentMethod == "" {
		payment.PaymentMethod = entities.PaymentCash
	}
	if !payment.PaymentMethod.IsValid() {
		return entities.CustomerPayment{}, ErrInvalidPaymentMethod
	}

	payment.PackageID = pkg.ID
	payment.CustomerID = pkg.CustomerID
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = p.now().UTC()
	}
	if payment.CreatedBy == "" {
		payment.CreatedBy = createdBy
	}
	return payment, nil
}

func (p *Payment) publish(ctx context.Context, events ...entities.PackageStatusEvent) {
	if err := p.publisher.PublishStatusChanged(ctx, events...); err != nil {
		p.log.Warn("publish status change",
			logger.NewField("events", len(events)),
			logger.NewField("error", err),
		)
	}
}

func paymentIDs(payments []entities.CustomerPayment) []string {
	ids := make([]string, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.ID)
	}
	return ids
}
