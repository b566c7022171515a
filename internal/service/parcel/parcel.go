package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"ojitos/internal/entities"
	"ojitos/internal/service/payment"
	"ojitos/pkg/logger"
)

const trackingAttempts = 3

type Parcel struct {
	repository Repository
	tracking   TrackingRepository
	payments   PaymentReader
	publisher  EventPublisher
	txManager  TxManager
	log        serviceLogger
	now        func() time.Time
}

func New(
	repository Repository,
	tracking TrackingRepository,
	payments PaymentReader,
	publisher EventPublisher,
	txManager TxManager,
	log serviceLogger,
) *Parcel {
	return &Parcel{
		repository: repository,
		tracking:   tracking,
		payments:   payments,
		publisher:  publisher,
		txManager:  txManager,
		log:        log.With(logger.NewField("component", "parcel")),
		now:        time.Now,
	}
}

// CreatePackage registers a received parcel. A missing tracking number is
// generated and a missing freight is priced from the route rates.
func (s *Parcel) CreatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	if err := s.validateCreate(&packageModify); err != nil {
		return nil, err
	}

	if packageModify.Freight == nil {
		rate, err := s.repository.GetFreightRate(ctx, *packageModify.Origin, *packageModify.Destination)
		if err != nil {
			return nil, fmt.Errorf("get freight rate: %w", err)
		}
		packageModify.Freight = pointer.To(Freight(*rate, *packageModify.Weight))
	}

	packageModify.Status = pointer.To(entities.StatusReceived)

	generated := isBlank(packageModify.TrackingNumber)
	attempts := 1
	if generated {
		attempts = trackingAttempts
	}

	var created *entities.Package
	for attempt := 0; attempt < attempts; attempt++ {
		if generated {
			packageModify.TrackingNumber = pointer.To(NewTrackingNumber(s.now()))
		}

		var err error
		created, err = s.createWithEvent(ctx, packageModify)
		if err == nil {
			break
		}
		if generated && errors.Is(err, entities.ErrDuplicateTracking) {
			s.log.Warn("generated tracking number collided",
				logger.NewField("tracking_number", *packageModify.TrackingNumber),
			)
			continue
		}
		return nil, err
	}
	if created == nil {
		return nil, ErrTrackingExhausted
	}

	s.publish(ctx, statusEvent(*created, created.Status, s.now()))

	return created, nil
}

func (s *Parcel) createWithEvent(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	var created *entities.Package
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, err := s.repository.Create(ctx, packageModify)
		if err != nil {
			return fmt.Errorf("create package: %w", err)
		}

		event := entities.TrackingEvent{
			PackageID:   pkg.ID,
			EventType:   entities.EventCreated,
			Description: "Paquete recibido",
			Location:    pkg.Origin,
		}
		if err := s.tracking.Create(ctx, []entities.TrackingEvent{event}); err != nil {
			return fmt.Errorf("create tracking event: %w", err)
		}

		created = pkg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Parcel) validateCreate(packageModify *entities.PackageModify) error {
	if packageModify.CustomerID == nil ||
		isBlank(packageModify.Origin) ||
		isBlank(packageModify.Destination) ||
		packageModify.Weight == nil {
		return ErrMissingRequiredFields
	}
	if !isValidID(*packageModify.CustomerID) {
		return ErrInvalidCustomerID
	}
	if packageModify.TripID != nil && !isValidID(*packageModify.TripID) {
		return ErrInvalidTripID
	}
	if !packageModify.Weight.IsPositive() {
		return ErrInvalidWeight
	}
	if packageModify.Freight != nil && packageModify.Freight.IsNegative() {
		return ErrInvalidFreight
	}
	if packageModify.AmountToCollect != nil && packageModify.AmountToCollect.IsNegative() {
		return ErrInvalidAmount
	}
	if packageModify.Currency == nil {
		packageModify.Currency = pointer.To(entities.CurrencyCOP)
	} else if !packageModify.Currency.IsValid() {
		return ErrInvalidCurrency
	}

	packageModify.Origin = pointer.To(strings.TrimSpace(*packageModify.Origin))
	packageModify.Destination = pointer.To(strings.TrimSpace(*packageModify.Destination))
	if !isBlank(packageModify.TrackingNumber) {
		packageModify.TrackingNumber = pointer.To(strings.ToUpper(strings.TrimSpace(*packageModify.TrackingNumber)))
	}
	return nil
}

// GetPackage returns the package with its payments and what is still owed.
func (s *Parcel) GetPackage(ctx context.Context, id string) (*entities.PackageDetails, error) {
	if !isValidID(id) {
		return nil, ErrInvalidPackageID
	}

	pkg, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	payments, err := s.payments.ListByPackage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &entities.PackageDetails{
		Package:       *pkg,
		Payments:      payments,
		PendingAmount: payment.PendingAmount(*pkg, payments),
	}, nil
}

func (s *Parcel) GetPackages(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if filter.CustomerID != nil && !isValidID(*filter.CustomerID) {
		return nil, ErrInvalidCustomerID
	}
	if filter.TripID != nil && !isValidID(*filter.TripID) {
		return nil, ErrInvalidTripID
	}

	packages, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}
	return packages, nil
}

// UpdateStatus moves a package to any known status and records the change in
// its tracking history.
func (s *Parcel) UpdateStatus(
	ctx context.Context,
	id string,
	status entities.PackageStatus,
	location string,
) (*entities.Package, error) {
	if !isValidID(id) {
		return nil, ErrInvalidPackageID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	pkg, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	if pkg.Status == status {
		return pkg, nil
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.UpdateStatus(ctx, id, status); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		event := entities.TrackingEvent{
			PackageID:   id,
			EventType:   entities.EventStatusChanged,
			Description: fmt.Sprintf("Estado actualizado de %s a %s", pkg.Status, status),
			Location:    strings.TrimSpace(location),
		}
		if err := s.tracking.Create(ctx, []entities.TrackingEvent{event}); err != nil {
			return fmt.Errorf("create tracking event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated := *pkg
	updated.Status = status
	s.publish(ctx, statusEvent(updated, status, s.now()))

	return &updated, nil
}

func (s *Parcel) DeletePackage(ctx context.Context, id string) error {
	if !isValidID(id) {
		return ErrInvalidPackageID
	}
	if err := s.repository.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}

	s.log.Info("package deleted", logger.NewField("package_id", id))
	return nil
}

func (s *Parcel) RestorePackage(ctx context.Context, id string) (*entities.Package, error) {
	if !isValidID(id) {
		return nil, ErrInvalidPackageID
	}
	if err := s.repository.Restore(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to restore package: %w", err)
	}

	pkg, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return pkg, nil
}

func (s *Parcel) GetDeletedPackages(ctx context.Context) ([]entities.Package, error) {
	packages, err := s.repository.ListDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get deleted packages: %w", err)
	}
	return packages, nil
}

func (s *Parcel) publish(ctx context.Context, events ...entities.PackageStatusEvent) {
	if err := s.publisher.PublishStatusChanged(ctx, events...); err != nil {
		s.log.Warn("publish status change",
			logger.NewField("events", len(events)),
			logger.NewField("error", err),
		)
	}
}

func statusEvent(pkg entities.Package, status entities.PackageStatus, at time.Time) entities.PackageStatusEvent {
	return entities.PackageStatusEvent{
		PackageID:      pkg.ID,
		TrackingNumber: pkg.TrackingNumber,
		CustomerID:     pkg.CustomerID,
		Status:         status,
		OccurredAt:     at.UTC(),
	}
}
