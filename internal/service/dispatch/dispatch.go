package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ojitos/internal/entities"
	"ojitos/internal/service/lifecycle"
	"ojitos/pkg/logger"
	"ojitos/pkg/saga"
)

type Config struct {
	// Atomic runs every dispatch step in one database transaction. When false
	// the steps run one by one and failures are compensated.
	Atomic bool
}

type Dispatch struct {
	repository Repository
	packages   PackageRepository
	tracking   TrackingRepository
	publisher  EventPublisher
	txManager  TxManager
	log        serviceLogger
	atomic     bool
	now        func() time.Time
}

func New(
	cfg Config,
	repository Repository,
	packages PackageRepository,
	tracking TrackingRepository,
	publisher EventPublisher,
	txManager TxManager,
	log serviceLogger,
) *Dispatch {
	return &Dispatch{
		repository: repository,
		packages:   packages,
		tracking:   tracking,
		publisher:  publisher,
		txManager:  txManager,
		log:        log.With(logger.NewField("component", "dispatch")),
		atomic:     cfg.Atomic,
		now:        time.Now,
	}
}

// SelectEligible lists the packages of a trip that can still be dispatched.
func (d *Dispatch) SelectEligible(ctx context.Context, tripID string) ([]entities.Package, error) {
	tripID, ok := canonicalID(tripID)
	if !ok {
		return nil, ErrInvalidTripID
	}

	packages, err := d.packages.GetAll(ctx, entities.PackageFilter{TripID: &tripID})
	if err != nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}

	return lifecycle.FilterDispatchEligible(packages), nil
}

// CreateDispatch groups packages into a dispatch relation and marks them
// dispatched.
func (d *Dispatch) CreateDispatch(ctx context.Context, create entities.DispatchCreate) (*entities.DispatchDetails, error) {
	ids, err := canonicalPackageIDs(create.PackageIDs)
	if err != nil {
		return nil, err
	}
	create.PackageIDs = ids
	if create.DispatchDate.IsZero() {
		create.DispatchDate = d.now()
	}
	create.Notes = strings.TrimSpace(create.Notes)

	run := d.newDispatchSaga(create)

	if d.atomic {
		err = d.txManager.Do(ctx, run.saga.Forward)
	} else {
		err = run.saga.Run(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("create dispatch: %w", err)
	}

	d.log.Info("dispatch created",
		logger.NewField("dispatch_id", run.relation.ID),
		logger.NewField("packages", run.relation.TotalPackages),
		logger.NewField("atomic", d.atomic),
	)

	at := d.now().UTC()
	events := make([]entities.PackageStatusEvent, 0, len(run.packages))
	for i := range run.packages {
		run.packages[i].Status = entities.StatusDispatched
		events = append(events, entities.PackageStatusEvent{
			PackageID:      run.packages[i].ID,
			TrackingNumber: run.packages[i].TrackingNumber,
			CustomerID:     run.packages[i].CustomerID,
			Status:         entities.StatusDispatched,
			OccurredAt:     at,
		})
	}
	if err := d.publisher.PublishStatusChanged(ctx, events...); err != nil {
		d.log.Warn("publish status change",
			logger.NewField("dispatch_id", run.relation.ID),
			logger.NewField("events", len(events)),
			logger.NewField("error", err),
		)
	}

	return &entities.DispatchDetails{
		DispatchRelation: *run.relation,
		Packages:         run.packages,
	}, nil
}

type dispatchRun struct {
	saga     *saga.Saga
	packages []entities.Package
	relation *entities.DispatchRelation
}

// newDispatchSaga lays out the dispatch as five ordered steps. Each step reads
// what the previous ones stored in the run.
func (d *Dispatch) newDispatchSaga(create entities.DispatchCreate) *dispatchRun {
	run := &dispatchRun{}

	run.saga = saga.New(
		saga.Step{
			Name: "load packages",
			Do: func(ctx context.Context) error {
				packages, err := d.packages.ListByIDs(ctx, create.PackageIDs)
				if err != nil {
					return err
				}
				ordered, ok := orderByIDs(packages, create.PackageIDs)
				if !ok {
					return ErrPackagesMissing
				}
				for _, pkg := range ordered {
					if !lifecycle.IsDispatchEligible(pkg.Status) {
						return fmt.Errorf("%w: %s is %s", ErrPackageNotEligible, pkg.TrackingNumber, pkg.Status)
					}
				}
				run.packages = ordered
				return nil
			},
		},
		saga.Step{
			Name: "insert dispatch relation",
			Do: func(ctx context.Context) error {
				totals := ComputeTotals(run.packages)
				relation, err := d.repository.Create(ctx, entities.DispatchRelation{
					DispatchDate:         create.DispatchDate,
					TotalPackages:        totals.Packages,
					TotalWeight:          totals.Weight,
					TotalFreight:         totals.Freight,
					TotalAmountToCollect: totals.AmountToCollect,
					Status:               entities.StatusProcessed,
					Notes:                create.Notes,
				})
				if err != nil {
					return err
				}
				run.relation = relation
				return nil
			},
			Undo: func(ctx context.Context) error {
				return d.repository.Delete(ctx, run.relation.ID)
			},
		},
		saga.Step{
			Name: "link packages",
			Do: func(ctx context.Context) error {
				return d.repository.AddPackages(ctx, run.relation.ID, create.PackageIDs)
			},
			Undo: func(ctx context.Context) error {
				return d.repository.RemovePackages(ctx, run.relation.ID)
			},
		},
		saga.Step{
			Name: "mark dispatched",
			Do: func(ctx context.Context) error {
				return d.packages.UpdateStatuses(ctx, create.PackageIDs, entities.StatusDispatched)
			},
			Undo: func(ctx context.Context) error {
				for status, ids := range groupByStatus(run.packages) {
					if err := d.packages.UpdateStatuses(ctx, ids, status); err != nil {
						return err
					}
				}
				return nil
			},
		},
		saga.Step{
			Name: "record tracking events",
			Do: func(ctx context.Context) error {
				events := make([]entities.TrackingEvent, 0, len(run.packages))
				for _, pkg := range run.packages {
					events = append(events, entities.TrackingEvent{
						PackageID:   pkg.ID,
						EventType:   entities.EventDispatched,
						Description: fmt.Sprintf("Paquete despachado en la relación del %s", create.DispatchDate.Format("2006-01-02")),
						Location:    pkg.Origin,
					})
				}
				return d.tracking.Create(ctx, events)
			},
		},
	)

	return run
}

func groupByStatus(packages []entities.Package) map[entities.PackageStatus][]string {
	groups := make(map[entities.PackageStatus][]string)
	for _, pkg := range packages {
		groups[pkg.Status] = append(groups[pkg.Status], pkg.ID)
	}
	return groups
}

// DispatchNumberFor tells how many times a package has been dispatched. The
// latest dispatch is always the last one, so both numbers are the count.
func (d *Dispatch) DispatchNumberFor(ctx context.Context, packageID string) (*entities.DispatchNumber, error) {
	packageID, ok := canonicalID(packageID)
	if !ok {
		return nil, ErrInvalidPackageID
	}

	if _, err := d.packages.GetByID(ctx, packageID); err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	count, err := d.repository.CountByPackage(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to count dispatches: %w", err)
	}

	return &entities.DispatchNumber{
		DispatchNumber:  count,
		TotalDispatches: count,
	}, nil
}

func (d *Dispatch) GetDispatch(ctx context.Context, id string) (*entities.DispatchDetails, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, ErrInvalidDispatchID
	}

	relation, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatch: %w", err)
	}

	packages, err := d.packages.ListByDispatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch packages: %w", err)
	}

	return &entities.DispatchDetails{
		DispatchRelation: *relation,
		Packages:         packages,
	}, nil
}

func (d *Dispatch) GetDispatches(ctx context.Context) ([]entities.DispatchRelation, error) {
	relations, err := d.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatches: %w", err)
	}
	return relations, nil
}
