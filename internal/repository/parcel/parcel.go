package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"ojitos/internal/entities"
	"ojitos/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	// PackageColumns selects a package aliased p joined to its customer c.
	PackageColumns = `p.id, p.tracking_number, p.customer_id, COALESCE(c.name, ''), p.trip_id,
		p.origin, p.destination, p.description, p.weight, p.freight, p.amount_to_collect,
		p.currency, p.status, p.delivered_at, p.delivered_by, p.deleted_at, p.created_at, p.updated_at`

	customerJoin = "customers c ON c.id = p.customer_id"

	constraintCustomerFK = "packages_customer_id_fkey"
	constraintTripFK     = "packages_trip_id_fkey"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error) {
	packageModifyModel := FromDomainModify(&packageModifyEntity)

	insert, args, err := qb.
		Insert("packages").
		Columns(
			"tracking_number", "customer_id", "trip_id", "origin", "destination", "description",
			"weight", "freight", "amount_to_collect", "currency", "status",
		).
		Values(
			packageModifyModel.TrackingNumber,
			packageModifyModel.CustomerID,
			packageModifyModel.TripID,
			packageModifyModel.Origin,
			packageModifyModel.Destination,
			valueOrEmpty(packageModifyModel.Description),
			packageModifyModel.Weight,
			freightOrZero(packageModifyModel),
			packageModifyModel.AmountToCollect,
			packageModifyModel.Currency,
			packageModifyModel.Status,
		).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository create error: %w", err)
	}

	query := `WITH p AS (` + insert + `)
		SELECT ` + PackageColumns + `
		FROM p
		LEFT JOIN ` + customerJoin

	packageModel, err := ScanPackage(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrDuplicateTracking
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, foreignKeyError(err)
		}
		return nil, fmt.Errorf("unexpected package repository create error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Package, error) {
	query := `SELECT ` + PackageColumns + `
		FROM packages p
		LEFT JOIN ` + customerJoin + `
		WHERE p.id = $1 AND p.deleted_at IS NULL`

	packageModel, err := ScanPackage(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPackageNotFound
		}

		return nil, fmt.Errorf("unexpected package repository getbyid error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	builder := selectPackages()

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"p.status": filter.Status.String()})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"p.customer_id": *filter.CustomerID})
	}
	if filter.TripID != nil {
		builder = builder.Where(sq.Eq{"p.trip_id": *filter.TripID})
	}

	packages, err := r.list(ctx, builder.OrderBy("p.created_at DESC", "p.id"))
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository getall error: %w", err)
	}
	return packages, nil
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Package, error) {
	return r.GetAll(ctx, entities.PackageFilter{CustomerID: &customerID})
}

// ListByIDs returns the live packages among ids. Missing ids are skipped, so
// callers compare lengths to detect them.
func (r *Repository) ListByIDs(ctx context.Context, ids []string) ([]entities.Package, error) {
	builder := selectPackages().
		Where(sq.Eq{"p.id": ids}).
		OrderBy("p.created_at", "p.id")

	packages, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository listbyids error: %w", err)
	}
	return packages, nil
}

func (r *Repository) ListByDispatch(ctx context.Context, dispatchID string) ([]entities.Package, error) {
	builder := qb.
		Select(PackageColumns).
		From("dispatch_packages dp").
		Join("packages p ON p.id = dp.package_id").
		LeftJoin(customerJoin).
		Where(sq.Eq{"dp.dispatch_id": dispatchID}).
		OrderBy("dp.created_at", "p.tracking_number")

	packages, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository listbydispatch error: %w", err)
	}
	return packages, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.PackageStatus) error {
	query := `UPDATE packages
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return fmt.Errorf("unexpected package repository updatestatus error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrPackageNotFound
	}
	return nil
}

// UpdateStatusFrom moves the package to status only while it is still in
// from. applied is false when the row has moved on or does not exist.
func (r *Repository) UpdateStatusFrom(
	ctx context.Context,
	id string,
	from, status entities.PackageStatus,
) (applied bool, err error) {
	query := `UPDATE packages
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2 AND deleted_at IS NULL`

	tag, err := r.querier.Exec(ctx, query, id, from.String(), status.String())
	if err != nil {
		return false, fmt.Errorf("unexpected package repository updatestatusfrom error: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateStatuses sets one status on every listed package. It fails with
// ErrPackageNotFound when any of them is missing.
func (r *Repository) UpdateStatuses(ctx context.Context, ids []string, status entities.PackageStatus) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := qb.
		Update("packages").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": ids}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected package repository updatestatuses error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected package repository updatestatuses error: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return entities.ErrPackageNotFound
	}
	return nil
}

func (r *Repository) SetDeliveryState(ctx context.Context, id string, state entities.DeliveryState) error {
	query := `UPDATE packages
		SET status = $2, delivered_at = $3, delivered_by = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.querier.Exec(ctx, query, id, state.Status.String(), state.DeliveredAt, state.DeliveredBy)
	if err != nil {
		return fmt.Errorf("unexpected package repository setdeliverystate error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrPackageNotFound
	}
	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE packages
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected package repository softdelete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrPackageNotFound
	}
	return nil
}

func (r *Repository) Restore(ctx context.Context, id string) error {
	var restored bool
	err := r.querier.QueryRow(ctx, `SELECT restore_deleted_package($1)`, id).Scan(&restored)
	if err != nil {
		return fmt.Errorf("unexpected package repository restore error: %w", err)
	}
	if !restored {
		return entities.ErrPackageNotFound
	}
	return nil
}

func (r *Repository) ListDeleted(ctx context.Context) ([]entities.Package, error) {
	builder := qb.
		Select(PackageColumns).
		From("get_deleted_packages() p").
		LeftJoin(customerJoin).
		OrderBy("p.deleted_at DESC", "p.id")

	packages, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository listdeleted error: %w", err)
	}
	return packages, nil
}

func (r *Repository) GetFreightRate(ctx context.Context, origin string, destination string) (*entities.RouteFreightRate, error) {
	query := `SELECT origin, destination, rate_per_kg, minimum_charge
		FROM route_freight_rates
		WHERE LOWER(origin) = LOWER($1) AND LOWER(destination) = LOWER($2)`

	var rateModel RouteFreightRateDB
	err := r.querier.QueryRow(ctx, query, origin, destination).
		Scan(
			&rateModel.Origin,
			&rateModel.Destination,
			&rateModel.RatePerKg,
			&rateModel.MinimumCharge,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrFreightRateNotFound
		}

		return nil, fmt.Errorf("unexpected package repository getfreightrate error: %w", err)
	}

	return rateToDomain(&rateModel), nil
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.Package, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packageModels := make([]PackageDB, 0, 16)
	for rows.Next() {
		packageModel, err := ScanPackage(rows)
		if err != nil {
			return nil, err
		}
		packageModels = append(packageModels, *packageModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return ToDomainList(packageModels), nil
}

func selectPackages() sq.SelectBuilder {
	return qb.
		Select(PackageColumns).
		From("packages p").
		LeftJoin(customerJoin).
		Where("p.deleted_at IS NULL")
}

// ScanPackage reads a row selected with PackageColumns. extra receives any
// columns listed after them.
func ScanPackage(row pgx.Row, extra ...any) (*PackageDB, error) {
	var packageModel PackageDB
	dest := []any{
		&packageModel.ID,
		&packageModel.TrackingNumber,
		&packageModel.CustomerID,
		&packageModel.CustomerName,
		&packageModel.TripID,
		&packageModel.Origin,
		&packageModel.Destination,
		&packageModel.Description,
		&packageModel.Weight,
		&packageModel.Freight,
		&packageModel.AmountToCollect,
		&packageModel.Currency,
		&packageModel.Status,
		&packageModel.DeliveredAt,
		&packageModel.DeliveredBy,
		&packageModel.DeletedAt,
		&packageModel.CreatedAt,
		&packageModel.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	if err != nil {
		return nil, err
	}
	return &packageModel, nil
}

func foreignKeyError(err error) error {
	switch repository.ConstraintName(err) {
	case constraintCustomerFK:
		return entities.ErrCustomerNotFound
	case constraintTripFK:
		return entities.ErrTripNotFound
	default:
		return fmt.Errorf("unexpected package repository create error: %w", err)
	}
}

func freightOrZero(p *PackageModifyDB) any {
	if p.Freight == nil {
		return sq.Expr("DEFAULT")
	}
	return p.Freight
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
