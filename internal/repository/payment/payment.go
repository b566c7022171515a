package payment

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"ojitos/internal/entities"
	"ojitos/internal/repository"
	"ojitos/internal/repository/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const paymentColumns = `id, package_id, customer_id, amount, currency, payment_method,
		payment_date, notes, created_by`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, payments []entities.CustomerPayment) ([]entities.CustomerPayment, error) {
	if len(payments) == 0 {
		return []entities.CustomerPayment{}, nil
	}

	builder := qb.
		Insert("customer_payments").
		Columns("package_id", "customer_id", "amount", "currency", "payment_method", "payment_date", "notes", "created_by")
	for i := range payments {
		paymentModel := FromDomain(&payments[i])
		builder = builder.Values(
			paymentModel.PackageID,
			paymentModel.CustomerID,
			paymentModel.Amount,
			paymentModel.Currency,
			paymentModel.PaymentMethod,
			paymentModel.PaymentDate,
			paymentModel.Notes,
			paymentModel.CreatedBy,
		)
	}

	query, args, err := builder.Suffix("RETURNING " + paymentColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	created, err := r.list(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}
	return created, nil
}

func (r *Repository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := qb.
		Delete("customer_payments").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected payment repository deletebyids error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected payment repository deletebyids error: %w", err)
	}
	return nil
}

func (r *Repository) ListByPackage(ctx context.Context, packageID string) ([]entities.CustomerPayment, error) {
	return r.ListByPackageIDs(ctx, []string{packageID})
}

func (r *Repository) ListByPackageIDs(ctx context.Context, packageIDs []string) ([]entities.CustomerPayment, error) {
	if len(packageIDs) == 0 {
		return []entities.CustomerPayment{}, nil
	}

	query, args, err := qb.
		Select(paymentColumns).
		From("customer_payments").
		Where(sq.Eq{"package_id": packageIDs}).
		OrderBy("payment_date", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository listbypackageids error: %w", err)
	}

	payments, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository listbypackageids error: %w", err)
	}
	return payments, nil
}

// DeliverWithPayment calls deliver_package_with_payment. A missing or
// forbidden procedure is reported as entities.ErrProcedureUnavailable.
func (r *Repository) DeliverWithPayment(
	ctx context.Context,
	packageID string,
	deliveredBy string,
	payments []entities.CustomerPayment,
) error {
	payload, err := json.Marshal(toProcedurePayments(payments))
	if err != nil {
		return fmt.Errorf("unexpected payment repository deliver error: %w", err)
	}

	_, err = r.querier.Exec(ctx,
		`SELECT deliver_package_with_payment($1, $2, $3::jsonb)`,
		packageID, deliveredBy, string(payload),
	)
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUndefinedFunction),
			repository.IsPgErrorWithCode(err, repository.PgErrInsufficientPrivilege):
			return fmt.Errorf("%w: %w", entities.ErrProcedureUnavailable, err)
		case repository.IsPgErrorWithCode(err, repository.PgErrNoDataFound):
			return entities.ErrPackageNotFound
		default:
			return fmt.Errorf("unexpected payment repository deliver error: %w", err)
		}
	}
	return nil
}

// ListDebtSources returns delivered packages that carry an amount to collect,
// each with the traveler of its trip.
func (r *Repository) ListDebtSources(ctx context.Context) ([]entities.DebtSource, error) {
	query, args, err := qb.
		Select(parcel.PackageColumns, "t.traveler_id").
		From("packages p").
		LeftJoin("customers c ON c.id = p.customer_id").
		LeftJoin("trips t ON t.id = p.trip_id").
		Where(sq.Eq{"p.status": entities.StatusDelivered.String()}).
		Where("p.deleted_at IS NULL").
		Where("p.amount_to_collect > 0").
		OrderBy("p.delivered_at", "p.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository listdebtsources error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository listdebtsources error: %w", err)
	}
	defer rows.Close()

	sources := make([]entities.DebtSource, 0, 16)
	for rows.Next() {
		var travelerID *string
		packageModel, err := parcel.ScanPackage(rows, &travelerID)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository listdebtsources error: %w", err)
		}
		sources = append(sources, entities.DebtSource{
			Package:    *parcel.ToDomain(packageModel),
			TravelerID: travelerID,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository listdebtsources error: %w", err)
	}

	return sources, nil
}

// UpsertDebts writes the debt projection rows and returns how many changed.
func (r *Repository) UpsertDebts(ctx context.Context, debts []entities.PackageDebt) (int64, error) {
	if len(debts) == 0 {
		return 0, nil
	}

	builder := qb.
		Insert("package_debts").
		Columns("package_id", "customer_id", "amount", "currency", "pending_amount", "status", "updated_at")
	for i := range debts {
		debtModel := debtFromDomain(&debts[i])
		builder = builder.Values(
			debtModel.PackageID,
			debtModel.CustomerID,
			debtModel.Amount,
			debtModel.Currency,
			debtModel.PendingAmount,
			debtModel.Status,
			sq.Expr("NOW()"),
		)
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (package_id) DO UPDATE
			SET amount = EXCLUDED.amount,
				currency = EXCLUDED.currency,
				pending_amount = EXCLUDED.pending_amount,
				status = EXCLUDED.status,
				updated_at = EXCLUDED.updated_at
			WHERE package_debts.pending_amount IS DISTINCT FROM EXCLUDED.pending_amount
				OR package_debts.status IS DISTINCT FROM EXCLUDED.status
				OR package_debts.amount IS DISTINCT FROM EXCLUDED.amount`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected payment repository upsertdebts error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected payment repository upsertdebts error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]entities.CustomerPayment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paymentModels := make([]CustomerPaymentDB, 0, 4)
	for rows.Next() {
		paymentModel, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		paymentModels = append(paymentModels, *paymentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return ToDomainList(paymentModels), nil
}

func scanPayment(row pgx.Row) (*CustomerPaymentDB, error) {
	var paymentModel CustomerPaymentDB
	err := row.Scan(
		&paymentModel.ID,
		&paymentModel.PackageID,
		&paymentModel.CustomerID,
		&paymentModel.Amount,
		&paymentModel.Currency,
		&paymentModel.PaymentMethod,
		&paymentModel.PaymentDate,
		&paymentModel.Notes,
		&paymentModel.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &paymentModel, nil
}
