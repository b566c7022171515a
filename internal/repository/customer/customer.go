package customer

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

const customerColumns = "id, name, phone, whatsapp_number, email, id_number, address, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (string, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)
	query := `INSERT INTO customers (name, phone, whatsapp_number, email, id_number, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		valueOrEmpty(customerModifyModel.Name),
		valueOrEmpty(customerModifyModel.Phone),
		valueOrEmpty(customerModifyModel.WhatsAppNumber),
		valueOrEmpty(customerModifyModel.Email),
		valueOrEmpty(customerModifyModel.IDNumber),
		valueOrEmpty(customerModifyModel.Address),
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", entities.ErrDuplicatePhone
		}
		return "", fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)

	builder := qb.
		Update("customers")

	if customerModifyModel.Name != nil {
		builder = builder.Set("name", customerModifyModel.Name)
	}
	if customerModifyModel.Phone != nil {
		builder = builder.Set("phone", customerModifyModel.Phone)
	}
	if customerModifyModel.WhatsAppNumber != nil {
		builder = builder.Set("whatsapp_number", customerModifyModel.WhatsAppNumber)
	}
	if customerModifyModel.Email != nil {
		builder = builder.Set("email", customerModifyModel.Email)
	}
	if customerModifyModel.IDNumber != nil {
		builder = builder.Set("id_number", customerModifyModel.IDNumber)
	}
	if customerModifyModel.Address != nil {
		builder = builder.Set("address", customerModifyModel.Address)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": customerModifyModel.ID}).
		Suffix("RETURNING " + customerColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	customerModel, err := scanCustomer(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCustomerNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrDuplicatePhone
		}

		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	return ToDomain(customerModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers
		WHERE id = $1`

	customerModel, err := scanCustomer(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(customerModel), nil
}

// GetByPhone matches the normalized number against both the phone and the
// WhatsApp number. The oldest customer wins when several share it.
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*entities.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers
		WHERE phone = $1 OR whatsapp_number = $1
		ORDER BY created_at
		LIMIT 1`

	customerModel, err := scanCustomer(r.querier.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository getbyphone error: %w", err)
	}

	return ToDomain(customerModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Customer, error) {
	query := `
	SELECT ` + customerColumns + `
	FROM customers
	ORDER BY name, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}
	defer rows.Close()

	customerModels := make([]CustomerDB, 0, 32)
	for rows.Next() {
		customerModel, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
		}
		customerModels = append(customerModels, *customerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}

	return ToDomainList(customerModels), nil
}

// CountPackages counts the customer's packages, soft-deleted ones excluded.
func (r *Repository) CountPackages(ctx context.Context, customerID string) (int64, error) {
	query := `SELECT COUNT(*)
		FROM packages
		WHERE customer_id = $1 AND deleted_at IS NULL`

	var count int64
	err := r.querier.QueryRow(ctx, query, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected customer repository countpackages error: %w", err)
	}

	return count, nil
}

func scanCustomer(row pgx.Row) (*CustomerDB, error) {
	var customerModel CustomerDB
	err := row.Scan(
		&customerModel.ID,
		&customerModel.Name,
		&customerModel.Phone,
		&customerModel.WhatsAppNumber,
		&customerModel.Email,
		&customerModel.IDNumber,
		&customerModel.Address,
		&customerModel.CreatedAt,
		&customerModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &customerModel, nil
}
