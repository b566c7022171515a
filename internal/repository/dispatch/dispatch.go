package dispatch

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

const relationColumns = `id, dispatch_date, total_packages, total_weight, total_freight,
		total_amount_to_collect, status, notes, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, relation entities.DispatchRelation) (*entities.DispatchRelation, error) {
	relationModel := FromDomain(&relation)
	query := `INSERT INTO dispatch_relations (dispatch_date, total_packages, total_weight, total_freight,
			total_amount_to_collect, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + relationColumns

	created, err := scanRelation(r.querier.QueryRow(
		ctx,
		query,
		relationModel.DispatchDate,
		relationModel.TotalPackages,
		relationModel.TotalWeight,
		relationModel.TotalFreight,
		relationModel.TotalAmountToCollect,
		relationModel.Status,
		relationModel.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository create error: %w", err)
	}

	return ToDomain(created), nil
}

// Delete removes the relation; its package links go with it.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM dispatch_relations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected dispatch repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrDispatchNotFound
	}
	return nil
}

func (r *Repository) AddPackages(ctx context.Context, dispatchID string, packageIDs []string) error {
	if len(packageIDs) == 0 {
		return nil
	}

	builder := qb.
		Insert("dispatch_packages").
		Columns("dispatch_id", "package_id")
	for _, packageID := range packageIDs {
		builder = builder.Values(dispatchID, packageID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected dispatch repository addpackages error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrPackageNotFound
		}
		return fmt.Errorf("unexpected dispatch repository addpackages error: %w", err)
	}
	return nil
}

func (r *Repository) RemovePackages(ctx context.Context, dispatchID string) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM dispatch_packages WHERE dispatch_id = $1`, dispatchID)
	if err != nil {
		return fmt.Errorf("unexpected dispatch repository removepackages error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DispatchRelation, error) {
	query := `SELECT ` + relationColumns + `
		FROM dispatch_relations
		WHERE id = $1`

	relationModel, err := scanRelation(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDispatchNotFound
		}

		return nil, fmt.Errorf("unexpected dispatch repository getbyid error: %w", err)
	}

	return ToDomain(relationModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.DispatchRelation, error) {
	query := `
	SELECT ` + relationColumns + `
	FROM dispatch_relations
	ORDER BY dispatch_date DESC, created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository getall error: %w", err)
	}
	defer rows.Close()

	relationModels := make([]DispatchRelationDB, 0, 8)
	for rows.Next() {
		relationModel, err := scanRelation(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected dispatch repository getall error: %w", err)
		}
		relationModels = append(relationModels, *relationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository getall error: %w", err)
	}

	return ToDomainList(relationModels), nil
}

// CountByPackage counts the dispatches a package has been part of.
func (r *Repository) CountByPackage(ctx context.Context, packageID string) (int, error) {
	query := `SELECT COUNT(*)
		FROM dispatch_packages
		WHERE package_id = $1`

	var count int
	err := r.querier.QueryRow(ctx, query, packageID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected dispatch repository countbypackage error: %w", err)
	}
	return count, nil
}

func scanRelation(row pgx.Row) (*DispatchRelationDB, error) {
	var relationModel DispatchRelationDB
	err := row.Scan(
		&relationModel.ID,
		&relationModel.DispatchDate,
		&relationModel.TotalPackages,
		&relationModel.TotalWeight,
		&relationModel.TotalFreight,
		&relationModel.TotalAmountToCollect,
		&relationModel.Status,
		&relationModel.Notes,
		&relationModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &relationModel, nil
}
