package label

import (
	"context"
	"fmt"

	"ojitos/internal/entities"
	"ojitos/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, label entities.PackageLabel) (*entities.PackageLabel, error) {
	query := `INSERT INTO package_labels (package_id, format, url, printed_at)
		VALUES ($1, $2, $3, COALESCE($4, NOW()))
		RETURNING id, package_id, format, url, printed_at`

	var printedAt any
	if !label.PrintedAt.IsZero() {
		printedAt = label.PrintedAt
	}

	var (
		created entities.PackageLabel
		format  string
	)
	err := r.querier.QueryRow(ctx, query, label.PackageID, label.Format.String(), label.URL, printedAt).
		Scan(
			&created.ID,
			&created.PackageID,
			&format,
			&created.URL,
			&created.PrintedAt,
		)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected label repository create error: %w", err)
	}
	created.Format = entities.LabelFormat(format)

	return &created, nil
}
