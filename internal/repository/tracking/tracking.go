package tracking

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"ojitos/internal/entities"
	"ojitos/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the events in one statement.
func (r *Repository) Create(ctx context.Context, events []entities.TrackingEvent) error {
	if len(events) == 0 {
		return nil
	}

	builder := qb.
		Insert("tracking_events").
		Columns("package_id", "event_type", "description", "location")
	for _, event := range events {
		builder = builder.Values(event.PackageID, event.EventType.String(), event.Description, event.Location)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected tracking repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrPackageNotFound
		}
		return fmt.Errorf("unexpected tracking repository create error: %w", err)
	}
	return nil
}

func (r *Repository) ListByPackage(ctx context.Context, packageID string) ([]entities.TrackingEvent, error) {
	query := `
	SELECT id, package_id, event_type, description, location, created_at
	FROM tracking_events
	WHERE package_id = $1
	ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, packageID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository listbypackage error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.TrackingEvent, 0, 8)
	for rows.Next() {
		var (
			event     entities.TrackingEvent
			eventType string
		)
		err := rows.Scan(
			&event.ID,
			&event.PackageID,
			&eventType,
			&event.Description,
			&event.Location,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository listbypackage error: %w", err)
		}
		event.EventType = entities.TrackingEventType(eventType)
		events = append(events, event)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository listbypackage error: %w", err)
	}

	return events, nil
}
