package label

import (
	"context"
	"fmt"
	"time"

	"ojitos/internal/entities"
	"ojitos/internal/service/lifecycle"
	"ojitos/pkg/logger"
)

type Label struct {
	packages   PackageRepository
	repository Repository
	tracking   TrackingRepository
	storage    ObjectStorage
	publisher  EventPublisher
	txManager  TxManager
	log        serviceLogger
	now        func() time.Time
}

func New(
	packages PackageRepository,
	repository Repository,
	tracking TrackingRepository,
	storage ObjectStorage,
	publisher EventPublisher,
	txManager TxManager,
	log serviceLogger,
) *Label {
	return &Label{
		packages:   packages,
		repository: repository,
		tracking:   tracking,
		storage:    storage,
		publisher:  publisher,
		txManager:  txManager,
		log:        log.With(logger.NewField("component", "label")),
		now:        time.Now,
	}
}

// Print renders a label and records the print. A freshly received package
// moves to processed; reprints leave the status alone.
func (l *Label) Print(ctx context.Context, packageID string, format entities.LabelFormat) (*entities.RenderedLabel, error) {
	if !isValidID(packageID) {
		return nil, ErrInvalidPackageID
	}
	if format == "" {
		format = entities.LabelPDF
	}
	if !isValidFormat(format) {
		return nil, ErrInvalidFormat
	}

	pkg, err := l.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	previous := pkg.Status
	printed := *pkg
	printed.Status = lifecycle.AdvanceOnPrint(previous)

	body, err := Render(printed, format)
	if err != nil {
		return nil, err
	}

	printedAt := l.now().UTC()
	url := l.store(ctx, printed, format, body, printedAt)

	target := printed.Status
	var advanced bool
	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		printed.Status = target
		advanced = false

		if _, err := l.repository.Create(ctx, entities.PackageLabel{
			PackageID: printed.ID,
			Format:    format,
			URL:       url,
			PrintedAt: printedAt,
		}); err != nil {
			return fmt.Errorf("record label: %w", err)
		}

		event := entities.TrackingEvent{
			PackageID:   printed.ID,
			EventType:   entities.EventLabelPrinted,
			Description: fmt.Sprintf("Etiqueta %s impresa", format),
			Location:    printed.Origin,
		}
		if err := l.tracking.Create(ctx, []entities.TrackingEvent{event}); err != nil {
			return fmt.Errorf("create tracking event: %w", err)
		}

		if printed.Status == previous {
			return nil
		}

		applied, err := l.packages.UpdateStatusFrom(ctx, printed.ID, previous, printed.Status)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if applied {
			advanced = true
			return nil
		}

		// Moved on since it was read: report what is stored now.
		current, err := l.packages.GetByID(ctx, printed.ID)
		if err != nil {
			return fmt.Errorf("reload package: %w", err)
		}
		printed.Status = current.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	if advanced {
		event := entities.PackageStatusEvent{
			PackageID:      printed.ID,
			TrackingNumber: printed.TrackingNumber,
			CustomerID:     printed.CustomerID,
			Status:         printed.Status,
			OccurredAt:     printedAt,
		}
		if err := l.publisher.PublishStatusChanged(ctx, event); err != nil {
			l.log.Warn("publish status change",
				logger.NewField("package_id", printed.ID),
				logger.NewField("error", err),
			)
		}
	}

	return &entities.RenderedLabel{
		Format: format,
		Body:   body,
		URL:    url,
		Status: printed.Status,
	}, nil
}

// Render dispatches to the renderer of the given format.
func Render(pkg entities.Package, format entities.LabelFormat) ([]byte, error) {
	switch format {
	case entities.LabelPDF:
		return RenderPDF(pkg)
	case entities.LabelCPCL:
		return RenderCPCL(pkg)
	default:
		return nil, ErrInvalidFormat
	}
}

// store keeps a copy of PDF labels when object storage is configured. The
// print still succeeds without it.
func (l *Label) store(
	ctx context.Context,
	pkg entities.Package,
	format entities.LabelFormat,
	body []byte,
	printedAt time.Time,
) string {
	if format != entities.LabelPDF || !l.storage.Enabled() {
		return ""
	}

	key := fmt.Sprintf("labels/%s/%d.pdf", pkg.TrackingNumber, printedAt.Unix())
	url, err := l.storage.Upload(ctx, key, body, format.ContentType())
	if err != nil {
		l.log.Warn("label upload failed",
			logger.NewField("package_id", pkg.ID),
			logger.NewField("key", key),
			logger.NewField("error", err),
		)
		return ""
	}
	return url
}
