//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"ojitos/internal/gateway/whatsapp"
	"ojitos/internal/handlers/tasks/debt_sync"
	"ojitos/internal/pkg/config"
	"ojitos/internal/pkg/factory/status_message"
	"ojitos/internal/pkg/kafka"
	"ojitos/internal/pkg/objectstore"
	campaignRepo "ojitos/internal/repository/campaign"
	customerRepo "ojitos/internal/repository/customer"
	dispatchRepo "ojitos/internal/repository/dispatch"
	labelRepo "ojitos/internal/repository/label"
	notificationRepo "ojitos/internal/repository/notification"
	parcelRepo "ojitos/internal/repository/parcel"
	paymentRepo "ojitos/internal/repository/payment"
	trackingRepo "ojitos/internal/repository/tracking"
	tripRepo "ojitos/internal/repository/trip"
	campaignService "ojitos/internal/service/campaign"
	customerService "ojitos/internal/service/customer"
	dispatchService "ojitos/internal/service/dispatch"
	labelService "ojitos/internal/service/label"
	messagingService "ojitos/internal/service/messaging"
	parcelService "ojitos/internal/service/parcel"
	paymentService "ojitos/internal/service/payment"
	"ojitos/internal/service/scanner"
	tripService "ojitos/internal/service/trip"
	"ojitos/pkg/background"
	"ojitos/pkg/logger"
	"ojitos/pkg/querier"
	"ojitos/pkg/tx"
)

type (
	DebtSyncInterval time.Duration
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCustomerRepository,
	provideTripRepository,
	provideParcelRepository,
	provideTrackingRepository,
	providePaymentRepository,
	provideDispatchRepository,
	provideLabelRepository,
	provideNotificationRepository,
	provideCampaignRepository,
)

var messagingSet = wire.NewSet(
	provideWhatsAppGateway,
	status_message.NewTemplateFactory,
	provideMessagingService,

	wire.Bind(new(messagingService.Gateway), new(*whatsapp.Gateway)),
	wire.Bind(new(messagingService.Repository), new(*notificationRepo.Repository)),
	wire.Bind(new(messagingService.CustomerReader), new(*customerRepo.Repository)),
	wire.Bind(new(messagingService.PackageReader), new(*parcelRepo.Repository)),
	wire.Bind(new(messagingService.TemplateFactory), new(*status_message.TemplateFactory)),
)

// InitializeApplication builds the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher *kafka.Publisher,
	storage *objectstore.Store,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		messagingSet,
		provideDebtSyncInterval,

		provideCustomerService,
		provideTripService,
		provideParcelService,
		provideLabelService,
		providePaymentService,
		provideDispatchService,
		provideCampaignService,
		provideScannerRegistry,

		provideDebtSyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),
		wire.Bind(new(ServiceTrip), new(*tripService.Trip)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceLabel), new(*labelService.Label)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceMessaging), new(*messagingService.Messaging)),
		wire.Bind(new(ServiceCampaign), new(*campaignService.Campaign)),

		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(customerService.PackageReader), new(*parcelRepo.Repository)),
		wire.Bind(new(customerService.PaymentReader), new(*paymentRepo.Repository)),
		wire.Bind(new(tripService.Repository), new(*tripRepo.Repository)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(parcelService.PaymentReader), new(*paymentRepo.Repository)),
		wire.Bind(new(parcelService.EventPublisher), new(*kafka.Publisher)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(labelService.PackageRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(labelService.Repository), new(*labelRepo.Repository)),
		wire.Bind(new(labelService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(labelService.ObjectStorage), new(*objectstore.Store)),
		wire.Bind(new(labelService.EventPublisher), new(*kafka.Publisher)),
		wire.Bind(new(labelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.PackageRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(paymentService.EventPublisher), new(*kafka.Publisher)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.Repository), new(*dispatchRepo.Repository)),
		wire.Bind(new(dispatchService.PackageRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(dispatchService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(dispatchService.EventPublisher), new(*kafka.Publisher)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(campaignService.Repository), new(*campaignRepo.Repository)),
		wire.Bind(new(campaignService.CustomerReader), new(*customerRepo.Repository)),
		wire.Bind(new(campaignService.Sender), new(*messagingService.Messaging)),

		wire.Bind(new(debt_sync.Service), new(*paymentService.Payment)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp builds the status notification worker
// (cmd/worker-package-notifications).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		messagingSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideTripRepository(querier *querier.Querier) *tripRepo.Repository {
	return tripRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideDispatchRepository(querier *querier.Querier) *dispatchRepo.Repository {
	return dispatchRepo.New(querier)
}

func provideLabelRepository(querier *querier.Querier) *labelRepo.Repository {
	return labelRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideCampaignRepository(querier *querier.Querier) *campaignRepo.Repository {
	return campaignRepo.New(querier)
}

func provideWhatsAppGateway(cfg *config.Config) *whatsapp.Gateway {
	return whatsapp.New(cfg.WhatsApp)
}

func provideMessagingService(
	cfg *config.Config,
	gateway messagingService.Gateway,
	repository messagingService.Repository,
	customers messagingService.CustomerReader,
	packages messagingService.PackageReader,
	templates messagingService.TemplateFactory,
	log logger.Logger,
) *messagingService.Messaging {
	return messagingService.New(
		messagingService.Config{VerifyToken: cfg.WhatsApp.VerifyToken},
		gateway,
		repository,
		customers,
		packages,
		templates,
		log,
	)
}

func provideCustomerService(
	repository customerService.Repository,
	packages customerService.PackageReader,
	payments customerService.PaymentReader,
) *customerService.Customer {
	return customerService.New(repository, packages, payments)
}

func provideTripService(repository tripService.Repository) *tripService.Trip {
	return tripService.New(repository)
}

func provideParcelService(
	repository parcelService.Repository,
	tracking parcelService.TrackingRepository,
	payments parcelService.PaymentReader,
	publisher parcelService.EventPublisher,
	txManager parcelService.TxManager,
	log logger.Logger,
) *parcelService.Parcel {
	return parcelService.New(repository, tracking, payments, publisher, txManager, log)
}

func provideLabelService(
	packages labelService.PackageRepository,
	repository labelService.Repository,
	tracking labelService.TrackingRepository,
	storage labelService.ObjectStorage,
	publisher labelService.EventPublisher,
	txManager labelService.TxManager,
	log logger.Logger,
) *labelService.Label {
	return labelService.New(packages, repository, tracking, storage, publisher, txManager, log)
}

func providePaymentService(
	repository paymentService.Repository,
	packages paymentService.PackageRepository,
	publisher paymentService.EventPublisher,
	txManager paymentService.TxManager,
	log logger.Logger,
) *paymentService.Payment {
	return paymentService.New(repository, packages, publisher, txManager, log)
}

func provideDispatchService(
	cfg *config.Config,
	repository dispatchService.Repository,
	packages dispatchService.PackageRepository,
	tracking dispatchService.TrackingRepository,
	publisher dispatchService.EventPublisher,
	txManager dispatchService.TxManager,
	log logger.Logger,
) *dispatchService.Dispatch {
	return dispatchService.New(
		dispatchService.Config{Atomic: cfg.Dispatch.Atomic},
		repository,
		packages,
		tracking,
		publisher,
		txManager,
		log,
	)
}

func provideCampaignService(
	cfg *config.Config,
	repository campaignService.Repository,
	customers campaignService.CustomerReader,
	sender campaignService.Sender,
	log logger.Logger,
) *campaignService.Campaign {
	return campaignService.New(
		campaignService.Config{Concurrency: cfg.Campaign.Concurrency},
		repository,
		customers,
		sender,
		log,
	)
}

func provideScannerRegistry(log logger.Logger) *scanner.Registry {
	return scanner.NewRegistry(log)
}

func provideDebtSyncInterval(cfg *config.Config) DebtSyncInterval {
	return DebtSyncInterval(cfg.Tasks.DebtSyncInterval)
}

func provideDebtSyncTask(
	log logger.Logger,
	service debt_sync.Service,
	interval DebtSyncInterval,
) *debt_sync.DebtSync {
	return debt_sync.NewDebtSync(log, service, time.Duration(interval))
}

func provideTaskList(
	debtSyncTask *debt_sync.DebtSync,
) []background.Task {
	return []background.Task{
		debtSyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
