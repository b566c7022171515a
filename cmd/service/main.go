package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // served only on ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "ojitos/internal/app"
	"ojitos/internal/handlers/rest/campaign_post"
	"ojitos/internal/handlers/rest/campaign_send_post"
	"ojitos/internal/handlers/rest/campaigns_get"
	"ojitos/internal/handlers/rest/customer_get"
	"ojitos/internal/handlers/rest/customer_indicator_get"
	"ojitos/internal/handlers/rest/customer_post"
	"ojitos/internal/handlers/rest/customer_put"
	"ojitos/internal/handlers/rest/customers_get"
	"ojitos/internal/handlers/rest/debts_get"
	"ojitos/internal/handlers/rest/dispatch_get"
	"ojitos/internal/handlers/rest/dispatch_post"
	"ojitos/internal/handlers/rest/dispatches_eligible_get"
	"ojitos/internal/handlers/rest/dispatches_get"
	"ojitos/internal/handlers/rest/healthcheck_head"
	"ojitos/internal/handlers/rest/message_post"
	"ojitos/internal/handlers/rest/package_delete"
	"ojitos/internal/handlers/rest/package_deliver_post"
	"ojitos/internal/handlers/rest/package_dispatches_get"
	"ojitos/internal/handlers/rest/package_get"
	"ojitos/internal/handlers/rest/package_label_post"
	"ojitos/internal/handlers/rest/package_post"
	"ojitos/internal/handlers/rest/package_restore_post"
	"ojitos/internal/handlers/rest/package_status_put"
	"ojitos/internal/handlers/rest/packages_deleted_get"
	"ojitos/internal/handlers/rest/packages_get"
	"ojitos/internal/handlers/rest/payment_post"
	"ojitos/internal/handlers/rest/ping_get"
	"ojitos/internal/handlers/rest/trip_post"
	"ojitos/internal/handlers/rest/trips_get"
	"ojitos/internal/handlers/rest/webhook_whatsapp"
	"ojitos/internal/handlers/ws/scanner_relay"
	"ojitos/internal/pkg/config"
	"ojitos/internal/pkg/dotenv"
	"ojitos/internal/pkg/kafka"
	metrics_system "ojitos/internal/pkg/metrics"
	"ojitos/internal/pkg/middlewares/graceful_shutdown"
	"ojitos/internal/pkg/middlewares/metrics"
	"ojitos/internal/pkg/middlewares/rate_limiter"
	"ojitos/internal/pkg/middlewares/timeout"
	"ojitos/internal/pkg/migrations"
	"ojitos/internal/pkg/objectstore"
	"ojitos/internal/pkg/postgres"
	"ojitos/pkg/logger"
	"ojitos/pkg/logger/zap_adapter"
	"ojitos/pkg/token_bucket"
)

func main() {
	// .env must be read before the logger so LOG_LEVEL can come from it.
	envFound, envErr := dotenv.Load()

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"),
		logger.NewField("service", "ojitos"),
	)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting ojitos back office")

	switch {
	case envErr != nil:
		mainLog.Error("failed to load env file", logger.NewField("error", envErr))
		return
	case !envFound:
		mainLog.Warn("no env file found, using system environment variables",
			logger.NewField("path", dotenv.Path()),
		)
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx and shutdownCtx derive from context.Background() on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := migrations.Up(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	publisher, err := kafka.NewPublisher(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka publisher: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			runLog.Error("failed to close kafka publisher",
				logger.NewField("error", err),
			)
		}
	}()

	storage, err := objectstore.New(ctx, cfg.LabelStorage)
	if err != nil {
		return fmt.Errorf("label storage: %w", err)
	}
	if !storage.Enabled() {
		runLog.Warn("label storage disabled, labels are only returned inline")
	}

	// Background tasks stop with ctx, before the HTTP server drains.
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, publisher, storage, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx is the BaseContext of every request and must outlive SIGTERM.
	// It is cancelled only after server.Shutdown() so in-flight requests finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// ctx is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	database healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, database)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/customers", customer_post.New(log, app.ServiceCustomer)).Methods("POST")
	router.Handle("/customers", customer_put.New(log, app.ServiceCustomer)).Methods("PUT")
	router.Handle("/customers", customers_get.New(log, app.ServiceCustomer)).Methods("GET")
	router.Handle("/customers/{id}", customer_get.New(log, app.ServiceCustomer)).Methods("GET")
	router.Handle("/customers/{id}/indicator", customer_indicator_get.New(log, app.ServiceCustomer)).Methods("GET")

	router.Handle("/trips", trip_post.New(log, app.ServiceTrip)).Methods("POST")
	router.Handle("/trips", trips_get.New(log, app.ServiceTrip)).Methods("GET")

	// Literal paths are registered before the {id} routes they would shadow.
	router.Handle("/packages", package_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/packages", packages_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/packages/deleted", packages_deleted_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/packages/{id}", package_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/packages/{id}", package_delete.New(log, app.ServiceParcel)).Methods("DELETE")
	router.Handle("/packages/{id}/status", package_status_put.New(log, app.ServiceParcel)).Methods("PUT")
	router.Handle("/packages/{id}/restore", package_restore_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/packages/{id}/label", package_label_post.New(log, app.ServiceLabel)).Methods("POST")
	router.Handle("/packages/{id}/deliver", package_deliver_post.New(log, app.ServicePayment)).Methods("POST")
	router.Handle("/packages/{id}/dispatches", package_dispatches_get.New(log, app.ServiceDispatch)).Methods("GET")

	router.Handle("/payments", payment_post.New(log, app.ServicePayment)).Methods("POST")
	router.Handle("/debts", debts_get.New(log, app.ServicePayment)).Methods("GET")

	router.Handle("/dispatches/eligible", dispatches_eligible_get.New(log, app.ServiceDispatch)).Methods("GET")
	router.Handle("/dispatches", dispatch_post.New(log, app.ServiceDispatch)).Methods("POST")
	router.Handle("/dispatches", dispatches_get.New(log, app.ServiceDispatch)).Methods("GET")
	router.Handle("/dispatches/{id}", dispatch_get.New(log, app.ServiceDispatch)).Methods("GET")

	router.Handle("/messages", message_post.New(log, app.ServiceMessaging)).Methods("POST")
	router.Handle("/webhooks/whatsapp", webhook_whatsapp.New(log, app.ServiceMessaging)).Methods("GET", "POST")

	router.Handle("/campaigns", campaign_post.New(log, app.ServiceCampaign)).Methods("POST")
	router.Handle("/campaigns", campaigns_get.New(log, app.ServiceCampaign)).Methods("GET")
	router.Handle("/campaigns/{id}/send", campaign_send_post.New(log, app.ServiceCampaign)).Methods("POST")

	router.Handle("/ws/scanner", scanner_relay.New(log, app.ScannerRegistry)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, database healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, database)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
