package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultWhatsAppBaseURL     = "https://graph.facebook.com/v21.0"
	defaultWhatsAppTimeout     = 10 * time.Second
	defaultCampaignConcurrency = 4
	defaultDebtSyncInterval    = 15 * time.Minute
)

type (
	Log struct {
		Level string
	}

	Tasks struct {
		DebtSyncInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		Migrate  bool
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PackageStatusChanged PackageStatusChanged
	}

	PackageStatusChanged struct {
		ProcessTimeout time.Duration
	}

	WhatsApp struct {
		BaseURL       string
		PhoneNumberID string
		AccessToken   string
		VerifyToken   string
		Timeout       time.Duration
	}

	// LabelStorage is optional; labels are only returned inline when Bucket
	// is empty.
	LabelStorage struct {
		Bucket          string
		Endpoint        string
		Region          string
		AccessKeyID     string
		SecretAccessKey string
		PublicURL       string
	}

	Dispatch struct {
		Atomic bool
	}

	Campaign struct {
		Concurrency int
	}

	Config struct {
		Log          Log
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Kafka        Kafka
		WhatsApp     WhatsApp
		LabelStorage LabelStorage
		Dispatch     Dispatch
		Campaign     Campaign
	}
)

func (s LabelStorage) Enabled() bool {
	return s.Bucket != ""
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	debtSyncInterval, err := osGetEnvDuration("BACKGROUND_DEBT_SYNC_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if debtSyncInterval == 0 {
		debtSyncInterval = defaultDebtSyncInterval
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PACKAGE_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrate, err := osGetBool("POSTGRES_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	whatsAppTimeout, err := osGetEnvDuration("WHATSAPP_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if whatsAppTimeout == 0 {
		whatsAppTimeout = defaultWhatsAppTimeout
	}

	dispatchAtomic, err := osGetBoolDefault("DISPATCH_ATOMIC", true)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	campaignConcurrency, err := osGetInt("CAMPAIGN_SEND_CONCURRENCY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if campaignConcurrency == 0 {
		campaignConcurrency = defaultCampaignConcurrency
	}

	whatsAppBaseURL := os.Getenv("WHATSAPP_API_BASE_URL")
	if whatsAppBaseURL == "" {
		whatsAppBaseURL = defaultWhatsAppBaseURL
	}

	return &Config{
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
		Tasks: Tasks{
			DebtSyncInterval: debtSyncInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			Migrate:  migrate,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PackageStatusChanged: PackageStatusChanged{
					ProcessTimeout: statusChangedTimeout,
				},
			},
		},
		WhatsApp: WhatsApp{
			BaseURL:       whatsAppBaseURL,
			PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			AccessToken:   os.Getenv("WHATSAPP_ACCESS_TOKEN"),
			VerifyToken:   os.Getenv("WHATSAPP_VERIFY_TOKEN"),
			Timeout:       whatsAppTimeout,
		},
		LabelStorage: LabelStorage{
			Bucket:          os.Getenv("LABEL_STORAGE_BUCKET"),
			Endpoint:        os.Getenv("LABEL_STORAGE_ENDPOINT"),
			Region:          os.Getenv("LABEL_STORAGE_REGION"),
			AccessKeyID:     os.Getenv("LABEL_STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("LABEL_STORAGE_SECRET_ACCESS_KEY"),
			PublicURL:       os.Getenv("LABEL_STORAGE_PUBLIC_URL"),
		},
		Dispatch: Dispatch{
			Atomic: dispatchAtomic,
		},
		Campaign: Campaign{
			Concurrency: campaignConcurrency,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.PackageStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PACKAGE_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	if cfg.WhatsApp.PhoneNumberID == "" {
		return errors.New("WHATSAPP_PHONE_NUMBER_ID is required")
	}
	if cfg.WhatsApp.AccessToken == "" {
		return errors.New("WHATSAPP_ACCESS_TOKEN is required")
	}
	if cfg.WhatsApp.VerifyToken == "" {
		return errors.New("WHATSAPP_VERIFY_TOKEN is required")
	}

	if cfg.LabelStorage.Enabled() {
		if cfg.LabelStorage.AccessKeyID == "" || cfg.LabelStorage.SecretAccessKey == "" {
			return errors.New("LABEL_STORAGE_ACCESS_KEY_ID and LABEL_STORAGE_SECRET_ACCESS_KEY are required with LABEL_STORAGE_BUCKET")
		}
		if cfg.LabelStorage.PublicURL == "" {
			return errors.New("LABEL_STORAGE_PUBLIC_URL is required with LABEL_STORAGE_BUCKET")
		}
	}

	if cfg.Campaign.Concurrency < 0 {
		return errors.New("CAMPAIGN_SEND_CONCURRENCY must be positive")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	return osGetBoolDefault(s, false)
}

func osGetBoolDefault(s string, def bool) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
