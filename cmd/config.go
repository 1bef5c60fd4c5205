package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"clinicmeals/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
)

const (
	SinkLog      = "log"
	SinkKafka    = "kafka"
	SinkRabbitMQ = "rabbitmq"
)

const (
	defaultHTTPPort         = "8080"
	defaultDBPort           = "5432"
	defaultDBSslMode        = "disable"
	defaultTokenTTL         = 12 * time.Hour
	defaultRelaySchedule    = "*/5 * * * * *"
	defaultRelayBatchSize   = 100
	defaultKafkaTopic       = "clinic.notifications"
	defaultRabbitMQExchange = "clinic_notifications"
	defaultAdminDisplayName = "Administrateur"
	defaultClinicTimeZone   = "Europe/Paris"
	minJWTSecretLength      = 32
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	TokenTTL  time.Duration

	AdminLogin       string
	AdminPassword    string
	AdminDisplayName string

	CatalogSeedPath string

	NotificationSink       string
	KafkaHost              string
	KafkaNotificationTopic string
	RabbitMQURL            string
	RabbitMQExchange       string

	RelaySchedule  string
	RelayBatchSize int

	// Location is the clinic time zone; it decides which weekday "today" is.
	Location *time.Location

	LogLevel slog.Level
}

// LoadConfig reads envFile into the environment when it exists, then builds
// the configuration from the environment. Variables already set win over the
// file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return loadConfig(os.LookupEnv)
}

type envLookup func(string) (string, bool)

func loadConfig(lookup envLookup) (Config, error) {
	var errList []error

	cfg := Config{
		HTTPPort:               getString(lookup, "HTTP_PORT", defaultHTTPPort),
		DBHost:                 getString(lookup, "DB_HOST", ""),
		DBPort:                 getString(lookup, "DB_PORT", defaultDBPort),
		DBUser:                 getString(lookup, "DB_USER", ""),
		DBPassword:             getString(lookup, "DB_PASSWORD", ""),
		DBName:                 getString(lookup, "DB_NAME", ""),
		DBSslMode:              getString(lookup, "DB_SSLMODE", defaultDBSslMode),
		JWTSecret:              getString(lookup, "JWT_SECRET", ""),
		AdminLogin:             getString(lookup, "ADMIN_LOGIN", ""),
		AdminPassword:          getString(lookup, "ADMIN_PASSWORD", ""),
		AdminDisplayName:       getString(lookup, "ADMIN_DISPLAY_NAME", defaultAdminDisplayName),
		CatalogSeedPath:        getString(lookup, "CATALOG_SEED_PATH", ""),
		NotificationSink:       strings.ToLower(getString(lookup, "NOTIFICATION_SINK", SinkLog)),
		KafkaHost:              getString(lookup, "KAFKA_HOST", ""),
		KafkaNotificationTopic: getString(lookup, "KAFKA_NOTIFICATION_TOPIC", defaultKafkaTopic),
		RabbitMQURL:            getString(lookup, "RABBITMQ_URL", ""),
		RabbitMQExchange:       getString(lookup, "RABBITMQ_EXCHANGE", defaultRabbitMQExchange),
		RelaySchedule:          getString(lookup, "NOTIFICATION_RELAY_SCHEDULE", defaultRelaySchedule),
	}

	var err error
	if cfg.TokenTTL, err = getDuration(lookup, "TOKEN_TTL", defaultTokenTTL); err != nil {
		errList = append(errList, err)
	}
	if cfg.RelayBatchSize, err = getInt(lookup, "NOTIFICATION_RELAY_BATCH", defaultRelayBatchSize); err != nil {
		errList = append(errList, err)
	}
	if cfg.Location, err = time.LoadLocation(getString(lookup, "CLINIC_TIMEZONE", defaultClinicTimeZone)); err != nil {
		errList = append(errList, fmt.Errorf("CLINIC_TIMEZONE: %w", err))
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(getString(lookup, "LOG_LEVEL", "INFO"))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	errList = append(errList, cfg.validate()...)
	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() []error {
	var errList []error
	for key, v := range map[string]string{"DB_HOST": c.DBHost, "DB_USER": c.DBUser, "DB_NAME": c.DBName} {
		if v == "" {
			errList = append(errList, fmt.Errorf("%s must be provided", key))
		}
	}
	if len(c.JWTSecret) < minJWTSecretLength {
		errList = append(errList, fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength))
	}
	if (c.AdminLogin == "") != (c.AdminPassword == "") {
		errList = append(errList, errors.New("ADMIN_LOGIN and ADMIN_PASSWORD must be set together"))
	}
	if c.TokenTTL <= 0 {
		errList = append(errList, errors.New("TOKEN_TTL must be positive"))
	}
	if c.RelayBatchSize <= 0 || c.RelayBatchSize > commands.MaxDispatchBatch {
		errList = append(errList, fmt.Errorf("NOTIFICATION_RELAY_BATCH must be between 1 and %d", commands.MaxDispatchBatch))
	}

	switch c.NotificationSink {
	case SinkLog:
	case SinkKafka:
		if c.KafkaHost == "" {
			errList = append(errList, errors.New("KAFKA_HOST must be provided for the kafka sink"))
		}
	case SinkRabbitMQ:
		if c.RabbitMQURL == "" {
			errList = append(errList, errors.New("RABBITMQ_URL must be provided for the rabbitmq sink"))
		}
	default:
		errList = append(errList, fmt.Errorf("NOTIFICATION_SINK %q is not one of log, kafka, rabbitmq", c.NotificationSink))
	}
	return errList
}

// DSN is the libpq keyword/value connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(lookup envLookup, key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
