package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Bus          BusConfig
	Subscription SubscriptionConfig
	Retention    RetentionConfig
	Crypto       CryptoConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type BusConfig struct {
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	ConsumerGroup string        `envconfig:"BUS_CONSUMER_GROUP"` // per instance when empty
	ConsumerName  string        `envconfig:"BUS_CONSUMER_NAME"` // generated when empty
	ReadBlock     time.Duration `envconfig:"BUS_READ_BLOCK" default:"2s"`
	ReadCount     int64         `envconfig:"BUS_READ_COUNT" default:"32"`
	Streams       StreamConfig
}

type StreamConfig struct {
	CheckRequested   string `envconfig:"BUS_STREAM_CHECK_REQUESTED" default:"subscription-check-requested"`
	CheckResult      string `envconfig:"BUS_STREAM_CHECK_RESULT" default:"subscription-check-result"`
	BorrowingCreated string `envconfig:"BUS_STREAM_BORROWING_CREATED" default:"borrowing-created"`
}

type SubscriptionConfig struct {
	CheckTimeout time.Duration `envconfig:"SUBSCRIPTION_CHECK_TIMEOUT" default:"5s"`
}

type RetentionConfig struct {
	Enabled bool   `envconfig:"RETENTION_ENABLED" default:"true"`
	Days    int    `envconfig:"RETENTION_DAYS" default:"730"`
	SweepAt string `envconfig:"RETENTION_SWEEP_AT" default:"00:00"`
}

type CryptoConfig struct {
	// empty selects the identity cipher
	FieldKey string `envconfig:"FIELD_ENCRYPTION_KEY"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// SweepClock parses SweepAt ("HH:MM") into hour and minute.
func (c RetentionConfig) SweepClock() (hour, minute int, err error) {
	t, err := time.Parse("15:04", c.SweepAt)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid RETENTION_SWEEP_AT %q: %w", c.SweepAt, err)
	}
	return t.Hour(), t.Minute(), nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Retention.Days <= 0 {
		return Config{}, fmt.Errorf("RETENTION_DAYS must be positive, got %d", cfg.Retention.Days)
	}
	if cfg.Subscription.CheckTimeout <= 0 {
		return Config{}, fmt.Errorf("SUBSCRIPTION_CHECK_TIMEOUT must be positive, got %s", cfg.Subscription.CheckTimeout)
	}
	if _, _, err := cfg.Retention.SweepClock(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "Location"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Bus: BusConfig{
			RedisAddr:     "localhost:16379",
			ConsumerGroup: "borrowing-service-test",
			ReadBlock:     100 * time.Millisecond,
			ReadCount:     32,
			Streams: StreamConfig{
				CheckRequested:   "subscription-check-requested",
				CheckResult:      "subscription-check-result",
				BorrowingCreated: "borrowing-created",
			},
		},
		Subscription: SubscriptionConfig{
			CheckTimeout: 2 * time.Second,
		},
		Retention: RetentionConfig{
			Enabled: false,
			Days:    730,
			SweepAt: "00:00",
		},
	}
}
