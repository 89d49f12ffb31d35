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
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Mdms    MdmsConfig
	Billing BillingConfig
	Crypto  CryptoConfig
	Timer   TimerConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
}

type RedisConfig struct {
	Address  string `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

type KafkaConfig struct {
	Brokers            []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	BookingUpdateTopic string   `envconfig:"KAFKA_BOOKING_UPDATE_TOPIC" default:"update-adv-booking"`
}

type MdmsConfig struct {
	Host       string        `envconfig:"MDMS_HOST" required:"true"`
	SearchPath string        `envconfig:"MDMS_SEARCH_PATH" default:"/mdms-v2/v1/_search"`
	Timeout    time.Duration `envconfig:"MDMS_TIMEOUT" default:"10s"`
}

type BillingConfig struct {
	Host             string        `envconfig:"BILLING_HOST" required:"true"`
	DemandCreatePath string        `envconfig:"BILLING_DEMAND_CREATE_PATH" default:"/billing-service/demand/_create"`
	Timeout          time.Duration `envconfig:"BILLING_TIMEOUT" default:"10s"`
	BusinessService  string        `envconfig:"BILLING_BUSINESS_SERVICE" default:"adv-services"`
	TaxHeadCode      string        `envconfig:"BILLING_TAX_HEAD_CODE" default:"ADV_ADVT_CHARGES"`
}

type CryptoConfig struct {
	// 32-byte key, base64 encoded; encrypts applicant PII at rest
	Key string `envconfig:"PII_ENCRYPTION_KEY" required:"true"`
}

type TimerConfig struct {
	HoldDuration time.Duration `envconfig:"PAYMENT_TIMER_DURATION" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
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
			TimeZone: "Asia/Kolkata",
		},
		Redis: RedisConfig{
			Address:  "localhost:16379",
			PoolSize: 2,
		},
		Kafka: KafkaConfig{
			Brokers:            []string{"localhost:19092"},
			BookingUpdateTopic: "update-adv-booking-test",
		},
		Mdms: MdmsConfig{
			Host:       "http://localhost:18081",
			SearchPath: "/mdms-v2/v1/_search",
			Timeout:    5 * time.Second,
		},
		Billing: BillingConfig{
			Host:             "http://localhost:18082",
			DemandCreatePath: "/billing-service/demand/_create",
			Timeout:          5 * time.Second,
			BusinessService:  "adv-services",
			TaxHeadCode:      "ADV_ADVT_CHARGES",
		},
		Crypto: CryptoConfig{
			Key: "dGVzdC1rZXktdGVzdC1rZXktdGVzdC1rZXktdGVzdCE=",
		},
		Timer: TimerConfig{
			HoldDuration: 10 * time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "24h",
		},
	}
}
