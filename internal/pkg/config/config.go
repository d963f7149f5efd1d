package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, TTLs, pool sizes)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Redis   RedisConfig
	Queue   QueueConfig
	Mail    MailConfig
	Metrics MetricsConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Guayaquil"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8100"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Guayaquil"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
	FilePath       string `envconfig:"LOG_FILE_PATH"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"7"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RedisConfig struct {
	Enabled         bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Addr            string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	Password        string        `envconfig:"REDIS_PASSWORD"`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	Prefix          string        `envconfig:"REDIS_PREFIX" default:"cuponera"`
	CouponDetailTTL time.Duration `envconfig:"COUPON_DETAIL_TTL" default:"30s"`
}

type QueueConfig struct {
	Enabled     bool   `envconfig:"QUEUE_ENABLED" default:"false"`
	RedisAddr   string `envconfig:"QUEUE_REDIS_ADDR" default:"127.0.0.1:6379"`
	Password    string `envconfig:"QUEUE_REDIS_PASSWORD"`
	DB          int    `envconfig:"QUEUE_REDIS_DB" default:"1"`
	Concurrency int    `envconfig:"QUEUE_CONCURRENCY" default:"10"`
}

type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM" default:"no-reply@cuponera.ec"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone, c.MaxConns,
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
			TimeZone: "America/Guayaquil",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Guayaquil",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			Enabled:         false,
			Prefix:          "cuponera-test",
			CouponDetailTTL: 30 * time.Second,
		},
		Queue: QueueConfig{
			Enabled:     false,
			Concurrency: 1,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}
