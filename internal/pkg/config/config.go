package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   secrets)
// - default: Values common across all environments (intervals, rates,
//   timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	OTP    OTPConfig
	Sensor SensorConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig selects the ledger backing. The in-memory driver is the
// reference single-process setup; postgres shares the same repository
// contract for deployments that need durability.
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"memory"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"parkspot"`
	Password string `envconfig:"DB_PASSWORD" default:"parkspot"`
	DBName   string `envconfig:"DB_NAME" default:"parkspot"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
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
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type OTPConfig struct {
	TTL time.Duration `envconfig:"OTP_TTL" default:"10m"`
	// EchoCodes logs generated codes instead of sending SMS. Delivery is
	// stubbed in this system; keep this on outside production demos only.
	EchoCodes bool `envconfig:"OTP_ECHO_CODES" default:"true"`
}

type SensorConfig struct {
	Enabled  bool          `envconfig:"SENSOR_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"SENSOR_INTERVAL" default:"2m"`
	// SampleRate is the fraction of unreserved slots touched per tick.
	SampleRate float64 `envconfig:"SENSOR_SAMPLE_RATE" default:"0.10"`
	// AvailableBias is the probability a touched slot lands on available.
	AvailableBias float64 `envconfig:"SENSOR_AVAILABLE_BIAS" default:"0.70"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		OTP: OTPConfig{
			TTL:       10 * time.Minute,
			EchoCodes: false,
		},
		Sensor: SensorConfig{
			Enabled:       false,
			Interval:      2 * time.Minute,
			SampleRate:    0.10,
			AvailableBias: 0.70,
		},
	}
}
