package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds every setting read from the environment.
type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`

	DBDriver          string        `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            int           `envconfig:"DB_PORT" default:"5432"`
	DBUser            string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword        string        `envconfig:"DB_PASSWORD"`
	DBName            string        `envconfig:"DB_NAME" default:"blog"`
	DBSSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	DBDSN             string        `envconfig:"DB_DSN"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	DBLogLevel        string        `envconfig:"DB_LOG_LEVEL" default:"warn"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	FrontendURL     string        `envconfig:"FRONTEND_URL" default:"*"`
	RenderMarkdown  bool          `envconfig:"RENDER_MARKDOWN" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DSN returns the connection string for the configured driver. DB_DSN, when
// set, wins over the DB_* parts; for sqlite it names the database file.
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	if c.DBDriver == DriverSQLite {
		return "blog.db?_pragma=foreign_keys(1)"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// Load reads envFile when it exists and then the process environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if c.DBDriver != DriverPostgres && c.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	return &c, nil
}
