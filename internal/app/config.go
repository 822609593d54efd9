package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	CorsOrigins      []string
	DB               DBConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

// postgresEnv mirrors the POSTGRES_* variables the deployment provides when
// no DSN is passed on the command line.
type postgresEnv struct {
	URL      string `env:"POSTGRES_URL"`
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5000"`
}

// ResolveDSN fills in the database DSN from the environment when the db-dsn
// flag was left empty. A fully formed POSTGRES_URL wins over the individual
// connection variables.
func (c *Config) ResolveDSN() error {
	if c.DB.DSN != "" {
		return nil
	}

	var pg postgresEnv
	err := env.Parse(&pg)
	if err != nil {
		return fmt.Errorf("parsing postgres environment: %w", err)
	}

	if strings.HasPrefix(pg.URL, "postgres://") || strings.HasPrefix(pg.URL, "postgresql://") {
		c.DB.DSN = pg.URL
		return nil
	}

	if pg.User == "" || pg.Password == "" || pg.Database == "" {
		return fmt.Errorf("database DSN not configured: set -db-dsn or the POSTGRES_* environment variables")
	}

	c.DB.DSN = fmt.Sprintf("postgres://%s:%s@%s:%d/%s", pg.User, pg.Password, pg.Host, pg.Port, pg.Database)

	return nil
}
