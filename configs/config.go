package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	DBDriver        string        `envconfig:"DB_DRIVER" default:"sqlite"`
	DBSource        string        `envconfig:"DB_SOURCE" default:"orders.db"`
	Port            string        `envconfig:"PORT" default:"8000"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"text"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Values already present in the environment win over the file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverMySQL:
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, errors.Wrap(err, "parse LOG_LEVEL")
	}
	return &cfg, nil
}
