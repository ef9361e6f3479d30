package configs

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// SetupLogger applies the configured level and format to the standard logrus logger.
func SetupLogger(cfg *Config) {
	log.SetOutput(os.Stdout)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
