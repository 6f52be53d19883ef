package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabasePath string `envconfig:"DATABASE_PATH" default:"healthpoint.db"`
	Port         string `envconfig:"PORT"          default:":8080"`
	LogLevel     string `envconfig:"LOG_LEVEL"     default:"info"`
	StoreName    string `envconfig:"STORE_NAME"    default:"Health Point Pharmacy"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err = envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, LogLevel=%s, DatabasePath=%s", config.Port, config.LogLevel, config.DatabasePath)
	})
	return &config
}
