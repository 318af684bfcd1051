package config

import (
	internal_config "github.com/mailtriage/mailtriage/internal/config"
	"github.com/mailtriage/mailtriage/internal/logger"
	"github.com/mailtriage/mailtriage/internal/tracing"
)

type Config struct {
	AppConfig       *internal_config.AppConfig
	Logger          *logger.Config
	Tracing         *tracing.JaegerConfig
	DatabaseConfig  *internal_config.DatabaseConfig
	InferenceConfig *internal_config.InferenceConfig
	StorageConfig   *internal_config.StorageConfig
	EventsConfig    *internal_config.EventsConfig
	CronConfig      *internal_config.CronConfig
}
