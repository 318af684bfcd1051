package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	internal_config "github.com/mailtriage/mailtriage/internal/config"
	"github.com/mailtriage/mailtriage/internal/logger"
	"github.com/mailtriage/mailtriage/internal/tracing"
)

func InitConfig() (*Config, error) {
	config := &Config{
		AppConfig:       &internal_config.AppConfig{},
		Logger:          &logger.Config{},
		Tracing:         &tracing.JaegerConfig{},
		DatabaseConfig:  &internal_config.DatabaseConfig{},
		InferenceConfig: &internal_config.InferenceConfig{},
		StorageConfig:   &internal_config.StorageConfig{},
		EventsConfig:    &internal_config.EventsConfig{},
		CronConfig:      &internal_config.CronConfig{},
	}

	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	err = env.Parse(config)
	if err != nil {
		log.Fatalf("Error loading mailtriage config: %v", err)
	}

	return config, nil
}
