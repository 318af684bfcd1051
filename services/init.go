package services

import (
	"github.com/mailtriage/mailtriage/config"
	"github.com/mailtriage/mailtriage/interfaces"
	"github.com/mailtriage/mailtriage/internal/logger"
	"github.com/mailtriage/mailtriage/internal/repository"
	"github.com/mailtriage/mailtriage/services/ai"
	"github.com/mailtriage/mailtriage/services/events"
	"github.com/mailtriage/mailtriage/services/extractor"
	"github.com/mailtriage/mailtriage/services/ingestion"
	"github.com/mailtriage/mailtriage/services/storage"
)

type Services struct {
	AIService         interfaces.AIService
	ExtractorRegistry interfaces.ExtractorRegistry
	AttachmentStorage interfaces.StorageService
	EventPublisher    interfaces.EventPublisher
	IngestionService  *ingestion.Service
}

func InitServices(cfg *config.Config, log logger.Logger, repos *repository.Repositories) (*Services, error) {
	attachmentStorage, err := storage.NewAttachmentStorage(cfg.StorageConfig)
	if err != nil {
		return nil, err
	}

	var publisher interfaces.EventPublisher
	if cfg.EventsConfig.RabbitMQURL != "" {
		publisher, err = events.NewRabbitEventPublisher(cfg.EventsConfig.RabbitMQURL, cfg.EventsConfig.Exchange, log)
		if err != nil {
			return nil, err
		}
	} else {
		publisher = events.NewNoopEventPublisher()
	}

	aiService := ai.NewAIService(cfg.InferenceConfig)
	registry := extractor.NewDefaultRegistry()

	ingestionService := ingestion.NewService(
		log,
		repos.EmailRepository,
		repos.RequestTypeRepository,
		registry,
		aiService,
		attachmentStorage,
		publisher,
	)

	return &Services{
		AIService:         aiService,
		ExtractorRegistry: registry,
		AttachmentStorage: attachmentStorage,
		EventPublisher:    publisher,
		IngestionService:  ingestionService,
	}, nil
}
