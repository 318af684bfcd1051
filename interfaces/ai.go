package interfaces

import (
	"context"

	"github.com/mailtriage/mailtriage/dto"
	"github.com/mailtriage/mailtriage/internal/models"
)

type AIService interface {
	// Classify sends the canonical document to the inference service and
	// parses a classification out of the free-form completion.
	// Returns mailtriage_errors.ErrClassificationUnavailable when the service cannot be
	// reached and mailtriage_errors.ErrNoJSONFound when the completion carries no JSON.
	Classify(ctx context.Context, canonicalText string, taxonomy []models.RequestType) (*dto.ClassificationResult, error)
}
