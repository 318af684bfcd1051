package interfaces

import (
	"context"

	"github.com/mailtriage/mailtriage/internal/models"
)

type RequestTypeRepository interface {
	// List returns all taxonomy entries in insertion order.
	List(ctx context.Context) ([]models.RequestType, error)

	// Append adds one entry at the end of the taxonomy.
	Append(ctx context.Context, category, subRequestType string) (*models.RequestType, error)

	// EnsureSeed inserts the default taxonomy when the table is empty.
	EnsureSeed(ctx context.Context) error
}
