package interfaces

import (
	"context"

	"github.com/mailtriage/mailtriage/internal/models"
)

type EmailRepository interface {
	// GetByFingerprint returns the stored email for a content fingerprint,
	// or nil when none exists.
	GetByFingerprint(ctx context.Context, fingerprint string) (*models.ProcessedEmail, error)

	// InsertIfAbsent stores the email unless a row with the same fingerprint
	// already exists. Returns false when the insert was skipped; a concurrent
	// duplicate is not an error, the first writer wins.
	InsertIfAbsent(ctx context.Context, email *models.ProcessedEmail) (bool, error)
}
