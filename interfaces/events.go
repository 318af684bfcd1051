package interfaces

import "context"

// EventPublisher publishes processed-email events for downstream consumers.
// A nil-safe no-op implementation is used when no broker is configured.
type EventPublisher interface {
	PublishEmailProcessed(ctx context.Context, emailID, fingerprint string) error
	Close() error
}
