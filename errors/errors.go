package mailtriage_errors

import "github.com/pkg/errors"

var (
	// ErrInvalidInput marks client mistakes: bad upload, malformed message,
	// missing required fields. Mapped to 400.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoPlainTextBody is returned when a message carries no text/plain part.
	ErrNoPlainTextBody = errors.New("message has no plain-text body")

	// ErrClassificationUnavailable is returned when the inference service
	// cannot be reached or answers with a non-2xx status. Nothing is persisted.
	ErrClassificationUnavailable = errors.New("classification service unavailable")

	// ErrNoJSONFound is returned when the model response contains no
	// brace-delimited JSON fragment.
	ErrNoJSONFound = errors.New("no JSON found in response")
)

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNoPlainTextBody)
}
