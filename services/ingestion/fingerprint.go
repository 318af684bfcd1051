package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the SHA-256 hex digest of the canonical document.
// Deterministic over the UTF-8 byte encoding; used as the deduplication key.
func Fingerprint(canonicalText string) string {
	sum := sha256.Sum256([]byte(canonicalText))
	return hex.EncodeToString(sum[:])
}
