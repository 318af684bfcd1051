package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCanonicalDocument(t *testing.T) {
	// Arrange
	body := "Please close my account"
	attachments := []string{"first attachment", "second attachment"}

	// Act
	doc := BuildCanonicalDocument(body, attachments)

	// Assert
	assert.Equal(t, "Email Body:\nPlease close my account\n\nAttachments:\nfirst attachment\n\nsecond attachment", doc)
}

func TestBuildCanonicalDocument_NoAttachments(t *testing.T) {
	doc := BuildCanonicalDocument("hello", nil)

	assert.Equal(t, "Email Body:\nhello\n\nAttachments:\n", doc)
}

func TestBuildCanonicalDocument_OrderMatters(t *testing.T) {
	first := BuildCanonicalDocument("body", []string{"a", "b"})
	second := BuildCanonicalDocument("body", []string{"b", "a"})

	assert.NotEqual(t, first, second)
}
