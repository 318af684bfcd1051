package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailtriage_errors "github.com/mailtriage/mailtriage/errors"
	"github.com/mailtriage/mailtriage/internal/models"
)

func TestRenderPrompt(t *testing.T) {
	taxonomy := []models.RequestType{
		{Category: "Account Management", SubRequestType: "Close Account"},
		{Category: "Loan Services", SubRequestType: "Apply for Loan"},
	}

	prompt := RenderPrompt("Email Body:\nclose my account\n\nAttachments:\n", taxonomy)

	assert.Contains(t, prompt, "- Account Management: Close Account")
	assert.Contains(t, prompt, "- Loan Services: Apply for Loan")
	assert.Contains(t, prompt, "close my account")
	assert.Contains(t, prompt, "request_type, sub_request_type, summary")
	// taxonomy order preserved
	assert.Less(t,
		indexOf(prompt, "Account Management"),
		indexOf(prompt, "Loan Services"))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func TestExtractJSONFragment(t *testing.T) {
	completion := `Sure, here is the classification:
{"request_type": "Account Management", "sub_request_type": "Close Account", "summary": "closure"}
Anything else?`

	fragment, err := ExtractJSONFragment(completion)

	require.NoError(t, err)
	assert.Equal(t, `{"request_type": "Account Management", "sub_request_type": "Close Account", "summary": "closure"}`, fragment)
}

func TestExtractJSONFragment_FirstMatchWins(t *testing.T) {
	fragment, err := ExtractJSONFragment(`{"a": 1} trailing {"b": 2}`)

	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, fragment)
}

func TestExtractJSONFragment_NoJSON(t *testing.T) {
	_, err := ExtractJSONFragment("the model rambled and produced no structure")

	assert.ErrorIs(t, err, mailtriage_errors.ErrNoJSONFound)
}

func TestParseClassification(t *testing.T) {
	result, err := ParseClassification(`{"request_type":"Account Management","sub_request_type":"Close Account","summary":"Customer requests account closure"}`)

	require.NoError(t, err)
	assert.Equal(t, "Account Management", result.RequestType)
	assert.Equal(t, "Close Account", result.SubRequestType)
	assert.Equal(t, "Customer requests account closure", result.Summary)
}

func TestParseClassification_MissingKeysGetSentinels(t *testing.T) {
	result, err := ParseClassification(`{"request_type":"Loan Services"}`)

	require.NoError(t, err)
	assert.Equal(t, "Loan Services", result.RequestType)
	assert.Equal(t, "Unknown", result.SubRequestType)
	assert.Equal(t, "No summary provided", result.Summary)
}

func TestParseClassification_UnparsableFragment(t *testing.T) {
	_, err := ParseClassification(`{not json at all}`)

	assert.ErrorIs(t, err, mailtriage_errors.ErrNoJSONFound)
}
