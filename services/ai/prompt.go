package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/mailtriage/mailtriage/dto"
	mailtriage_errors "github.com/mailtriage/mailtriage/errors"
	"github.com/mailtriage/mailtriage/internal/models"
)

const promptTemplate = `Classify the following bank customer query into a request type and sub-request type using the available categories below. Then generate a brief summary.
Available Request Types and Sub-Requests:
%s

Query: %s
Provide the response in JSON format with keys: request_type, sub_request_type, summary.`

// jsonFragmentRegex matches the first non-nested brace-delimited fragment.
var jsonFragmentRegex = regexp.MustCompile(`\{[^{}]*\}`)

// RenderPrompt builds the classification prompt from the taxonomy and the
// canonical document. Taxonomy order is preserved.
func RenderPrompt(canonicalText string, taxonomy []models.RequestType) string {
	var bullets strings.Builder
	for i, entry := range taxonomy {
		if i > 0 {
			bullets.WriteString("\n")
		}
		bullets.WriteString(fmt.Sprintf("- %s: %s", entry.Category, entry.SubRequestType))
	}
	return fmt.Sprintf(promptTemplate, bullets.String(), canonicalText)
}

// ExtractJSONFragment returns the first {...} substring of the completion,
// or mailtriage_errors.ErrNoJSONFound when the model produced none.
func ExtractJSONFragment(completion string) (string, error) {
	fragment := jsonFragmentRegex.FindString(completion)
	if fragment == "" {
		return "", mailtriage_errors.ErrNoJSONFound
	}
	return fragment, nil
}

// ParseClassification decodes a JSON fragment into a classification result.
// Missing keys fall back to the sentinel defaults.
func ParseClassification(fragment string) (*dto.ClassificationResult, error) {
	var result dto.ClassificationResult
	if err := json.Unmarshal([]byte(fragment), &result); err != nil {
		return nil, errors.Wrap(mailtriage_errors.ErrNoJSONFound, err.Error())
	}
	result.ApplyDefaults()
	return &result, nil
}
