package extractor

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/mailtriage/mailtriage/interfaces"
)

type textExtractor struct{}

func NewTextExtractor() interfaces.AttachmentExtractor {
	return &textExtractor{}
}

func (e *textExtractor) Extensions() []string {
	return []string{".txt"}
}

func (e *textExtractor) Extract(filename string, data []byte) interfaces.ExtractionResult {
	if !utf8.Valid(data) {
		return errorMarker("TXT file", errors.New("content is not valid UTF-8"))
	}
	return interfaces.ExtractionResult{Text: strings.TrimSpace(string(data))}
}
