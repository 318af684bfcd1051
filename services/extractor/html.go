package extractor

import (
	"strings"

	"github.com/jaytaylor/html2text"

	"github.com/mailtriage/mailtriage/interfaces"
)

type htmlExtractor struct{}

func NewHTMLExtractor() interfaces.AttachmentExtractor {
	return &htmlExtractor{}
}

func (e *htmlExtractor) Extensions() []string {
	return []string{".html", ".htm"}
}

func (e *htmlExtractor) Extract(filename string, data []byte) interfaces.ExtractionResult {
	text, err := html2text.FromString(string(data), html2text.Options{TextOnly: true})
	if err != nil {
		return errorMarker("HTML file", err)
	}
	return interfaces.ExtractionResult{Text: strings.TrimSpace(text)}
}
