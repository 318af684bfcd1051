package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/mailtriage/mailtriage/interfaces"
)

type docxExtractor struct{}

func NewDocxExtractor() interfaces.AttachmentExtractor {
	return &docxExtractor{}
}

func (e *docxExtractor) Extensions() []string {
	return []string{".docx"}
}

// Extract concatenates paragraph text in document order.
func (e *docxExtractor) Extract(filename string, data []byte) (result interfaces.ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = errorMarker("DOCX file", fmt.Errorf("%v", r))
		}
	}()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return errorMarker("DOCX file", err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if paragraph, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, paragraph.String())
		}
	}

	return interfaces.ExtractionResult{Text: strings.Join(paragraphs, "\n")}
}
