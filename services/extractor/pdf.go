package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mailtriage/mailtriage/interfaces"
)

type pdfExtractor struct{}

func NewPDFExtractor() interfaces.AttachmentExtractor {
	return &pdfExtractor{}
}

func (e *pdfExtractor) Extensions() []string {
	return []string{".pdf"}
}

// Extract concatenates per-page text in page order.
func (e *pdfExtractor) Extract(filename string, data []byte) (result interfaces.ExtractionResult) {
	// The pdf library panics on some corrupt inputs
	defer func() {
		if r := recover(); r != nil {
			result = errorMarker("PDF", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return errorMarker("PDF", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return errorMarker("PDF", err)
		}
		pages = append(pages, text)
	}

	return interfaces.ExtractionResult{Text: strings.Join(pages, "\n")}
}
