package extractor

import (
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/mailtriage/mailtriage/interfaces"
)

type imageExtractor struct{}

func NewImageExtractor() interfaces.AttachmentExtractor {
	return &imageExtractor{}
}

func (e *imageExtractor) Extensions() []string {
	return []string{".png", ".jpg", ".jpeg"}
}

// Extract runs OCR over the image and trims surrounding whitespace.
func (e *imageExtractor) Extract(filename string, data []byte) interfaces.ExtractionResult {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return errorMarker("image", err)
	}

	text, err := client.Text()
	if err != nil {
		return errorMarker("image", err)
	}

	return interfaces.ExtractionResult{Text: strings.TrimSpace(text)}
}
