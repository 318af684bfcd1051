package extractor

import (
	"fmt"

	"github.com/mailtriage/mailtriage/interfaces"
	"github.com/mailtriage/mailtriage/internal/utils"
)

// registry dispatches attachment extraction by lowercased file extension.
// Unknown extensions resolve to an inert unsupported-type marker so a single
// odd attachment never aborts ingestion.
type registry struct {
	byExtension map[string]interfaces.AttachmentExtractor
}

func NewRegistry(extractors ...interfaces.AttachmentExtractor) interfaces.ExtractorRegistry {
	r := &registry{
		byExtension: make(map[string]interfaces.AttachmentExtractor),
	}
	for _, e := range extractors {
		for _, ext := range e.Extensions() {
			r.byExtension[ext] = e
		}
	}
	return r
}

// NewDefaultRegistry wires every supported format.
func NewDefaultRegistry() interfaces.ExtractorRegistry {
	return NewRegistry(
		NewPDFExtractor(),
		NewTextExtractor(),
		NewDocxExtractor(),
		NewImageExtractor(),
		NewHTMLExtractor(),
	)
}

func (r *registry) Extract(filename string, data []byte) interfaces.ExtractionResult {
	ext := utils.FileExtension(filename)
	e, ok := r.byExtension[ext]
	if !ok {
		return interfaces.ExtractionResult{
			Marker: fmt.Sprintf("[Unsupported file type: %s]", ext),
		}
	}
	return e.Extract(filename, data)
}

func errorMarker(format string, err error) interfaces.ExtractionResult {
	return interfaces.ExtractionResult{
		Marker: fmt.Sprintf("[Error reading %s: %v]", format, err),
	}
}
