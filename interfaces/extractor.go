package interfaces

// ExtractionResult is the outcome of one attachment extraction. Failures are
// soft: they travel as inert marker text inside the canonical document
// instead of aborting the pipeline.
type ExtractionResult struct {
	Text   string
	Marker string
}

func (r ExtractionResult) IsError() bool {
	return r.Marker != ""
}

// Content returns the text to embed in the canonical document: the extracted
// text, or the error/unsupported marker when extraction failed.
func (r ExtractionResult) Content() string {
	if r.IsError() {
		return r.Marker
	}
	return r.Text
}

// AttachmentExtractor converts one attachment format to plain text.
type AttachmentExtractor interface {
	Extensions() []string
	Extract(filename string, data []byte) ExtractionResult
}

// ExtractorRegistry dispatches extraction by lowercased file extension.
type ExtractorRegistry interface {
	Extract(filename string, data []byte) ExtractionResult
}
