package dto

// Sentinel values substituted when the model omits a key.
const (
	UnknownRequestType = "Unknown"
	NoSummaryProvided  = "No summary provided"
)

// ClassificationResult is the structured outcome parsed from the model
// completion. Missing keys carry the sentinel defaults.
type ClassificationResult struct {
	RequestType    string `json:"request_type"`
	SubRequestType string `json:"sub_request_type"`
	Summary        string `json:"summary"`
}

func (r *ClassificationResult) ApplyDefaults() {
	if r.RequestType == "" {
		r.RequestType = UnknownRequestType
	}
	if r.SubRequestType == "" {
		r.SubRequestType = UnknownRequestType
	}
	if r.Summary == "" {
		r.Summary = NoSummaryProvided
	}
}
