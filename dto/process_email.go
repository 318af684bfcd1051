package dto

// ProcessEmailResponse is returned for a freshly classified email.
type ProcessEmailResponse struct {
	Sender         string `json:"sender"`
	Subject        string `json:"subject"`
	RequestType    string `json:"request_type"`
	SubRequestType string `json:"sub_request_type"`
	Summary        string `json:"summary"`
}

// DuplicateEmailResponse is returned when the fingerprint was seen before.
// The previous classification is replayed; no model call is made.
type DuplicateEmailResponse struct {
	Message       string               `json:"message"`
	PreviousEmail ProcessEmailResponse `json:"previous_email"`
}

const DuplicateEmailMessage = "Duplicate email detected."

// AddRequestTypeRequest is the taxonomy-append payload.
type AddRequestTypeRequest struct {
	Category    string `json:"category"`
	RequestType string `json:"request_type"`
}

// RequestTypeEntry is one taxonomy entry as exposed over the API.
type RequestTypeEntry struct {
	Category       string `json:"category"`
	SubRequestType string `json:"sub_request_type"`
}
