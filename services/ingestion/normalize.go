package ingestion

import "strings"

const (
	canonicalBodyHeader        = "Email Body:\n"
	canonicalAttachmentsHeader = "\n\nAttachments:\n"
	canonicalAttachmentJoiner  = "\n\n"
)

// BuildCanonicalDocument combines the body and attachment texts into the
// canonical document the fingerprint is computed over. The delimiter scheme
// is fixed: changing it (or the attachment order) changes the fingerprint of
// previously seen content.
func BuildCanonicalDocument(bodyText string, attachmentTexts []string) string {
	var b strings.Builder
	b.WriteString(canonicalBodyHeader)
	b.WriteString(bodyText)
	b.WriteString(canonicalAttachmentsHeader)
	b.WriteString(strings.Join(attachmentTexts, canonicalAttachmentJoiner))
	return b.String()
}
