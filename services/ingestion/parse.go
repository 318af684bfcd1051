package ingestion

import (
	"bytes"
	"strings"

	"github.com/customeros/mailsherpa/mailvalidate"
	"github.com/jhillyerd/enmime"
	"github.com/pkg/errors"

	mailtriage_errors "github.com/mailtriage/mailtriage/errors"
)

// ParsedEmail is the normalized view of one raw RFC 5322 message.
type ParsedEmail struct {
	Sender      string
	Subject     string
	BodyText    string
	Attachments []Attachment
}

// Attachment keeps the attachment content in original message order.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ParseRawMessage parses raw message bytes with enmime. A message that cannot
// be parsed or carries no plain-text body is a client error; nothing about it
// is recoverable downstream.
func ParseRawMessage(raw []byte) (*ParsedEmail, error) {
	envelope, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(mailtriage_errors.ErrInvalidInput, err.Error())
	}

	bodyText := envelope.Text
	if strings.TrimSpace(bodyText) == "" {
		return nil, mailtriage_errors.ErrNoPlainTextBody
	}

	subject := envelope.GetHeader("Subject")
	if subject == "" {
		subject = "No Subject"
	}

	sender := envelope.GetHeader("From")
	if sender == "" {
		sender = "Unknown Sender"
	} else {
		syntaxValidation := mailvalidate.ValidateEmailSyntax(sender)
		if syntaxValidation.IsValid {
			sender = syntaxValidation.CleanEmail
		}
	}

	parsed := &ParsedEmail{
		Sender:   sender,
		Subject:  subject,
		BodyText: bodyText,
	}

	for _, part := range envelope.Attachments {
		if part.FileName == "" {
			continue
		}
		parsed.Attachments = append(parsed.Attachments, Attachment{
			Filename:    part.FileName,
			ContentType: part.ContentType,
			Data:        part.Content,
		})
	}

	return parsed, nil
}
