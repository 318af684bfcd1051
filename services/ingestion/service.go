package ingestion

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/mailtriage/mailtriage/dto"
	mailtriage_errors "github.com/mailtriage/mailtriage/errors"
	"github.com/mailtriage/mailtriage/interfaces"
	"github.com/mailtriage/mailtriage/internal/logger"
	"github.com/mailtriage/mailtriage/internal/models"
	"github.com/mailtriage/mailtriage/internal/tracing"
)

// IngestResult is the pipeline outcome: either a fresh classification or a
// replay of the stored one when the fingerprint was seen before.
type IngestResult struct {
	Duplicate bool
	Email     dto.ProcessEmailResponse
}

type Service struct {
	log             logger.Logger
	emailRepo       interfaces.EmailRepository
	requestTypeRepo interfaces.RequestTypeRepository
	extractors      interfaces.ExtractorRegistry
	aiService       interfaces.AIService
	storage         interfaces.StorageService
	publisher       interfaces.EventPublisher
}

func NewService(
	log logger.Logger,
	emailRepo interfaces.EmailRepository,
	requestTypeRepo interfaces.RequestTypeRepository,
	extractors interfaces.ExtractorRegistry,
	aiService interfaces.AIService,
	storage interfaces.StorageService,
	publisher interfaces.EventPublisher,
) *Service {
	return &Service{
		log:             log,
		emailRepo:       emailRepo,
		requestTypeRepo: requestTypeRepo,
		extractors:      extractors,
		aiService:       aiService,
		storage:         storage,
		publisher:       publisher,
	}
}

// ProcessEmail runs the full pipeline for one uploaded .eml file:
// parse, store attachments, extract, normalize, fingerprint, dedupe,
// classify, persist.
func (s *Service) ProcessEmail(ctx context.Context, filename string, raw []byte) (*IngestResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ingestionService.ProcessEmail")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	if !strings.HasSuffix(strings.ToLower(filename), ".eml") {
		return nil, errors.Wrap(mailtriage_errors.ErrInvalidInput, "invalid file type, please upload a .eml file")
	}

	parsed, err := ParseRawMessage(raw)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	// Attachment keys are namespaced per request so concurrent uploads with
	// identical filenames cannot clobber each other
	requestID := uuid.NewString()
	tracing.TagRequestID(span, requestID)

	attachmentPaths, attachmentTexts, err := s.storeAndExtractAttachments(ctx, requestID, parsed.Attachments)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	canonical := BuildCanonicalDocument(parsed.BodyText, attachmentTexts)
	fingerprint := Fingerprint(canonical)
	span.SetTag("fingerprint", fingerprint)

	existing, err := s.emailRepo.GetByFingerprint(ctx, fingerprint)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if existing != nil {
		// Short-circuit: replay the stored classification, skip the paid
		// inference call entirely
		span.SetTag("duplicate", true)
		s.log.Infof("duplicate email detected for fingerprint %s", fingerprint)
		return &IngestResult{
			Duplicate: true,
			Email: dto.ProcessEmailResponse{
				Sender:         existing.Sender,
				Subject:        existing.Subject,
				RequestType:    existing.RequestType,
				SubRequestType: existing.SubRequestType,
				Summary:        existing.Summary,
			},
		}, nil
	}

	taxonomy, err := s.requestTypeRepo.List(ctx)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	// The only long-latency suspension point; no store lock is held here.
	// On any classification failure nothing is persisted.
	classification, err := s.aiService.Classify(ctx, canonical, taxonomy)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	email := &models.ProcessedEmail{
		Sender:          parsed.Sender,
		Subject:         parsed.Subject,
		BodyText:        parsed.BodyText,
		AttachmentPaths: pq.StringArray(attachmentPaths),
		Fingerprint:     fingerprint,
		RequestType:     classification.RequestType,
		SubRequestType:  classification.SubRequestType,
		Summary:         classification.Summary,
	}

	inserted, err := s.emailRepo.InsertIfAbsent(ctx, email)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if !inserted {
		// Lost the race to an identical concurrent request; first writer
		// wins and the conflict is not an error
		span.SetTag("insert_conflict", true)
	} else if pubErr := s.publisher.PublishEmailProcessed(ctx, email.ID, fingerprint); pubErr != nil {
		// Event delivery is best effort
		tracing.TraceErr(span, pubErr)
		s.log.Warnf("failed to publish email.processed event: %v", pubErr)
	}

	return &IngestResult{
		Email: dto.ProcessEmailResponse{
			Sender:         parsed.Sender,
			Subject:        parsed.Subject,
			RequestType:    classification.RequestType,
			SubRequestType: classification.SubRequestType,
			Summary:        classification.Summary,
		},
	}, nil
}

// storeAndExtractAttachments uploads each attachment under the request
// namespace and extracts its text. Extraction failures become inert marker
// text; storage failures abort the request.
func (s *Service) storeAndExtractAttachments(ctx context.Context, requestID string, attachments []Attachment) ([]string, []string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ingestionService.storeAndExtractAttachments")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	var paths []string
	var texts []string

	for _, attachment := range attachments {
		key := requestID + "/" + attachment.Filename

		if err := s.storage.Upload(ctx, key, attachment.Data, attachment.ContentType); err != nil {
			tracing.TraceErr(span, err)
			return nil, nil, errors.Wrapf(err, "failed to store attachment %s", attachment.Filename)
		}
		paths = append(paths, key)

		result := s.extractors.Extract(attachment.Filename, attachment.Data)
		if result.IsError() {
			span.LogKV("attachment", attachment.Filename, "extraction_marker", result.Marker)
			s.log.Warnf("attachment extraction degraded for %s: %s", attachment.Filename, result.Marker)
		}
		texts = append(texts, result.Content())
	}

	return paths, texts, nil
}
