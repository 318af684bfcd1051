package ingestion

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailtriage/mailtriage/dto"
	mailtriage_errors "github.com/mailtriage/mailtriage/errors"
	"github.com/mailtriage/mailtriage/internal/logger"
	"github.com/mailtriage/mailtriage/internal/models"
	"github.com/mailtriage/mailtriage/services/extractor"
)

type fakeEmailRepo struct {
	byFingerprint map[string]*models.ProcessedEmail
	insertCalls   int
}

func newFakeEmailRepo() *fakeEmailRepo {
	return &fakeEmailRepo{byFingerprint: make(map[string]*models.ProcessedEmail)}
}

func (r *fakeEmailRepo) GetByFingerprint(ctx context.Context, fingerprint string) (*models.ProcessedEmail, error) {
	return r.byFingerprint[fingerprint], nil
}

func (r *fakeEmailRepo) InsertIfAbsent(ctx context.Context, email *models.ProcessedEmail) (bool, error) {
	r.insertCalls++
	if _, ok := r.byFingerprint[email.Fingerprint]; ok {
		return false, nil
	}
	if email.ID == "" {
		email.ID = "email_test"
	}
	r.byFingerprint[email.Fingerprint] = email
	return true, nil
}

type fakeRequestTypeRepo struct {
	entries []models.RequestType
}

func (r *fakeRequestTypeRepo) List(ctx context.Context) ([]models.RequestType, error) {
	return r.entries, nil
}

func (r *fakeRequestTypeRepo) Append(ctx context.Context, category, subRequestType string) (*models.RequestType, error) {
	entry := models.RequestType{Category: category, SubRequestType: subRequestType}
	r.entries = append(r.entries, entry)
	return &entry, nil
}

func (r *fakeRequestTypeRepo) EnsureSeed(ctx context.Context) error {
	return nil
}

type fakeAIService struct {
	calls  int
	result *dto.ClassificationResult
	err    error
}

func (s *fakeAIService) Classify(ctx context.Context, canonicalText string, taxonomy []models.RequestType) (*dto.ClassificationResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	s.objects[key] = data
	return nil
}

func (s *fakeStorage) Download(ctx context.Context, key string) ([]byte, error) {
	return s.objects[key], nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

type fakePublisher struct {
	published []string
}

func (p *fakePublisher) PublishEmailProcessed(ctx context.Context, emailID, fingerprint string) error {
	p.published = append(p.published, fingerprint)
	return nil
}

func (p *fakePublisher) Close() error {
	return nil
}

func testLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{DevMode: true})
	appLogger.InitLogger()
	return appLogger
}

type pipelineFixture struct {
	service   *Service
	emailRepo *fakeEmailRepo
	aiService *fakeAIService
	storage   *fakeStorage
	publisher *fakePublisher
}

func newPipelineFixture(ai *fakeAIService) *pipelineFixture {
	emailRepo := newFakeEmailRepo()
	requestTypeRepo := &fakeRequestTypeRepo{entries: models.SeedRequestTypes()}
	storage := newFakeStorage()
	publisher := &fakePublisher{}

	service := NewService(
		testLogger(),
		emailRepo,
		requestTypeRepo,
		extractor.NewDefaultRegistry(),
		ai,
		storage,
		publisher,
	)

	return &pipelineFixture{
		service:   service,
		emailRepo: emailRepo,
		aiService: ai,
		storage:   storage,
		publisher: publisher,
	}
}

func TestProcessEmail_ClassifiesAndPersists(t *testing.T) {
	// Arrange
	f := newPipelineFixture(&fakeAIService{result: &dto.ClassificationResult{
		RequestType:    "Account Management",
		SubRequestType: "Close Account",
		Summary:        "Customer requests account closure",
	}})
	raw := simpleMessage("Please close my account", "Please close my account")

	// Act
	result, err := f.service.ProcessEmail(context.Background(), "mail.eml", raw)

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	assert.Equal(t, "jane.doe@example.com", result.Email.Sender)
	assert.Equal(t, "Please close my account", result.Email.Subject)
	assert.Equal(t, "Account Management", result.Email.RequestType)
	assert.Equal(t, "Close Account", result.Email.SubRequestType)
	assert.Equal(t, "Customer requests account closure", result.Email.Summary)
	assert.Equal(t, 1, f.emailRepo.insertCalls)
	assert.Len(t, f.publisher.published, 1)
}

func TestProcessEmail_DuplicateShortCircuits(t *testing.T) {
	// Arrange
	f := newPipelineFixture(&fakeAIService{result: &dto.ClassificationResult{
		RequestType:    "Account Management",
		SubRequestType: "Close Account",
		Summary:        "Customer requests account closure",
	}})
	raw := simpleMessage("Please close my account", "Please close my account")

	first, err := f.service.ProcessEmail(context.Background(), "mail.eml", raw)
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	// Act: identical content a second time
	second, err := f.service.ProcessEmail(context.Background(), "mail.eml", raw)

	// Assert: stored classification replayed, no second model call, one row
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.Email, second.Email)
	assert.Equal(t, 1, f.aiService.calls)
	assert.Equal(t, 1, f.emailRepo.insertCalls)
	assert.Len(t, f.emailRepo.byFingerprint, 1)
}

func TestProcessEmail_ClassificationUnavailableNothingPersisted(t *testing.T) {
	f := newPipelineFixture(&fakeAIService{err: mailtriage_errors.ErrClassificationUnavailable})
	raw := simpleMessage("help", "please help")

	_, err := f.service.ProcessEmail(context.Background(), "mail.eml", raw)

	assert.ErrorIs(t, err, mailtriage_errors.ErrClassificationUnavailable)
	assert.Equal(t, 0, f.emailRepo.insertCalls)
	assert.Empty(t, f.emailRepo.byFingerprint)
}

func TestProcessEmail_NoJSONFoundNothingPersisted(t *testing.T) {
	f := newPipelineFixture(&fakeAIService{err: mailtriage_errors.ErrNoJSONFound})
	raw := simpleMessage("help", "please help")

	_, err := f.service.ProcessEmail(context.Background(), "mail.eml", raw)

	assert.ErrorIs(t, err, mailtriage_errors.ErrNoJSONFound)
	assert.Equal(t, 0, f.emailRepo.insertCalls)
}

func TestProcessEmail_RejectsNonEmlUpload(t *testing.T) {
	f := newPipelineFixture(&fakeAIService{})

	_, err := f.service.ProcessEmail(context.Background(), "mail.txt", []byte("whatever"))

	assert.ErrorIs(t, err, mailtriage_errors.ErrInvalidInput)
	assert.Equal(t, 0, f.aiService.calls)
}

func TestProcessEmail_CorruptAttachmentDegradesToMarker(t *testing.T) {
	// Arrange: a .pdf attachment whose bytes are not a PDF
	f := newPipelineFixture(&fakeAIService{result: &dto.ClassificationResult{
		RequestType:    "Transaction Issues",
		SubRequestType: "Failed Transaction",
		Summary:        "Failed payment with attachment",
	}})
	raw := messageWithAttachment("my payment failed", "receipt.pdf", "this is not a pdf")

	// Act
	result, err := f.service.ProcessEmail(context.Background(), "mail.eml", raw)

	// Assert: pipeline still classified and persisted
	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	assert.Equal(t, 1, f.aiService.calls)
	assert.Equal(t, 1, f.emailRepo.insertCalls)

	// the attachment was stored under a request namespace
	keys, err := f.storage.ListKeys(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.True(t, strings.HasSuffix(keys[0], "/receipt.pdf"))

	for _, email := range f.emailRepo.byFingerprint {
		require.Len(t, email.AttachmentPaths, 1)
	}
}

func TestProcessEmail_AttachmentNamespacesDiffer(t *testing.T) {
	// Two different emails carrying the same attachment filename must not
	// collide in storage
	f := newPipelineFixture(&fakeAIService{result: &dto.ClassificationResult{
		RequestType:    "Transaction Issues",
		SubRequestType: "Failed Transaction",
		Summary:        "summary",
	}})

	_, err := f.service.ProcessEmail(context.Background(), "a.eml", messageWithAttachment("first email", "doc.txt", "first"))
	require.NoError(t, err)
	_, err = f.service.ProcessEmail(context.Background(), "b.eml", messageWithAttachment("second email", "doc.txt", "second"))
	require.NoError(t, err)

	keys, err := f.storage.ListKeys(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}
