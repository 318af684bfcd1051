package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/mailtriage/mailtriage/dto"
	mailtriage_errors "github.com/mailtriage/mailtriage/errors"
	"github.com/mailtriage/mailtriage/interfaces"
	internal_config "github.com/mailtriage/mailtriage/internal/config"
	"github.com/mailtriage/mailtriage/internal/models"
	"github.com/mailtriage/mailtriage/internal/tracing"
)

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type inferenceResponse struct {
	GeneratedText string `json:"generated_text"`
}

type aiService struct {
	config     *internal_config.InferenceConfig
	httpClient *http.Client
}

func NewAIService(config *internal_config.InferenceConfig) interfaces.AIService {
	return &aiService{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}
}

func (s *aiService) Classify(ctx context.Context, canonicalText string, taxonomy []models.RequestType) (*dto.ClassificationResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "aiService.Classify")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	prompt := RenderPrompt(canonicalText, taxonomy)

	completion, err := s.complete(ctx, prompt)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	fragment, err := ExtractJSONFragment(completion)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	result, err := ParseClassification(fragment)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	tracing.LogObjectAsJson(span, "classification", result)

	return result, nil
}

// complete makes one synchronous text-completion call. This is the only
// long-latency suspension point of the pipeline; the caller must not hold
// any store lock while it is in flight.
func (s *aiService) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(inferenceRequest{Inputs: prompt})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.Url, bytes.NewBuffer(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", "Bearer "+s.config.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(mailtriage_errors.ErrClassificationUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(mailtriage_errors.ErrClassificationUnavailable, "unable to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Wrapf(mailtriage_errors.ErrClassificationUnavailable, "request failed with status code %d: %s", resp.StatusCode, string(body))
	}

	var response []inferenceResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errors.Wrap(mailtriage_errors.ErrClassificationUnavailable, "failed to unmarshal response")
	}
	if len(response) == 0 {
		return "", errors.Wrap(mailtriage_errors.ErrClassificationUnavailable, "empty response")
	}

	return response[0].GeneratedText, nil
}
