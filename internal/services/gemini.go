package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"ldclash-backend/internal/prompt"
)

// EmptyOutputNotice is returned as a successful payload when the provider
// produced no text at all.
const EmptyOutputNotice = "(no text returned by the model)"

const samplingTemperature = 0.4

// UpstreamError is a completion-provider failure normalized to a
// human-readable message.
type UpstreamError struct {
	Message string
	Timeout bool
}

func (e *UpstreamError) Error() string { return e.Message }

type GeminiService struct {
	client    *genai.Client
	modelName string
	rateChan  chan struct{} // Token bucket
}

func NewGeminiService(apiKey, modelName string, concurrentReqs int) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Token bucket bounding in-flight upstream calls
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		client:    client,
		modelName: modelName,
		rateChan:  rateChan,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Complete sends one composed prompt to Gemini and returns the aggregated
// output text. Exactly one outbound call; no retries, no caching.
func (s *GeminiService) Complete(ctx context.Context, bundle prompt.Bundle, maxTokens int32) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", normalizeUpstreamError(err)
	}
	defer s.releaseRate()

	model := s.client.GenerativeModel(s.modelName)
	model.SetTemperature(samplingTemperature)
	model.SetMaxOutputTokens(maxTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(bundle.Instructions)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(bundle.Input))
	if err != nil {
		return "", normalizeUpstreamError(err)
	}

	text := extractText(resp)
	if text == "" {
		return EmptyOutputNotice, nil
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

// normalizeUpstreamError flattens a provider failure into a single
// human-readable message, trying extraction strategies in a fixed order:
// deadline, the googleapi error message, the unwrapped cause, a JSON dump of
// the error, and finally a literal fallback.
func normalizeUpstreamError(err error) *UpstreamError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &UpstreamError{
			Message: "upstream timeout: the completion provider did not respond in time",
			Timeout: true,
		}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return &UpstreamError{Message: gerr.Message}
	}

	if cause := errors.Unwrap(err); cause != nil && cause.Error() != "" {
		return &UpstreamError{Message: cause.Error()}
	}

	if msg := err.Error(); msg != "" {
		return &UpstreamError{Message: msg}
	}

	if data, jerr := json.Marshal(err); jerr == nil {
		return &UpstreamError{Message: string(data)}
	}

	return &UpstreamError{Message: "non-serializable upstream error"}
}
