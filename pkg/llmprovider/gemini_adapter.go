package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ai-task-planner/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	greq := &gemini.Request{Contents: make([]gemini.Content, 0, len(req.Messages))}
	if req.SystemInstruction != "" {
		greq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.SystemInstruction}}}
	}
	for _, m := range req.Messages {
		role := gemini.RoleUser
		if m.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		greq.Contents = append(greq.Contents, gemini.Content{Role: role, Parts: []gemini.Part{{Text: m.Content}}})
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		greq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, greq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: classifyGemini(err)}
	}

	model := resp.ModelVersion
	if model == "" {
		model = a.client.Model()
	}
	return &Response{
		Content:      resp.Text(),
		ProviderName: a.Name(),
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func classifyGemini(err error) error {
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	return err
}
