package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ai-task-planner/pkg/deepseek"
)

// ChatCompletionAdapter adapts an OpenAI-compatible client (pkg/deepseek) to Provider.
type ChatCompletionAdapter struct {
	name   string
	client deepseek.IDeepSeek
}

func NewChatCompletionAdapter(name string, client deepseek.IDeepSeek) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{name: name, client: client}
}

func (a *ChatCompletionAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	messages := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, deepseek.Message{Role: deepseek.RoleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		messages = append(messages, deepseek.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: classify(err)}
	}

	return &Response{
		Content:      resp.Choices[0].Message.Content,
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *ChatCompletionAdapter) Name() string {
	return a.name
}

func (a *ChatCompletionAdapter) Model() string {
	return a.client.Model()
}

// classify maps transport failures to the package sentinels.
func classify(err error) error {
	var apiErr *deepseek.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	return err
}
