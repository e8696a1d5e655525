package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/planner"
	"ai-task-planner/pkg/llmprovider"
)

// Chat sends the conversation to the assistant and previews the tasks in its reply.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input planner.ChatInput) (planner.ChatOutput, error) {
	if uc.llm == nil {
		return planner.ChatOutput{}, planner.ErrAssistantUnavailable
	}

	msgs, err := buildMessages(input.Messages)
	if err != nil {
		return planner.ChatOutput{}, err
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemPrompt + uc.timeContext(),
		Messages:          msgs,
		Temperature:       uc.cfg.Temperature,
		MaxTokens:         uc.cfg.MaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat GenerateContent: user=%s %v", sc.UserID, err)
		return planner.ChatOutput{}, planner.ErrAssistantFailed
	}

	return planner.ChatOutput{
		Reply:    resp.Content,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
		Preview:  uc.preview(resp.Content),
	}, nil
}

func buildMessages(in []planner.Message) ([]llmprovider.Message, error) {
	if len(in) > planner.MaxHistoryMessages {
		in = in[len(in)-planner.MaxHistoryMessages:]
	}

	msgs := make([]llmprovider.Message, 0, len(in))
	for _, m := range in {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		var role string
		switch m.Role {
		case planner.RoleUser:
			role = llmprovider.RoleUser
		case planner.RoleAssistant:
			role = llmprovider.RoleAssistant
		default:
			return nil, planner.ErrInvalidRole
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Content: content})
	}

	if len(msgs) == 0 {
		return nil, planner.ErrEmptyMessages
	}
	if msgs[len(msgs)-1].Role != llmprovider.RoleUser {
		return nil, planner.ErrLastMessageNotUser
	}
	return msgs, nil
}

func (uc *implUseCase) timeContext() string {
	loc := uc.dateMath.Location()
	today := uc.now().In(loc)
	return fmt.Sprintf(timeContextTemplate,
		today.Format(dateFormatISO),
		today.Weekday().String(),
		today.AddDate(0, 0, 1).Format(dateFormatISO),
		loc.String(),
	)
}
