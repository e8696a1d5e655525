package usecase_test

import (
	"context"
	"testing"

	"ai-task-planner/internal/conversation"
	"ai-task-planner/internal/conversation/repository"
	"ai-task-planner/internal/conversation/usecase"
	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/log"
)

type mockRepo struct {
	items   map[string]model.Conversation
	listOpt repository.ListOptions
	created repository.CreateOptions
	deleted string
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Conversation, error) {
	m.created = opt
	return model.Conversation{ID: "c-new", Title: opt.Title}, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repository.GetOneOptions) (model.Conversation, error) {
	c, ok := m.items[opt.ID]
	if !ok || c.UserID != opt.UserID {
		return model.Conversation{}, nil
	}
	return c, nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Conversation, int, error) {
	m.listOpt = opt
	return []model.Conversation{{ID: "c1"}}, 21, nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	m.deleted = id
	return nil
}

var sc = model.Scope{UserID: "user-1"}

func TestList(t *testing.T) {
	tests := []struct {
		name       string
		input      conversation.ListInput
		wantLimit  int
		wantOffset int
		wantPages  int
	}{
		{name: "Defaults", input: conversation.ListInput{}, wantLimit: 10, wantOffset: 0, wantPages: 3},
		{name: "Third page", input: conversation.ListInput{Page: 3, Limit: 5}, wantLimit: 5, wantOffset: 10, wantPages: 5},
		{name: "Limit too large", input: conversation.ListInput{Page: 1, Limit: 101}, wantLimit: 10, wantOffset: 0, wantPages: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockRepo{}
			uc := usecase.New(repo, log.NewNop())

			out, err := uc.List(context.Background(), sc, tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.listOpt.Limit != tc.wantLimit || repo.listOpt.Offset != tc.wantOffset || repo.listOpt.UserID != "user-1" {
				t.Errorf("unexpected options: %+v", repo.listOpt)
			}
			if out.TotalPages != tc.wantPages || out.Total != 21 {
				t.Errorf("expected %d pages of 21, got %+v", tc.wantPages, out)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(repo, log.NewNop())

	_, err := uc.Create(context.Background(), sc, conversation.CreateInput{Title: "t", UserInput: "u"})
	if err != conversation.ErrMissingFields {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}

	c, err := uc.Create(context.Background(), sc, conversation.CreateInput{Title: " plan ", UserInput: "u", AIResponse: "a", TaskCount: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "c-new" || repo.created.Title != "plan" || repo.created.UserID != "user-1" {
		t.Errorf("unexpected create: %+v %+v", c, repo.created)
	}
}

func TestDetailAndDelete(t *testing.T) {
	repo := &mockRepo{items: map[string]model.Conversation{
		"c1": {ID: "c1", UserID: "user-1"},
		"c2": {ID: "c2", UserID: "user-2"},
	}}
	uc := usecase.New(repo, log.NewNop())
	ctx := context.Background()

	if _, err := uc.Detail(ctx, sc, "c1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := uc.Detail(ctx, sc, "c2"); err != conversation.ErrConversationNotFound {
		t.Errorf("expected foreign conversation to be not found, got %v", err)
	}
	if err := uc.Delete(ctx, sc, "c2"); err != conversation.ErrConversationNotFound || repo.deleted != "" {
		t.Errorf("expected delete of foreign conversation to be refused, got %v", err)
	}
	if err := uc.Delete(ctx, sc, "c1"); err != nil || repo.deleted != "c1" {
		t.Errorf("expected c1 deleted, got %v", err)
	}
}
