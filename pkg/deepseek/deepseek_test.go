package deepseek_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-task-planner/pkg/deepseek"
)

func TestNew(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}

	c, err := deepseek.New(deepseek.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != deepseek.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var got deepseek.Request
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer test-key" {
				t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
			}
			json.NewDecoder(r.Body).Decode(&got)
			json.NewEncoder(w).Encode(deepseek.Response{
				Model: "deepseek-chat",
				Choices: []deepseek.Choice{{
					Message: deepseek.Message{Role: deepseek.RoleAssistant, Content: "1. **Plan** - write it down"},
				}},
				Usage: deepseek.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			})
		}))
		defer srv.Close()

		c, _ := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: srv.URL + "/"})
		resp, err := c.GenerateContent(context.Background(), &deepseek.Request{
			Messages:    []deepseek.Message{{Role: deepseek.RoleUser, Content: "help"}},
			Temperature: 0.7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Model != deepseek.DefaultModel || got.Temperature != 0.7 || got.Stream {
			t.Errorf("unexpected request body: %+v", got)
		}
		if resp.Choices[0].Message.Content != "1. **Plan** - write it down" {
			t.Errorf("unexpected content %q", resp.Choices[0].Message.Content)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage %+v", resp.Usage)
		}
	})

	t.Run("API error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
		}))
		defer srv.Close()

		c, _ := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: srv.URL})
		_, err := c.GenerateContent(context.Background(), &deepseek.Request{})

		var apiErr *deepseek.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Message != "rate limited" {
			t.Errorf("unexpected error %+v", apiErr)
		}
	})

	t.Run("No choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		c, _ := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: srv.URL})
		if _, err := c.GenerateContent(context.Background(), &deepseek.Request{}); err == nil {
			t.Error("expected error for empty choices")
		}
	})
}
