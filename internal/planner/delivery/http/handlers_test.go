package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ai-task-planner/config"
	"ai-task-planner/internal/middleware"
	"ai-task-planner/internal/model"
	"ai-task-planner/internal/planner"
	plannerHTTP "ai-task-planner/internal/planner/delivery/http"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
	"ai-task-planner/pkg/taskparser"
)

type mockUseCase struct {
	gotChat   planner.ChatInput
	gotImport planner.ImportInput
	chatErr   error
	importErr error
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input planner.ChatInput) (planner.ChatOutput, error) {
	m.gotChat = input
	if m.chatErr != nil {
		return planner.ChatOutput{}, m.chatErr
	}
	return planner.ChatOutput{
		Reply:    "1. **Read** - chapter one",
		Provider: "deepseek",
		Preview: planner.Preview{
			ListName:   "Reading",
			Tasks:      []taskparser.ParsedTask{{Content: "Read - chapter one", Priority: taskparser.PriorityMedium}},
			Validation: taskparser.ValidationResult{Valid: true},
		},
	}, nil
}

func (m *mockUseCase) Preview(ctx context.Context, sc model.Scope, input planner.PreviewInput) (planner.Preview, error) {
	return planner.Preview{
		ListName:   taskparser.DefaultListName,
		Validation: taskparser.ValidationResult{Errors: []string{taskparser.ErrMsgNoTasks}},
	}, nil
}

func (m *mockUseCase) Import(ctx context.Context, sc model.Scope, input planner.ImportInput) (planner.ImportOutput, error) {
	m.gotImport = input
	if m.importErr != nil {
		return planner.ImportOutput{}, m.importErr
	}
	return planner.ImportOutput{
		CreateListWithTasksOutput: task.CreateListWithTasksOutput{ListID: "l1", ListName: "Reading", TaskCount: 1},
		CalendarEvents:            1,
	}, nil
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    []string        `json:"errors"`
}

func setup(t *testing.T, uc *mockUseCase, chatPerMin int) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt := scope.New("secret", time.Hour)
	mw := middleware.New(log.NewNop(), jwt, config.CookieConfig{}, config.RateLimitConfig{ChatPerMin: chatPerMin})

	r := gin.New()
	plannerHTTP.RegisterRoutes(r.Group("/api/v1"), plannerHTTP.New(log.NewNop(), uc), mw)

	token, err := jwt.CreateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	return r, token
}

func post(r *gin.Engine, token, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestChatHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
	}{
		{name: "ok", body: `{"messages":[{"role":"user","content":"plan my reading"}]}`, wantCode: http.StatusOK},
		{name: "no messages", body: `{"messages":[]}`, wantCode: http.StatusBadRequest},
		{name: "unknown role", body: `{"messages":[{"role":"system","content":"x"}]}`, wantCode: http.StatusBadRequest},
		{name: "not configured", body: `{"messages":[{"role":"user","content":"x"}]}`, ucErr: planner.ErrAssistantUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "provider down", body: `{"messages":[{"role":"user","content":"x"}]}`, ucErr: planner.ErrAssistantFailed, wantCode: http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{chatErr: tc.ucErr}
			r, token := setup(t, uc, 600)

			w, env := post(r, token, "/api/v1/planner/chat", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
			if tc.wantCode != http.StatusOK {
				return
			}

			var data struct {
				Reply   string `json:"reply"`
				Preview struct {
					ListName string           `json:"list_name"`
					Tasks    []map[string]any `json:"tasks"`
					Valid    bool             `json:"valid"`
				} `json:"preview"`
			}
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if data.Preview.ListName != "Reading" || len(data.Preview.Tasks) != 1 || !data.Preview.Valid {
				t.Errorf("unexpected preview: %+v", data.Preview)
			}
			if uc.gotChat.Messages[0].Content != "plan my reading" {
				t.Errorf("unexpected input: %+v", uc.gotChat)
			}
		})
	}
}

func TestChatRateLimited(t *testing.T) {
	r, token := setup(t, &mockUseCase{}, 10)
	body := `{"messages":[{"role":"user","content":"x"}]}`

	if w, _ := post(r, token, "/api/v1/planner/chat", body); w.Code != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d", w.Code)
	}
	if w, _ := post(r, token, "/api/v1/planner/chat", body); w.Code != http.StatusTooManyRequests {
		t.Errorf("second call: expected 429, got %d", w.Code)
	}
}

func TestPreviewHandler(t *testing.T) {
	r, token := setup(t, &mockUseCase{}, 0)

	w, env := post(r, token, "/api/v1/planner/preview", `{"ai_response":"nothing"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data struct {
		Tasks  []any    `json:"tasks"`
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Valid || data.Tasks == nil || len(data.Errors) != 1 {
		t.Errorf("unexpected preview: %+v", data)
	}
}

func TestImportHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &mockUseCase{}
		r, token := setup(t, uc, 0)

		w, env := post(r, token, "/api/v1/planner/import", `{"ai_response":"x","list_color":"#FF0000","sync_calendar":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !uc.gotImport.SyncCalendar || uc.gotImport.ListColor != "#FF0000" {
			t.Errorf("unexpected input: %+v", uc.gotImport)
		}
		var data map[string]any
		_ = json.Unmarshal(env.Data, &data)
		if data["list_id"] != "l1" || data["calendar_events"] != float64(1) {
			t.Errorf("unexpected data: %v", data)
		}
	})

	t.Run("bad color", func(t *testing.T) {
		r, token := setup(t, &mockUseCase{}, 0)
		if w, _ := post(r, token, "/api/v1/planner/import", `{"ai_response":"x","list_color":"red"}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		uc := &mockUseCase{importErr: &planner.ValidationError{Errors: []string{"task 2 content is empty"}}}
		r, token := setup(t, uc, 0)

		w, env := post(r, token, "/api/v1/planner/import", `{"ai_response":"x"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if len(env.Errors) != 1 || env.Errors[0] != "task 2 content is empty" {
			t.Errorf("unexpected errors: %v", env.Errors)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		uc := &mockUseCase{importErr: task.ErrCreateListFailed}
		r, token := setup(t, uc, 0)

		w, env := post(r, token, "/api/v1/planner/import", `{"ai_response":"x"}`)
		if w.Code != http.StatusInternalServerError || env.Message != task.ErrCreateListFailed.Error() {
			t.Errorf("unexpected response: %d %q", w.Code, env.Message)
		}
	})
}
