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
	"ai-task-planner/internal/task"
	taskHTTP "ai-task-planner/internal/task/delivery/http"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
	"ai-task-planner/pkg/taskparser"
)

type mockUseCase struct {
	task.UseCase // unimplemented methods panic

	gotScope  model.Scope
	gotList   task.ListTasksInput
	gotStatus task.UpdateStatusInput
	err       error
}

func (m *mockUseCase) ListTasks(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	m.gotScope, m.gotList = sc, input
	if m.err != nil {
		return task.ListTasksOutput{}, m.err
	}
	return task.ListTasksOutput{
		Tasks: []model.Task{{ID: "t1", Content: "Read", Priority: taskparser.PriorityHigh, Status: taskparser.StatusPending, ListName: "plan"}},
		Total: 11,
		Page:  input.Page,
		Limit: 5,
	}, nil
}

func (m *mockUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (model.Task, error) {
	m.gotStatus = input
	if m.err != nil {
		return model.Task{}, m.err
	}
	return model.Task{ID: input.TaskID, Status: input.Status}, nil
}

func (m *mockUseCase) CreateList(ctx context.Context, sc model.Scope, input task.CreateListInput) (model.List, error) {
	return model.List{ID: "l1", Name: input.Name, Color: input.Color}, m.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T, uc *mockUseCase) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt := scope.New("secret", time.Hour)
	mw := middleware.New(log.NewNop(), jwt, config.CookieConfig{}, config.RateLimitConfig{})

	r := gin.New()
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), taskHTTP.New(log.NewNop(), uc), mw)

	token, err := jwt.CreateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	return r, token
}

func do(r *gin.Engine, token, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestListTasksHandler(t *testing.T) {
	uc := &mockUseCase{}
	r, token := setup(t, uc)

	w, env := do(r, token, http.MethodGet, "/api/v1/tasks?page=2&limit=5&sort_by=time_earliest&due=today", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.gotScope.UserID != "user-1" {
		t.Errorf("expected scope from token, got %+v", uc.gotScope)
	}
	if uc.gotList.SortBy != task.SortTimeEarliest || uc.gotList.Due != "today" || uc.gotList.Page != 2 {
		t.Errorf("unexpected input: %+v", uc.gotList)
	}

	var data struct {
		Tasks      []map[string]any `json:"tasks"`
		Pagination struct {
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Tasks) != 1 || data.Tasks[0]["list_name"] != "plan" {
		t.Errorf("unexpected tasks: %v", data.Tasks)
	}
	if data.Pagination.Total != 11 || data.Pagination.TotalPages != 3 {
		t.Errorf("unexpected pagination: %+v", data.Pagination)
	}
}

func TestListTasksHandler_Errors(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		r, _ := setup(t, &mockUseCase{})
		if w, _ := do(r, "", http.MethodGet, "/api/v1/tasks", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Domain error", func(t *testing.T) {
		r, token := setup(t, &mockUseCase{err: task.ErrInvalidSortBy})
		w, env := do(r, token, http.MethodGet, "/api/v1/tasks?sort_by=x", "")
		if w.Code != http.StatusBadRequest || env.Message != task.ErrInvalidSortBy.Error() {
			t.Errorf("expected 400 %q, got %d %q", task.ErrInvalidSortBy, w.Code, env.Message)
		}
	})

	t.Run("Unknown error", func(t *testing.T) {
		r, token := setup(t, &mockUseCase{err: context.DeadlineExceeded})
		if w, _ := do(r, token, http.MethodGet, "/api/v1/tasks", ""); w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{}
		r, token := setup(t, uc)

		w, _ := do(r, token, http.MethodPatch, "/api/v1/tasks/t9/status", `{"status":"completed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.gotStatus.TaskID != "t9" || uc.gotStatus.Status != taskparser.StatusCompleted {
			t.Errorf("unexpected input: %+v", uc.gotStatus)
		}
	})

	t.Run("Missing body", func(t *testing.T) {
		r, token := setup(t, &mockUseCase{})
		if w, _ := do(r, token, http.MethodPatch, "/api/v1/tasks/t9/status", `{}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Not found", func(t *testing.T) {
		r, token := setup(t, &mockUseCase{err: task.ErrTaskNotFound})
		if w, _ := do(r, token, http.MethodPatch, "/api/v1/tasks/t9/status", `{"status":"paused"}`); w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestCreateListHandler(t *testing.T) {
	r, token := setup(t, &mockUseCase{})

	if w, _ := do(r, token, http.MethodPost, "/api/v1/lists", `{"name":"Go","color":"#10B981"}`); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w, _ := do(r, token, http.MethodPost, "/api/v1/lists", `{"name":"Go","color":"green"}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-hex colour, got %d", w.Code)
	}
}
