package postgre_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"ai-task-planner/internal/migration"
	"ai-task-planner/internal/task"
	"ai-task-planner/internal/task/repository"
	"ai-task-planner/internal/task/repository/postgre"
	"ai-task-planner/pkg/database"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/taskparser"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.Config{Driver: database.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := database.Migrate(ctx, db, migration.All()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	now := time.Now().UTC()
	for _, id := range []string{"user-1", "user-2"} {
		_, err := db.ExecContext(ctx,
			`INSERT INTO users (id, email, name, password_hash, created_at, updated_at) VALUES ($1, $2, $3, 'x', $4, $4)`,
			id, id+"@example.com", id, now)
		if err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	return db
}

func hours(h float64) *float64 { return &h }

func TestCreateListWithTasks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	r := postgre.New(db, log.NewNop())

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	expires := start.Add(2 * time.Hour)

	list, tasks, err := r.CreateListWithTasks(ctx,
		repository.CreateListOptions{UserID: "user-1", Name: "Go学习", Color: "#3B82F6"},
		[]repository.CreateTaskOptions{
			{UserID: "user-1", Content: "Read - chapter 1", Priority: taskparser.PriorityHigh, Status: taskparser.StatusPending, EstimatedHours: hours(2), StartTime: &start, ExpiresAt: &expires},
			{UserID: "user-1", Content: "Practice", Priority: taskparser.PriorityLow, Status: taskparser.StatusPending},
		})
	if err != nil {
		t.Fatalf("CreateListWithTasks: %v", err)
	}
	if list.ID == "" || list.TaskCount != 2 || len(tasks) != 2 {
		t.Fatalf("unexpected result: list=%+v tasks=%d", list, len(tasks))
	}

	got, err := r.GetOneTask(ctx, repository.GetOneTaskOptions{ID: tasks[0].ID, UserID: "user-1"})
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.ListID != list.ID || got.Content != "Read - chapter 1" || got.Priority != taskparser.PriorityHigh {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.EstimatedHours == nil || *got.EstimatedHours != 2 {
		t.Errorf("expected 2 estimated hours, got %v", got.EstimatedHours)
	}
	if got.ExpiresAt == nil || !got.ExpiresAt.Equal(expires) {
		t.Errorf("expected expires_at %v, got %v", expires, got.ExpiresAt)
	}
	if got.CompletedAt != nil {
		t.Errorf("expected no completed_at, got %v", got.CompletedAt)
	}

	lists, err := r.ListLists(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListLists: %v", err)
	}
	if len(lists) != 1 || lists[0].TaskCount != 2 {
		t.Errorf("expected one list with two tasks, got %+v", lists)
	}
}

func TestCreateListWithTasks_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	r := postgre.New(db, log.NewNop())

	// unknown user violates the tasks foreign key
	_, _, err := r.CreateListWithTasks(ctx,
		repository.CreateListOptions{UserID: "user-1", Name: "broken", Color: "#000000"},
		[]repository.CreateTaskOptions{
			{UserID: "user-1", Content: "ok", Priority: taskparser.PriorityMedium, Status: taskparser.StatusPending},
			{UserID: "ghost", Content: "bad", Priority: taskparser.PriorityMedium, Status: taskparser.StatusPending},
		})
	if err != repository.ErrFailedToInsert {
		t.Fatalf("expected ErrFailedToInsert, got %v", err)
	}

	lists, err := r.ListLists(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListLists: %v", err)
	}
	if len(lists) != 0 {
		t.Errorf("expected rollback to leave no list, got %d", len(lists))
	}
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	r := postgre.New(db, log.NewNop())

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	at := func(h int) *time.Time { v := base.Add(time.Duration(h) * time.Hour); return &v }

	list, created, err := r.CreateListWithTasks(ctx,
		repository.CreateListOptions{UserID: "user-1", Name: "plan", Color: "#111111"},
		[]repository.CreateTaskOptions{
			{UserID: "user-1", Content: "low-soon", Priority: taskparser.PriorityLow, Status: taskparser.StatusPending, EstimatedHours: hours(1), ExpiresAt: at(1)},
			{UserID: "user-1", Content: "urgent-late", Priority: taskparser.PriorityUrgent, Status: taskparser.StatusPending, EstimatedHours: hours(8), ExpiresAt: at(48)},
			{UserID: "user-1", Content: "high-none", Priority: taskparser.PriorityHigh, Status: taskparser.StatusInProgress},
			{UserID: "user-1", Content: "done", Priority: taskparser.PriorityUrgent, Status: taskparser.StatusPending, EstimatedHours: hours(0.5), ExpiresAt: at(2)},
		})
	if err != nil {
		t.Fatalf("CreateListWithTasks: %v", err)
	}
	completedAt := base.Add(3 * time.Hour)
	if _, err := r.UpdateTaskStatus(ctx, repository.UpdateTaskStatusOptions{ID: created[3].ID, Status: taskparser.StatusCompleted, CompletedAt: &completedAt}); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}

	contents := func(t *testing.T, opt repository.ListTasksOptions) ([]string, int) {
		t.Helper()
		tasks, total, err := r.ListTasks(ctx, opt)
		if err != nil {
			t.Fatalf("ListTasks: %v", err)
		}
		var out []string
		for _, tk := range tasks {
			if tk.ListName != list.Name || tk.ListColor != list.Color {
				t.Errorf("expected joined list fields, got %q %q", tk.ListName, tk.ListColor)
			}
			out = append(out, tk.Content)
		}
		return out, total
	}

	tests := []struct {
		name      string
		opt       repository.ListTasksOptions
		want      []string
		wantTotal int
	}{
		{
			name:      "Priority",
			opt:       repository.ListTasksOptions{SortBy: task.SortPriority},
			want:      []string{"urgent-late", "high-none", "low-soon"},
			wantTotal: 3,
		},
		{
			name:      "Earliest deadline",
			opt:       repository.ListTasksOptions{SortBy: task.SortTimeEarliest},
			want:      []string{"low-soon", "urgent-late", "high-none"},
			wantTotal: 3,
		},
		{
			name:      "Latest deadline",
			opt:       repository.ListTasksOptions{SortBy: task.SortTimeLatest},
			want:      []string{"urgent-late", "low-soon", "high-none"},
			wantTotal: 3,
		},
		{
			name:      "Longest first",
			opt:       repository.ListTasksOptions{SortBy: task.SortDurationLongest},
			want:      []string{"urgent-late", "low-soon", "high-none"},
			wantTotal: 3,
		},
		{
			name:      "Due filter",
			opt:       repository.ListTasksOptions{SortBy: task.SortPriority, ExpiresBefore: at(24)},
			want:      []string{"low-soon"},
			wantTotal: 1,
		},
		{
			name:      "Pagination",
			opt:       repository.ListTasksOptions{SortBy: task.SortPriority, Limit: 1, Offset: 1},
			want:      []string{"high-none"},
			wantTotal: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.opt.UserID = "user-1"
			tc.opt.ExcludeStatus = taskparser.StatusCompleted

			got, total := contents(t, tc.opt)
			if total != tc.wantTotal {
				t.Errorf("expected total %d, got %d", tc.wantTotal, total)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("position %d: expected %q, got %q (all: %v)", i, tc.want[i], got[i], got)
				}
			}
		})
	}
}

func TestUpdateStatusAndCounts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	r := postgre.New(db, log.NewNop())

	list, err := r.CreateList(ctx, repository.CreateListOptions{UserID: "user-1", Name: "misc", Color: "#222222"})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	tasks, err := r.CreateTasks(ctx, []repository.CreateTaskOptions{
		{UserID: "user-1", ListID: list.ID, Content: "a", Priority: taskparser.PriorityMedium, Status: taskparser.StatusPending},
		{UserID: "user-1", ListID: list.ID, Content: "b", Priority: taskparser.PriorityMedium, Status: taskparser.StatusPending},
	})
	if err != nil {
		t.Fatalf("CreateTasks: %v", err)
	}

	completedAt := time.Date(2025, 3, 11, 20, 30, 0, 0, time.UTC)
	updated, err := r.UpdateTaskStatus(ctx, repository.UpdateTaskStatusOptions{ID: tasks[0].ID, Status: taskparser.StatusCompleted, CompletedAt: &completedAt})
	if err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if updated.Status != taskparser.StatusCompleted || updated.CompletedAt == nil || !updated.CompletedAt.Equal(completedAt) {
		t.Errorf("unexpected updated task: %+v", updated)
	}

	missing, err := r.UpdateTaskStatus(ctx, repository.UpdateTaskStatusOptions{ID: "nope", Status: taskparser.StatusPaused})
	if err != nil || missing.ID != "" {
		t.Errorf("expected zero task for unknown id, got %+v, %v", missing, err)
	}

	counts, err := r.CountTasksByStatus(ctx, "user-1")
	if err != nil {
		t.Fatalf("CountTasksByStatus: %v", err)
	}
	if counts[taskparser.StatusCompleted] != 1 || counts[taskparser.StatusPending] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}

	created, err := r.CountTasksCreated(ctx, "user-1", time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	if err != nil || created != 2 {
		t.Errorf("expected 2 tasks created in the last hour, got %d, %v", created, err)
	}

	if other, _ := r.GetOneTask(ctx, repository.GetOneTaskOptions{ID: tasks[1].ID, UserID: "user-2"}); other.ID != "" {
		t.Errorf("expected task to be invisible to another user")
	}

	if err := r.DeleteList(ctx, list.ID); err != nil {
		t.Fatalf("DeleteList: %v", err)
	}
	if got, _ := r.GetOneTask(ctx, repository.GetOneTaskOptions{ID: tasks[1].ID}); got.ID != "" {
		t.Errorf("expected tasks to be deleted with their list")
	}
}
