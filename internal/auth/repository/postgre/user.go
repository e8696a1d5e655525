package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "ai-task-planner/internal/auth/repository"
	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/database"
)

const userColumns = `id, email, name, password_hash, avatar, created_at, updated_at`

// CreateUser inserts a new User. A taken email yields ErrDuplicateEmail.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, email, name, password_hash, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`

	now := time.Now().UTC()
	u := model.User{
		ID:           uuid.NewString(),
		Email:        opt.Email,
		Name:         opt.Name,
		PasswordHash: opt.PasswordHash,
		Avatar:       opt.Avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.PasswordHash, u.Avatar, now)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
	}
	if len(conditions) == 0 {
		return model.User{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s LIMIT 1`, userColumns, strings.Join(conditions, " AND "))

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Avatar, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}
