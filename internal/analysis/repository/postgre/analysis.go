package postgre

import (
	"context"
	"fmt"
	"time"

	repo "ai-task-planner/internal/analysis/repository"
	"ai-task-planner/pkg/taskparser"
)

func (r *implRepository) CountTasks(ctx context.Context, userID string) (repo.TaskCounts, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = $1 THEN 1 ELSE 0 END), 0)
		FROM tasks
		WHERE user_id = $2`

	var counts repo.TaskCounts
	if err := r.db.QueryRowContext(ctx, query, taskparser.StatusCompleted, userID).Scan(&counts.Total, &counts.Completed); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return repo.TaskCounts{}, repo.ErrFailedToCount
	}
	return counts, nil
}

func (r *implRepository) ListCompletionTimes(ctx context.Context, opt repo.ListCompletionTimesOptions) ([]time.Time, error) {
	query := `
		SELECT completed_at
		FROM tasks
		WHERE user_id = $1 AND status = $2 AND completed_at IS NOT NULL`
	args := []any{opt.UserID, taskparser.StatusCompleted}
	if opt.Since != nil {
		query += ` AND completed_at >= $3`
		args = append(args, opt.Since.UTC())
	}
	query += ` ORDER BY completed_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCompletionTimes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListCompletionTimes"), err)
			return nil, repo.ErrFailedToList
		}
		times = append(times, t.UTC())
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListCompletionTimes"), err)
		return nil, repo.ErrFailedToList
	}
	return times, nil
}

func (r *implRepository) ListCompletedCounts(ctx context.Context, opt repo.ListCompletedCountsOptions) ([]repo.UserCompletion, error) {
	query := `
		SELECT t.user_id, COALESCE(u.name, ''), COALESCE(u.avatar, ''), COUNT(*) AS completed
		FROM tasks t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.status = $1
		GROUP BY t.user_id, u.name, u.avatar
		ORDER BY completed DESC, t.user_id`
	args := []any{taskparser.StatusCompleted}
	if opt.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCompletedCounts"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []repo.UserCompletion
	for rows.Next() {
		var uc repo.UserCompletion
		if err := rows.Scan(&uc.UserID, &uc.Name, &uc.Avatar, &uc.Count); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListCompletedCounts"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, uc)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListCompletedCounts"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
