// Package migration holds the database schema as ordered migrations.
// Statements are portable between PostgreSQL and SQLite.
package migration

import "ai-task-planner/pkg/database"

// All returns every schema migration in version order.
func All() []database.Migration {
	return []database.Migration{
		{
			Version: 1,
			Name:    "create_users",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS users (
					id            TEXT PRIMARY KEY,
					email         TEXT NOT NULL UNIQUE,
					name          TEXT NOT NULL,
					password_hash TEXT NOT NULL,
					avatar        TEXT NOT NULL DEFAULT '',
					created_at    TIMESTAMP NOT NULL,
					updated_at    TIMESTAMP NOT NULL
				)`,
			},
		},
		{
			Version: 2,
			Name:    "create_lists_and_tasks",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS lists (
					id         TEXT PRIMARY KEY,
					user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					name       TEXT NOT NULL,
					color      TEXT NOT NULL,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS tasks (
					id              TEXT PRIMARY KEY,
					user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					list_id         TEXT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
					content         TEXT NOT NULL,
					priority        TEXT NOT NULL DEFAULT 'medium',
					status          TEXT NOT NULL DEFAULT 'pending',
					estimated_hours DOUBLE PRECISION,
					start_time      TIMESTAMP,
					expires_at      TIMESTAMP,
					completed_at    TIMESTAMP,
					created_at      TIMESTAMP NOT NULL,
					updated_at      TIMESTAMP NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_lists_user_id ON lists (user_id)`,
				`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks (user_id, status)`,
				`CREATE INDEX IF NOT EXISTS idx_tasks_list_id ON tasks (list_id)`,
				`CREATE INDEX IF NOT EXISTS idx_tasks_completed_at ON tasks (completed_at)`,
			},
		},
		{
			Version: 3,
			Name:    "create_conversations",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS conversations (
					id          TEXT PRIMARY KEY,
					user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					title       TEXT NOT NULL,
					user_input  TEXT NOT NULL,
					ai_response TEXT NOT NULL,
					task_count  INTEGER NOT NULL DEFAULT 0,
					list_name   TEXT NOT NULL DEFAULT '',
					created_at  TIMESTAMP NOT NULL,
					updated_at  TIMESTAMP NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_conversations_user_created ON conversations (user_id, created_at)`,
			},
		},
	}
}
