package analysis

import (
	"context"

	"ai-task-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	Activity(ctx context.Context, sc model.Scope) ([]ActivityDay, error)
	Leaderboard(ctx context.Context, sc model.Scope) ([]LeaderboardEntry, error)
	Insights(ctx context.Context, sc model.Scope) (InsightsOutput, error)
}
