package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-task-planner/internal/analysis"
	"ai-task-planner/internal/analysis/repository"
	"ai-task-planner/pkg/datemath"
	pkgLog "ai-task-planner/pkg/log"
)

const (
	leaderboardCacheSize  = 1000
	defaultLeaderboardTTL = time.Minute
)

type implUseCase struct {
	l                pkgLog.Logger
	repo             repository.Repository
	dateMath         *datemath.Parser
	cfg              analysis.Config
	now              func() time.Time
	leaderboardCache *expirable.LRU[string, []analysis.LeaderboardEntry]
}

// New creates the analysis UseCase. Leaderboards are cached per viewer for
// cfg.LeaderboardCacheTTL.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser, cfg analysis.Config, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	if cfg.MonthlyGoal <= 0 {
		cfg.MonthlyGoal = analysis.DefaultMonthlyGoal
	}
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = analysis.DefaultLeaderboardSize
	}
	if cfg.LeaderboardCacheTTL <= 0 {
		cfg.LeaderboardCacheTTL = defaultLeaderboardTTL
	}

	return &implUseCase{
		l:                l,
		repo:             repo,
		dateMath:         dateMath,
		cfg:              cfg,
		now:              now,
		leaderboardCache: expirable.NewLRU[string, []analysis.LeaderboardEntry](leaderboardCacheSize, nil, cfg.LeaderboardCacheTTL),
	}
}
