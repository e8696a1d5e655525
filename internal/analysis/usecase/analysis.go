package usecase

import (
	"context"
	"fmt"

	"ai-task-planner/internal/analysis"
	repo "ai-task-planner/internal/analysis/repository"
	"ai-task-planner/internal/model"
)

func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (analysis.StatsOutput, error) {
	counts, err := uc.repo.CountTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats CountTasks: %v", err)
		return analysis.StatsOutput{}, analysis.ErrAnalysisFailed
	}

	times, err := uc.repo.ListCompletionTimes(ctx, repo.ListCompletionTimesOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListCompletionTimes: %v", err)
		return analysis.StatsOutput{}, analysis.ErrAnalysisFailed
	}

	ranking, err := uc.repo.ListCompletedCounts(ctx, repo.ListCompletedCountsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListCompletedCounts: %v", err)
		return analysis.StatsOutput{}, analysis.ErrAnalysisFailed
	}

	days := dayCounts(uc.dateMath, times)
	dist, best := hourly(uc.dateMath, times)
	rank := rankOf(ranking, sc.UserID)

	return analysis.StatsOutput{
		TotalTasks:         counts.Total,
		CompletedTasks:     counts.Completed,
		CurrentStreak:      currentStreak(uc.dateMath, days, uc.now()),
		LongestStreak:      longestStreak(uc.dateMath, days),
		BestHour:           best.Hour,
		BestHourCount:      best.Count,
		GlobalRank:         rank,
		RankPercentile:     rankPercentile(rank, len(ranking)),
		HourlyDistribution: dist,
	}, nil
}

// Activity returns one entry per day of the last ActivityMonths calendar
// months, the current month included.
func (uc *implUseCase) Activity(ctx context.Context, sc model.Scope) ([]analysis.ActivityDay, error) {
	monthStart := uc.dateMath.StartOfMonth(uc.now())
	from := monthStart.AddDate(0, -(analysis.ActivityMonths - 1), 0)
	to := monthStart.AddDate(0, 1, 0)

	times, err := uc.repo.ListCompletionTimes(ctx, repo.ListCompletionTimesOptions{UserID: sc.UserID, Since: &from})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Activity ListCompletionTimes: %v", err)
		return nil, analysis.ErrAnalysisFailed
	}
	counts := dayCounts(uc.dateMath, times)

	var out []analysis.ActivityDay
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		key := uc.dateMath.DayKey(day)
		out = append(out, analysis.ActivityDay{Date: key, Count: counts[key]})
	}
	return out, nil
}

func (uc *implUseCase) Leaderboard(ctx context.Context, sc model.Scope) ([]analysis.LeaderboardEntry, error) {
	if cached, ok := uc.leaderboardCache.Get(sc.UserID); ok {
		return cached, nil
	}

	top, err := uc.repo.ListCompletedCounts(ctx, repo.ListCompletedCountsOptions{Limit: uc.cfg.LeaderboardSize})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Leaderboard ListCompletedCounts: %v", err)
		return nil, analysis.ErrAnalysisFailed
	}

	now := uc.now()
	entries := make([]analysis.LeaderboardEntry, 0, len(top))
	for i, u := range top {
		rank := i + 1

		// only the trailing window can contribute to a streak ending today
		since := uc.dateMath.StartOfDay(now).AddDate(0, 0, -u.Count)
		times, err := uc.repo.ListCompletionTimes(ctx, repo.ListCompletionTimesOptions{UserID: u.UserID, Since: &since})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Leaderboard ListCompletionTimes: %v", err)
			return nil, analysis.ErrAnalysisFailed
		}

		name := u.Name
		if name == "" {
			name = fmt.Sprintf("用户%d", rank)
		}
		entries = append(entries, analysis.LeaderboardEntry{
			Rank:          rank,
			UserID:        u.UserID,
			Name:          name,
			Avatar:        u.Avatar,
			TaskCount:     u.Count,
			Streak:        currentStreak(uc.dateMath, dayCounts(uc.dateMath, times), now),
			IsCurrentUser: u.UserID == sc.UserID,
		})
	}

	uc.leaderboardCache.Add(sc.UserID, entries)
	return entries, nil
}

func (uc *implUseCase) Insights(ctx context.Context, sc model.Scope) (analysis.InsightsOutput, error) {
	now := uc.now()
	weekStart := uc.dateMath.StartOfWeek(now)
	lastWeekStart := weekStart.AddDate(0, 0, -7)
	monthStart := uc.dateMath.StartOfMonth(now)

	since := lastWeekStart
	if monthStart.Before(since) {
		since = monthStart
	}
	times, err := uc.repo.ListCompletionTimes(ctx, repo.ListCompletionTimesOptions{UserID: sc.UserID, Since: &since})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insights ListCompletionTimes: %v", err)
		return analysis.InsightsOutput{}, analysis.ErrAnalysisFailed
	}

	var thisWeek, lastWeek, month int
	for _, t := range times {
		switch {
		case !t.Before(weekStart):
			thisWeek++
		case !t.Before(lastWeekStart):
			lastWeek++
		}
		if !t.Before(monthStart) {
			month++
		}
	}

	ranking, err := uc.repo.ListCompletedCounts(ctx, repo.ListCompletedCountsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insights ListCompletedCounts: %v", err)
		return analysis.InsightsOutput{}, analysis.ErrAnalysisFailed
	}
	mine := 0
	for _, r := range ranking {
		if r.UserID == sc.UserID {
			mine = r.Count
			break
		}
	}
	fewer := 0
	for _, r := range ranking {
		if r.Count < mine {
			fewer++
		}
	}

	improvement := 0
	if lastWeek > 0 {
		improvement = percent(thisWeek-lastWeek, lastWeek)
	}
	progress := percent(month, uc.cfg.MonthlyGoal)
	if progress > 100 {
		progress = 100
	}

	return analysis.InsightsOutput{
		ThisWeekTasks:      thisWeek,
		LastWeekTasks:      lastWeek,
		ImprovementPercent: improvement,
		MonthTasks:         month,
		MonthlyGoal:        uc.cfg.MonthlyGoal,
		GoalProgress:       progress,
		DaysRemaining:      daysRemaining(uc.dateMath.DaysInMonth(now), now.In(uc.dateMath.Location()).Day()),
		SurpassPercent:     percent(fewer, len(ranking)),
	}, nil
}

func daysRemaining(daysInMonth, today int) int {
	if d := daysInMonth - today; d > 0 {
		return d
	}
	return 0
}
