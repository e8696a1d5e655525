package http

import "ai-task-planner/internal/analysis"

type hourCountResp struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type statsResp struct {
	TotalTasks         int             `json:"total_tasks"`
	CompletedTasks     int             `json:"completed_tasks"`
	CurrentStreak      int             `json:"current_streak"`
	LongestStreak      int             `json:"longest_streak"`
	BestHour           int             `json:"best_hour"`
	BestHourCount      int             `json:"best_hour_count"`
	GlobalRank         int             `json:"global_rank"`
	RankPercentile     int             `json:"rank_percentile"`
	HourlyDistribution []hourCountResp `json:"hourly_distribution"`
}

func newStatsResp(o analysis.StatsOutput) statsResp {
	dist := make([]hourCountResp, len(o.HourlyDistribution))
	for i, hc := range o.HourlyDistribution {
		dist[i] = hourCountResp{Hour: hc.Hour, Count: hc.Count}
	}
	return statsResp{
		TotalTasks:         o.TotalTasks,
		CompletedTasks:     o.CompletedTasks,
		CurrentStreak:      o.CurrentStreak,
		LongestStreak:      o.LongestStreak,
		BestHour:           o.BestHour,
		BestHourCount:      o.BestHourCount,
		GlobalRank:         o.GlobalRank,
		RankPercentile:     o.RankPercentile,
		HourlyDistribution: dist,
	}
}

type activityDayResp struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func newActivityResp(days []analysis.ActivityDay) []activityDayResp {
	out := make([]activityDayResp, len(days))
	for i, d := range days {
		out[i] = activityDayResp{Date: d.Date, Count: d.Count}
	}
	return out
}

type leaderboardEntryResp struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Tasks         int    `json:"tasks"`
	Streak        int    `json:"streak"`
	IsCurrentUser bool   `json:"is_current_user"`
}

func newLeaderboardResp(entries []analysis.LeaderboardEntry) []leaderboardEntryResp {
	out := make([]leaderboardEntryResp, len(entries))
	for i, e := range entries {
		out[i] = leaderboardEntryResp{
			Rank:          e.Rank,
			Name:          e.Name,
			Avatar:        e.Avatar,
			Tasks:         e.TaskCount,
			Streak:        e.Streak,
			IsCurrentUser: e.IsCurrentUser,
		}
	}
	return out
}

type insightsResp struct {
	ThisWeekTasks      int `json:"this_week_tasks"`
	LastWeekTasks      int `json:"last_week_tasks"`
	ImprovementPercent int `json:"improvement_percent"`
	MonthTasks         int `json:"month_tasks"`
	MonthlyGoal        int `json:"monthly_goal"`
	GoalProgress       int `json:"goal_progress"`
	DaysRemaining      int `json:"days_remaining"`
	SurpassPercent     int `json:"surpass_percent"`
}

func newInsightsResp(o analysis.InsightsOutput) insightsResp {
	return insightsResp{
		ThisWeekTasks:      o.ThisWeekTasks,
		LastWeekTasks:      o.LastWeekTasks,
		ImprovementPercent: o.ImprovementPercent,
		MonthTasks:         o.MonthTasks,
		MonthlyGoal:        o.MonthlyGoal,
		GoalProgress:       o.GoalProgress,
		DaysRemaining:      o.DaysRemaining,
		SurpassPercent:     o.SurpassPercent,
	}
}
