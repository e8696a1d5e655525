package analysis

import "time"

const (
	DefaultMonthlyGoal     = 50
	DefaultLeaderboardSize = 10
	DefaultBestHour        = 9
	ActivityMonths         = 12
)

type Config struct {
	MonthlyGoal         int
	LeaderboardSize     int
	LeaderboardCacheTTL time.Duration
}

type HourCount struct {
	Hour  int
	Count int
}

type StatsOutput struct {
	TotalTasks         int
	CompletedTasks     int
	CurrentStreak      int
	LongestStreak      int
	BestHour           int
	BestHourCount      int
	GlobalRank         int
	RankPercentile     int
	HourlyDistribution []HourCount
}

// ActivityDay is one cell of the activity heatmap. Date is YYYY-MM-DD.
type ActivityDay struct {
	Date  string
	Count int
}

type LeaderboardEntry struct {
	Rank          int
	UserID        string
	Name          string
	Avatar        string
	TaskCount     int
	Streak        int
	IsCurrentUser bool
}

type InsightsOutput struct {
	ThisWeekTasks      int
	LastWeekTasks      int
	ImprovementPercent int
	MonthTasks         int
	MonthlyGoal        int
	GoalProgress       int
	DaysRemaining      int
	SurpassPercent     int
}
