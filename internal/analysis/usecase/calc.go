package usecase

import (
	"math"
	"sort"
	"time"

	"ai-task-planner/internal/analysis"
	"ai-task-planner/internal/analysis/repository"
	"ai-task-planner/pkg/datemath"
)

// round rounds half up, so -2.5 becomes -2.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return round(float64(part) / float64(whole) * 100)
}

func dayCounts(dm *datemath.Parser, times []time.Time) map[string]int {
	counts := make(map[string]int, len(times))
	for _, t := range times {
		counts[dm.DayKey(t)]++
	}
	return counts
}

// currentStreak counts consecutive days with a completion, ending today.
func currentStreak(dm *datemath.Parser, days map[string]int, now time.Time) int {
	streak := 0
	for day := dm.StartOfDay(now); days[dm.DayKey(day)] > 0; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func longestStreak(dm *datemath.Parser, days map[string]int) int {
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	longest, run := 0, 0
	var prev time.Time
	for i, k := range keys {
		day, err := time.ParseInLocation(datemath.DayLayout, k, dm.Location())
		if err != nil {
			continue
		}
		if i > 0 && dm.DayKey(prev.AddDate(0, 0, 1)) == k {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}

// hourly buckets completions by hour of day. The best hour is the earliest
// hour with the most completions, DefaultBestHour when there are none.
func hourly(dm *datemath.Parser, times []time.Time) ([]analysis.HourCount, analysis.HourCount) {
	dist := make([]analysis.HourCount, 24)
	for h := range dist {
		dist[h].Hour = h
	}
	for _, t := range times {
		dist[dm.Hour(t)].Count++
	}

	best := analysis.HourCount{Hour: analysis.DefaultBestHour}
	for _, hc := range dist {
		if hc.Count > best.Count {
			best = hc
		}
	}
	return dist, best
}

// rankOf returns the 1-based position of userID in the ranking, or 1 when absent.
func rankOf(ranking []repository.UserCompletion, userID string) int {
	for i, r := range ranking {
		if r.UserID == userID {
			return i + 1
		}
	}
	return 1
}

func rankPercentile(rank, total int) int {
	if total == 0 {
		return 0
	}
	return round(float64(total-rank+1) / float64(total) * 100)
}
