package taskparser

import (
	"regexp"
	"strconv"
	"strings"
)

type priorityRule struct {
	priority Priority
	flames   string
	word     *regexp.Regexp
	cjk      string
}

// Checked in order; the first rule with any hit wins.
var priorityRules = []priorityRule{
	{PriorityUrgent, "🔥🔥🔥🔥", regexp.MustCompile(`(?i)\burgent\b`), "紧急"},
	{PriorityHigh, "🔥🔥🔥", regexp.MustCompile(`(?i)\bhigh\b`), "高"},
	{PriorityMedium, "🔥🔥", regexp.MustCompile(`(?i)\bmedium\b`), "中"},
	{PriorityLow, "🔥", regexp.MustCompile(`(?i)\blow\b`), "低"},
}

var ordinalMarkerRe = regexp.MustCompile(`\d+\.(?:\D|$)`)

// InferPriority derives a priority from markers in matched. Without markers it
// falls back to the position of the task: the number of ordinal markers in
// fullText before offset.
func InferPriority(fullText, matched string, offset int) Priority {
	for _, rule := range priorityRules {
		if strings.Contains(matched, rule.flames) ||
			strings.Contains(matched, rule.cjk) ||
			rule.word.MatchString(matched) {
			return rule.priority
		}
	}

	if offset < 0 {
		offset = 0
	}
	if offset > len(fullText) {
		offset = len(fullText)
	}

	switch preceding := len(ordinalMarkerRe.FindAllStringIndex(fullText[:offset], -1)); {
	case preceding <= highPriorityPositions:
		return PriorityHigh
	case preceding <= midPriorityPositions:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Longer unit spellings come first so "hours" is not read as "h".
var explicitDurationRe = regexp.MustCompile(
	`(?i)(?:⏰|⏱|预计)\x{FE0F}?\s*[:：]?\s*(\d+(?:\.\d+)?)\s*(小时|钟头|分钟|分|天|(?:hours|hour|hrs|hr|h|days|day|d|minutes|minute|mins|min)\b)`,
)

type durationUnit int

const (
	unitHour durationUnit = iota
	unitDay
	unitMinute
)

var durationUnits = map[string]durationUnit{
	"小时": unitHour, "钟头": unitHour, "h": unitHour, "hr": unitHour, "hrs": unitHour, "hour": unitHour, "hours": unitHour,
	"天": unitDay, "d": unitDay, "day": unitDay, "days": unitDay,
	"分钟": unitMinute, "分": unitMinute, "min": unitMinute, "mins": unitMinute, "minute": unitMinute, "minutes": unitMinute,
}

func toHours(value float64, unit durationUnit) float64 {
	switch unit {
	case unitDay:
		return value * 24
	case unitMinute:
		return value / 60
	default:
		return value
	}
}

var (
	complexWorkRe  = regexp.MustCompile(`(?i)研究|分析|设计|\bresearch|\banaly[sz]|\bdesign`)
	learningWorkRe = regexp.MustCompile(`(?i)学习|阅读|练习|\bstud(?:y|ies|ying)\b|\bread(?:s|ing)?\b|\bpractic(?:e|es|ing)\b`)
	quickWorkRe    = regexp.MustCompile(`(?i)检查|确认|发送|\bcheck|\bconfirm|\bsend`)
)

// InferEstimatedHours returns the explicit duration in matched, converted to
// hours. Without a usable duration it estimates from keywords and length.
// The result is always positive.
func InferEstimatedHours(matched string) float64 {
	if m := explicitDurationRe.FindStringSubmatch(matched); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil && value > 0 {
			return toHours(value, durationUnits[strings.ToLower(m[2])])
		}
	}

	return estimateHours(matched)
}

func estimateHours(matched string) float64 {
	switch {
	case complexWorkRe.MatchString(matched):
		return complexTaskHours
	case learningWorkRe.MatchString(matched):
		return learningTaskHours
	case quickWorkRe.MatchString(matched):
		return quickTaskHours
	}

	switch tokens := len(strings.Fields(matched)); {
	case tokens > longLineTokens:
		return longLineHours
	case tokens > mediumLineTokens:
		return mediumLineHours
	default:
		return defaultTaskHours
	}
}
