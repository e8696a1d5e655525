// Package datemath does timezone-aware calendar arithmetic and resolves
// relative day expressions such as "tomorrow", "in 3 days" or "明天".
package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayLayout is the layout of day keys such as "2025-03-10".
const DayLayout = "2006-01-02"

var ErrUnknownExpression = errors.New("unknown relative date expression")

var (
	inDurationRe  = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	cnDaysLaterRe = regexp.MustCompile(`^(\d+)\s*天后$`)
)

var dayOffsets = map[string]int{
	"today":     0,
	"tomorrow":  1,
	"yesterday": -1,
	"今天":        0,
	"明天":        1,
	"后天":        2,
	"昨天":        -1,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date strings to absolute times in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Shanghai"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves a relative day expression to the start of that day.
// baseTime is the reference point, usually now.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if offset, ok := dayOffsets[relative]; ok {
		return p.StartOfDay(baseTime.AddDate(0, 0, offset)), nil
	}

	if m := cnDaysLaterRe.FindStringSubmatch(relative); m != nil {
		amount, _ := strconv.Atoi(m[1])
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownExpression, relative)
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	m := inDurationRe.FindStringSubmatch(relative)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownExpression, relative)
	}

	amount, _ := strconv.Atoi(m[1])
	switch unit := m[2]; {
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	}
}

// parseNextWeekday handles "next monday"; the same weekday means a week later.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnknownExpression, dayName)
	}

	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}
