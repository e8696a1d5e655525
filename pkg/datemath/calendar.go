package datemath

import "time"

// StartOfDay returns midnight of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns the last instant of t's day.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the Sunday starting t's week.
func (p *Parser) StartOfWeek(t time.Time) time.Time {
	day := p.StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func (p *Parser) StartOfMonth(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.location)
}

// DaysInMonth returns the number of days of t's month.
func (p *Parser) DaysInMonth(t time.Time) int {
	return p.StartOfMonth(t).AddDate(0, 1, -1).Day()
}

// DayKey formats t's day as DayLayout in the parser's timezone.
func (p *Parser) DayKey(t time.Time) string {
	return t.In(p.location).Format(DayLayout)
}

// Hour returns the hour of day of t in the parser's timezone.
func (p *Parser) Hour(t time.Time) int {
	return t.In(p.location).Hour()
}
