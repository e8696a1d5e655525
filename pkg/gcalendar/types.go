package gcalendar

import (
	"context"
	"time"
)

// DefaultCalendarID is the authenticated user's main calendar.
const DefaultCalendarID = "primary"

//go:generate mockery --name Calendar
type Calendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Shanghai"
	ColorID     string // Google event colour, "1".."11"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
