// Package taskparser turns the markdown-like answer of a planning assistant into
// structured tasks.
package taskparser

import "time"

// Parser extracts tasks from AI responses.
type Parser struct {
	now func() time.Time
}

type Option func(*Parser)

// WithNow sets the clock used for start times.
func WithNow(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns the tasks found in text in source order. All tasks in one call
// share the same start time. A response without tasks yields an empty slice.
func (p *Parser) Parse(text string) []ParsedTask {
	now := p.now()

	frags := ExtractTaskLines(text)
	tasks := make([]ParsedTask, 0, len(frags))
	for _, f := range frags {
		start := now

		if f.Loose {
			tasks = append(tasks, ParsedTask{
				Content:   f.Content(),
				Priority:  PriorityMedium,
				StartTime: &start,
				Status:    StatusPending,
			})
			continue
		}

		hours := InferEstimatedHours(f.Raw)
		tasks = append(tasks, ParsedTask{
			Content:        f.Content(),
			Priority:       InferPriority(text, f.Raw, f.Offset),
			EstimatedHours: &hours,
			StartTime:      &start,
			ExpiresAt:      ProjectExpiry(start, &hours),
			Status:         StatusPending,
		})
	}

	return tasks
}

// Parse parses text with the wall clock.
func Parse(text string) []ParsedTask {
	return New().Parse(text)
}
