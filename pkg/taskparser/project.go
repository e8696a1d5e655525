package taskparser

import "time"

// ProjectExpiry returns now plus the estimate, capped at MaxHorizon.
// A missing or non-positive estimate yields nil.
func ProjectExpiry(now time.Time, estimatedHours *float64) *time.Time {
	if estimatedHours == nil || !(*estimatedHours > 0) {
		return nil
	}

	d := MaxHorizon
	if *estimatedHours < MaxHorizon.Hours() {
		d = time.Duration(*estimatedHours * float64(time.Hour))
	}

	expiresAt := now.Add(d)
	return &expiresAt
}
