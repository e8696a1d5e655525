package taskparser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate reports every problem in a parsed batch. It never fails fast.
func Validate(tasks []ParsedTask) ValidationResult {
	if len(tasks) == 0 {
		return ValidationResult{Valid: false, Errors: []string{ErrMsgNoTasks}}
	}

	var errs []string
	for i, t := range tasks {
		if strings.TrimSpace(t.Content) == "" {
			errs = append(errs, fmt.Sprintf(errMsgContentEmpty, i+1))
		}
		if utf8.RuneCountInString(t.Content) > MaxContentLength {
			errs = append(errs, fmt.Sprintf(errMsgContentTooLong, i+1))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
