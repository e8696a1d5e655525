package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "ai-task-planner/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "HTTPError", err: pkgErrors.NewHTTPError(http.StatusConflict, "dup"), want: http.StatusConflict},
		{name: "Wrapped", err: fmt.Errorf("ctx: %w", pkgErrors.ErrUnauthorized), want: http.StatusUnauthorized},
		{name: "Plain", err: errors.New("boom"), want: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pkgErrors.StatusCode(tc.err, http.StatusBadRequest); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
