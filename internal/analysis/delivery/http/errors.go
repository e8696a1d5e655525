package http

import (
	"net/http"

	"ai-task-planner/internal/analysis"
	pkgErrors "ai-task-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case analysis.ErrAnalysisFailed:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
