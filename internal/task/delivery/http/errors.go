package http

import (
	"net/http"

	"ai-task-planner/internal/task"
	pkgErrors "ai-task-planner/pkg/errors"
)

var (
	errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrListNotFound, task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case task.ErrEmptyListName, task.ErrEmptyContent, task.ErrContentTooLong, task.ErrNoTasks,
		task.ErrInvalidPriority, task.ErrInvalidStatus, task.ErrInvalidSortBy, task.ErrInvalidDue,
		task.ErrInvalidTimeRange:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case task.ErrCreateListFailed:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
