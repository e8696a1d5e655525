package http

import (
	"net/http"

	"ai-task-planner/internal/planner"
	"ai-task-planner/internal/task"
	pkgErrors "ai-task-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case planner.ErrAssistantUnavailable:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case planner.ErrAssistantFailed:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case planner.ErrEmptyMessages,
		planner.ErrInvalidRole,
		planner.ErrLastMessageNotUser,
		planner.ErrEmptyResponse,
		task.ErrEmptyContent,
		task.ErrContentTooLong,
		task.ErrInvalidPriority,
		task.ErrInvalidStatus,
		task.ErrInvalidTimeRange:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case task.ErrCreateListFailed:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
