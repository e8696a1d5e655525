package http

import (
	"net/http"

	"ai-task-planner/internal/conversation"
	pkgErrors "ai-task-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case conversation.ErrConversationNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case conversation.ErrMissingFields, conversation.ErrInvalidTaskCount:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
