package http

import (
	"net/http"

	"ai-task-planner/internal/auth"
	pkgErrors "ai-task-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidEmail, auth.ErrInvalidPassword:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
