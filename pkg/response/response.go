package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-task-planner/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. The status comes from a pkg/errors.HTTPError
// and defaults to 400.
func Error(c *gin.Context, err error) {
	status := pkgErrors.StatusCode(err, http.StatusBadRequest)

	code := status
	if status == http.StatusBadRequest {
		code = DefaultErrorCode
	}
	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   err.Error(),
	})
}

// Unprocessable sends 422 with the list of reasons the payload was rejected.
func Unprocessable(c *gin.Context, err error, errs any) {
	c.JSON(http.StatusUnprocessableEntity, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
		Errors:    errs,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests, please slow down",
	})
}
