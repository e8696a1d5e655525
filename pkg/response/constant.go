package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong, please retry later"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 422
	DefaultErrorCode        = 1
)
