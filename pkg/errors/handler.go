package errors

import "net/http"

// HTTPStatus resolves the status code for any error: AppErrors carry
// their own, everything else is a 500.
func HTTPStatus(err error) int {
	if appErr := GetAppError(err); appErr != nil && appErr.HTTPStatus != 0 {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// PublicMessage resolves the message safe to return to clients. Internal
// and database failures are masked; their detail stays in the logs.
func PublicMessage(err error) string {
	appErr := GetAppError(err)
	if appErr == nil {
		return "internal server error"
	}
	switch appErr.Type {
	case ErrorTypeInternal, ErrorTypeDatabase:
		return "internal server error"
	default:
		return appErr.Message
	}
}

// ErrorCode resolves the machine-readable code for an error.
func ErrorCode(err error) string {
	appErr := GetAppError(err)
	if appErr == nil {
		return string(ErrorTypeInternal)
	}
	if appErr.Code != "" {
		return appErr.Code
	}
	return string(appErr.Type)
}
