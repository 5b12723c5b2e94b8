package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/svatek/internal/domain/dashboard"
	apperrors "github.com/yanqian/svatek/pkg/errors"
)

// HTTPError is how a failure is written back: status, error envelope and,
// for a failed refresh, the alert next to the display left in place.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
	Board   *dashboard.State
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// refreshFailure reports a refresh that raised the error dialog. Any cause
// without a board code is shown as a generic refresh failure.
func refreshFailure(err error, state dashboard.State) *HTTPError {
	httpErr := asHTTPError(err)
	if httpErr.Status != http.StatusBadGateway {
		httpErr = NewHTTPError(http.StatusBadGateway, dashboard.CodeRefreshFailed, dashboard.GenericFailureText+": "+err.Error(), err)
	}
	if state.Alert != nil {
		httpErr.Code = state.Alert.Code
		httpErr.Message = state.Alert.Message
	}
	httpErr.Board = &state
	return httpErr
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return &HTTPError{
			Status:  statusForCode(appErr.Code),
			Code:    appErr.Code,
			Message: appErr.Error(),
			Err:     err,
		}
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func statusForCode(code string) int {
	switch code {
	case dashboard.CodeSunTimesUnavailable, dashboard.CodeRefreshFailed:
		return http.StatusBadGateway
	case "invalid_input":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
