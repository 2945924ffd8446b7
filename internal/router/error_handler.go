package router

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tasktrack/internal/errors"
)

// HTTPErrorHandler is the single boundary translator: every error escaping a
// handler or middleware passes through here and is mapped to the response
// taxonomy. 500-class failures are logged with full detail server-side and the
// response body never leaks internals; everything else logs at warn level.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := translate(err)

	if status >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	} else {
		c.Logger().Warnf("%s %s: %d %v", c.Request().Method, c.Request().URL.Path, status, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Errorf("write error response: %v", err)
	}
}

func translate(err error) (int, apperrors.ErrorResponse) {
	// Errors already shaped by handlers or middleware (binding failures, the
	// JWT authentication phase, route-level rejections).
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		switch msg := echoErr.Message.(type) {
		case apperrors.ErrorResponse:
			return echoErr.Code, msg
		case string:
			return echoErr.Code, apperrors.ErrorResponse{Error: msg, Code: codeForStatus(echoErr.Code)}
		default:
			return echoErr.Code, apperrors.ErrorResponse{Error: fmt.Sprint(msg), Code: codeForStatus(echoErr.Code)}
		}
	}

	mapped := apperrors.MapErrorToHTTP(err)
	return mapped.StatusCode, mapped.ToErrorResponse()
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}
