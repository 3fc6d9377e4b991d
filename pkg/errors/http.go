package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ToHTTPError converts an error into an echo HTTP error. AppError codes map to
// their HTTP status with the user-visible message as the detail; plain errors
// become 500s.
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return echo.NewHTTPError(ToHTTPStatus(appErr.Code()), appErr.Message())
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
