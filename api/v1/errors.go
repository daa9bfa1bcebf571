package v1

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/dainonaka/vsstats/internal/apperrors"
)

// HTTPErrorHandler surfaces AppError codes as their HTTP status instead
// of a blanket 500.
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			err = echo.NewHTTPError(appErr.Code, appErr.Message)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
