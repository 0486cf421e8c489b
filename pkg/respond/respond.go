// Package respond renders API errors as {"detail": "..."} bodies.
package respond

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"dalu/pkg/schema"
)

// ErrorKey is the echo.Context key under which unexpected errors are
// stashed for the request logger.
const ErrorKey = "handler_error"

func Detail(c echo.Context, status int, detail string) error {
	return c.JSON(status, echo.Map{"detail": detail})
}

// Error maps err onto a status code: missing rows are 404 (with notFound as
// detail), validation failures 422, anything else 500.
func Error(c echo.Context, err error, notFound string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Detail(c, http.StatusNotFound, notFound)
	case errors.Is(err, schema.ErrValidation):
		return Detail(c, http.StatusUnprocessableEntity, err.Error())
	default:
		c.Set(ErrorKey, err)
		return Detail(c, http.StatusInternalServerError, "internal server error")
	}
}

// ID parses a positive numeric path parameter. The returned error is an
// *echo.HTTPError (422) for the handler to return as is.
func ID(c echo.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid "+name)
	}
	return uint(n), nil
}

// Bind decodes the request body into dst; a malformed body is returned as a
// 422 *echo.HTTPError.
func Bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		msg := "invalid json"
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Internal != nil {
			msg += ": " + he.Internal.Error()
		}
		return echo.NewHTTPError(http.StatusUnprocessableEntity, msg)
	}
	return nil
}

// ErrorHandler renders errors returned by handlers and by echo itself
// (unknown route, wrong method) as {"detail": ...}. Anything that is not an
// *echo.HTTPError is a 500 and is stashed under ErrorKey.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status, detail := http.StatusInternalServerError, "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" {
			detail = msg
		} else {
			detail = http.StatusText(he.Code)
		}
	} else {
		c.Set(ErrorKey, err)
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = Detail(c, status, detail)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
