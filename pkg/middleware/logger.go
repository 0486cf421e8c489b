package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"dalu/pkg/respond"
)

// RequestLogger writes one zap line per request. Returned errors are
// rendered before logging so the logged status is the one sent; only 5xx
// errors are logged at error level, with the cause stashed under
// respond.ErrorKey.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			err := v.Error
			if herr, ok := c.Get(respond.ErrorKey).(error); ok {
				err = herr
			}
			if err != nil && v.Status >= http.StatusInternalServerError {
				log.Error("request", append(fields, zap.Error(err))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
