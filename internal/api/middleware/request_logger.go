package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger emits one structured zerolog line per request, carrying
// the request id assigned by the RequestID middleware. The error, if any,
// is committed here so the log line sees the final status code.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			evt := log.Info()
			if err != nil || status >= http.StatusInternalServerError {
				evt = log.Error().Err(err)
			}
			evt.
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Int("status", status).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Dur("latency", time.Since(start)).
				Msg("request")

			return nil
		}
	}
}
