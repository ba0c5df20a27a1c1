package middleware

import (
	"log/slog"
	"net/http"

	"parcel/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewLoggerMiddleware returns the access log middleware. Outside debug mode
// only failed requests are logged; debug mode logs every request with its
// request body. The request id is read back from the X-Request-Id response
// header, so it must run after RequestIDMiddleware.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	debug := cfg.Env.Debug

	filters := []slogecho.Filter{
		slogecho.IgnorePath("/health"),
	}
	if !debug {
		filters = append(filters, slogecho.IgnoreStatus(
			http.StatusOK,
			http.StatusCreated,
			http.StatusNoContent,
		))
	}

	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		WithRequestBody:  debug,
		WithUserAgent:    debug,
		Filters:          filters,
	})
}
