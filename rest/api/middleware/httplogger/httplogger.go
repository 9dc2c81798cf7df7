package httplogger

import (
	"time"

	"github.com/Favorjs/e-rights-backend/utils/log"
	"github.com/kataras/iris"
	"github.com/kataras/iris/context"
)

type HTTPLogger struct{}

func New() iris.Handler {
	m := HTTPLogger{}
	return m.ServeHTTP
}

func (h *HTTPLogger) ServeHTTP(ctx context.Context) {
	start := time.Now()
	ctx.Next()
	end := time.Now()

	log.Info("httplog",
		"method", ctx.Method(),
		"path", ctx.Path(),
		"query", ctx.Request().URL.RawQuery,
		"status_code", ctx.GetStatusCode(),
		"ip", ctx.RemoteAddr(),
		"elapsed", end.Sub(start).Seconds())
}
