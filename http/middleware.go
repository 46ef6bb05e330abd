package http

import "log/slog"

type Middleware func(next Handler) Handler

// RecoverMiddleware keeps a panicking handler from taking down the worker.
// The connection gets a plain error response instead.
func RecoverMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx *RequestCtx) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("handler panic", "panic", r, "path", ctx.Request.Path)
					ctx.Response.WithStatus(500).WithText("something went wrong")
				}
			}()

			next(ctx)
		}
	}
}
