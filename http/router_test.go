package http

import "testing"

func TestRouterDispatch(t *testing.T) {
	router := NewRouter()
	router.GET("/hello", func(ctx *RequestCtx) {
		ctx.Response.WithText("hi")
	})

	ctx := &RequestCtx{}
	ctx.Request.Method = "GET"
	ctx.Request.Path = "/hello"
	ctx.Response.Reset()

	router.Handler()(ctx)

	if string(ctx.Response.Body) != "hi" {
		t.Errorf("unexpected body: %s", ctx.Response.Body)
	}
}

func TestRouterMethodMismatch(t *testing.T) {
	router := NewRouter()
	router.GET("/hello", func(ctx *RequestCtx) {
		ctx.Response.WithText("hi")
	})

	ctx := &RequestCtx{}
	ctx.Request.Method = "DELETE"
	ctx.Request.Path = "/hello"
	ctx.Response.Reset()

	router.Handler()(ctx)

	if ctx.Response.Status != StatusNotFound {
		t.Errorf("expected 404, got %d", ctx.Response.Status)
	}
	if string(ctx.Response.Body) != "Not Found" {
		t.Errorf("unexpected body: %s", ctx.Response.Body)
	}
}

func TestRouterUnknownPath(t *testing.T) {
	router := NewRouter()

	ctx := &RequestCtx{}
	ctx.Request.Method = "GET"
	ctx.Request.Path = "/nope"
	ctx.Response.Reset()

	router.Handler()(ctx)

	if ctx.Response.Status != StatusNotFound {
		t.Errorf("expected 404, got %d", ctx.Response.Status)
	}
}

func TestRouterMiddlewareWrapsFallback(t *testing.T) {
	var called bool

	router := NewRouter()
	router.Middleware = append(router.Middleware, func(next Handler) Handler {
		return func(ctx *RequestCtx) {
			called = true
			next(ctx)
		}
	})

	ctx := &RequestCtx{}
	ctx.Request.Method = "GET"
	ctx.Request.Path = "/nope"
	ctx.Response.Reset()

	router.Handler()(ctx)

	if !called {
		t.Error("router middleware should wrap the not-found fallback")
	}
}
