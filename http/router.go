package http

type Router struct {
	Routes     []Route
	Middleware []Middleware
}

func NewRouter() Router {
	return Router{
		Routes: make([]Route, 0),
	}
}

func (router *Router) GET(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"GET"}, path, handler, middleware...)
}

func (router *Router) POST(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"POST"}, path, handler, middleware...)
}

func (router *Router) Any(methods []string, path string, handler Handler, middleware ...Middleware) {
	for _, middleware := range middleware {
		handler = middleware(handler)
	}

	router.Routes = append(router.Routes, Route{
		Methods: methods,
		Path:    path,
		Handler: handler,
	})
}

// Handler resolves the route table into a single dispatch function. Anything
// not in the table falls through to NotFoundHandler. Router-level middleware
// wraps every route, the fallback included.
func (router *Router) Handler() Handler {
	handle := func(ctx *RequestCtx) {
		handler := NotFoundHandler
		for _, route := range router.Routes {
			if route.Path != ctx.Request.Path {
				continue
			}

			for _, method := range route.Methods {
				if method != ctx.Request.Method {
					continue
				}

				handler = route.Handler
				break
			}
		}

		handler(ctx)
	}

	for _, middleware := range router.Middleware {
		handle = middleware(handle)
	}

	return handle
}
