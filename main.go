package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/freekieb7/pebble/http"
	"github.com/freekieb7/pebble/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	name = "github.com/freekieb7/pebble"
	addr = "0.0.0.0:3003"
)

var (
	tracer = otel.Tracer(name)
	meter  = otel.Meter(name)
	logger = otelslog.NewLogger(name)

	requestCnt metric.Int64Counter
)

func init() {
	os.Setenv("OTEL_SERVICE_NAME", "pebble")
	os.Setenv("OTEL_RESOURCE_ATTRIBUTES", "service.namespace=freekieb7,deployment.environment=development")
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:4317")
	os.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")

	var err error
	requestCnt, err = meter.Int64Counter("http.server.requests",
		metric.WithDescription("The number of requests served, by route and status"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	otelShutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer otelShutdown(context.Background())

	server := newServer()

	serverErrCh := make(chan error, 1)
	go func() {
		logger.Info("listening and serving", "addr", addr)
		serverErrCh <- server.ListenAndServe(ctx, addr)
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	return server.Shutdown(context.Background())
}

func newServer() *http.Server {
	server := http.NewServer("pebble")
	server.Logger = logger

	server.Router.Middleware = append(server.Router.Middleware,
		instrument(),
		http.RecoverMiddleware(logger),
	)

	server.Router.GET("/", handleGreeting)
	server.Router.GET("/something", handleQueryEcho)
	server.Router.POST("/something", handleBodyEcho)

	return server
}

// instrument records a span, a counter increment and a log line per request.
func instrument() http.Middleware {
	return func(next http.Handler) http.Handler {
		return func(ctx *http.RequestCtx) {
			spanCtx, span := tracer.Start(context.Background(), "http.request")
			defer span.End()

			requestID := uuid.NewString()
			span.SetAttributes(
				attribute.String("http.request.id", requestID),
				attribute.String("http.method", ctx.Request.Method),
				attribute.String("http.path", ctx.Request.Path),
			)

			next(ctx)

			status := int(ctx.Response.Status)
			span.SetAttributes(attribute.Int("http.status", status))
			requestCnt.Add(spanCtx, 1, metric.WithAttributes(
				attribute.String("http.method", ctx.Request.Method),
				attribute.String("http.path", ctx.Request.Path),
				attribute.Int("http.status", status),
			))
			logger.InfoContext(spanCtx, "request served",
				"id", requestID,
				"method", ctx.Request.Method,
				"path", ctx.Request.Path,
				"status", status)
		}
	}
}
