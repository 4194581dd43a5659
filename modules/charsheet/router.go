package charsheet

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/charsheet/handler"
	"github.com/dmitrymomot/charsheet/pkg/httpserver"
	"github.com/dmitrymomot/charsheet/pkg/requestid"
)

// RouterOptions configures Router.
type RouterOptions struct {
	Service *Service
	Logger  *slog.Logger
	// HealthChecks are reported by GET /health.
	HealthChecks map[string]httpserver.HealthCheck
	// ErrorHandler defaults to handler.NewErrorHandler with the router logger.
	ErrorHandler handler.ErrorHandler
}

// Router creates the application router.
//
//	r := charsheet.Router(charsheet.RouterOptions{
//	    Service:      svc,
//	    Logger:       log,
//	    HealthChecks: map[string]httpserver.HealthCheck{"redis": redis.Healthcheck(client)},
//	})
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	errorHandler := opts.ErrorHandler
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)
	r.Get("/health", httpserver.HealthCheckHandler(log, 2*time.Second, opts.HealthChecks))
	r.Mount("/", NewHTTPHandler(opts.Service, errorHandler).Handle())
	return r
}
