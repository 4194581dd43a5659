// Package httpserver runs a net/http server for the lifetime of a context and
// serves a JSON health-check endpoint.
//
// Run binds the listener, serves until the context is done and then calls
// http.Server.Shutdown bounded by the shutdown timeout. Signal handling
// belongs to the caller, usually through signal.NotifyContext.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	r := chi.NewRouter()
//	r.Get("/health", httpserver.HealthCheckHandler(log, time.Second, map[string]httpserver.HealthCheck{
//		"redis": redis.Healthcheck(client),
//	}))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
