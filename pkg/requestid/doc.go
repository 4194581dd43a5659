// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a valid client supplied X-Request-ID header or generates
// a UUID, stores it in the request context and echoes it in the response.
// FromContext reads it back; LoggerExtractor feeds it to pkg/logger so every
// record logged with the request context carries request_id.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
