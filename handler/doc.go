// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a request value filled by binders and returns a
// Response. Wrap turns it into an http.HandlerFunc:
//
//	r.Put("/sheets/{id}/fields", handler.Wrap(h.change,
//		handler.WithBinders[FieldRequest](binder.Path(chi.URLParam), binder.BindJSON()),
//		handler.WithErrorHandler[FieldRequest](errorHandler),
//	))
//
// # Responses
//
//   - JSON / JSONError render the {data, error} envelope; an HTTPError picks
//     the status and error code.
//   - Signals patches DataStar signals and optional templ elements, or falls
//     back to the JSON envelope for plain requests.
//   - Templ renders one component, as an SSE element patch for DataStar.
//   - Empty answers 204.
//   - Error routes an error to the ErrorHandler.
//
// NewErrorHandler logs each error with the request id and renders either a
// toast patch or a JSON envelope.
package handler
