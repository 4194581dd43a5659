// Package binder populates request structs from JSON bodies
// and path parameters. Each binder reads only its own struct tag, so several can
// be chained on one request type with handler.WithBinders.
package binder
