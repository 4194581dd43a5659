package handler

import (
	"net/http"
	"strings"
)

const (
	dataStarAccept      = "text/event-stream"
	dataStarQuery       = "datastar"
	dataStarContentType = "application/x-datastar"
)

// IsDataStar reports whether r came from the DataStar client: it accepts
// server-sent events, carries signals in the query or posts the DataStar
// content type.
func IsDataStar(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), dataStarAccept) ||
		r.URL.Query().Has(dataStarQuery) ||
		strings.Contains(r.Header.Get("Content-Type"), dataStarContentType)
}
