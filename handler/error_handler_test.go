package handler_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/charsheet/handler"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("json for plain requests", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := handler.NewErrorHandler(slog.New(slog.NewTextHandler(buf, nil)), handler.ErrorHandlerConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sheets/missing", nil)
		h(handler.NewContext(w, req), handler.NotFound(errors.New("session expired")))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"not_found"`)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "path=/sheets/missing")
	})

	t.Run("toast for datastar requests", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := handler.NewErrorHandler(slog.New(slog.NewTextHandler(buf, nil)), handler.ErrorHandlerConfig{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sheets/1/submit", nil)
		req.Header.Set("Accept", "text/event-stream")
		h(handler.NewContext(w, req), errors.New("boom"))

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "toast-error")
		assert.NotContains(t, body, "boom")
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}
