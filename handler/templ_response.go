package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget patches into the element matching selector.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// TemplPatch is a component plus its patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch pairs a component with options for Signals.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// Templ renders a component as an SSE element patch for DataStar requests
// and as HTML otherwise.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return datastar.NewSSE(w, r).PatchElementTempl(component, opts...)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(r.Context(), w)
	})
}
