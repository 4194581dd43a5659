package handler

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/starfederation/datastar-go/datastar"
)

type signalsResponse struct {
	signals any
	patches []TemplPatch
}

// Render patches signals and elements over SSE for DataStar requests. Plain
// requests get the signals as a JSON envelope and the patches are dropped.
func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return JSON(s.signals).Render(w, r)
	}

	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchSignals(data); err != nil {
		return err
	}
	for _, patch := range s.patches {
		if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}

// Signals creates a response that updates client signals, optionally followed
// by element patches.
//
//	return handler.Signals(state,
//		handler.Patch(views.ErrorList(errs), handler.WithTarget("#form-errors")),
//	)
func Signals(signals any, patches ...TemplPatch) Response {
	return signalsResponse{signals: signals, patches: patches}
}
