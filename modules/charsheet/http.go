package charsheet

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/charsheet/binder"
	"github.com/dmitrymomot/charsheet/handler"
	"github.com/dmitrymomot/charsheet/pkg/form"
)

// SheetRequest addresses a sheet.
type SheetRequest struct {
	ID string `path:"id" json:"-"`
}

// FieldRequest addresses a field of a sheet. Value is only read on change.
type FieldRequest struct {
	ID    string `path:"id" json:"-"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// CollectionRequest addresses a collection entry.
type CollectionRequest struct {
	ID    string `path:"id" json:"-"`
	Name  string `path:"name" json:"-"`
	Index int    `path:"index" json:"-"`
}

// RuleRequest names a rule to drop from a field.
type RuleRequest struct {
	ID   string `path:"id" json:"-"`
	Path string `json:"path"`
	Rule string `json:"rule"`
}

// HTTPHandler exposes a Service over HTTP. DataStar requests receive the view
// as signals plus patched fragments; other clients get a JSON envelope.
type HTTPHandler struct {
	svc          *Service
	errorHandler handler.ErrorHandler
}

func NewHTTPHandler(svc *Service, errorHandler handler.ErrorHandler) *HTTPHandler {
	return &HTTPHandler{svc: svc, errorHandler: errorHandler}
}

func wrap[R any](h *HTTPHandler, fn handler.HandlerFunc[R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(fn,
		handler.WithBinders[R](binders...),
		handler.WithErrorHandler[R](h.errorHandler),
	)
}

// Handle returns the sheet routes.
func (h *HTTPHandler) Handle() http.Handler {
	r := chi.NewRouter()
	path := binder.Path(chi.URLParam)
	body := binder.BindJSON()

	r.Get("/classes", wrap(h, h.classes))
	r.Post("/sheets", wrap(h, h.create))
	r.Route("/sheets/{id}", func(r chi.Router) {
		r.Get("/", wrap(h, h.get, path))
		r.Delete("/", wrap(h, h.dispose, path))
		r.Put("/fields", wrap(h, h.change, path, body))
		r.Post("/blur", wrap(h, h.blur, path, body))
		r.Post("/collections/{name}", wrap(h, h.appendEntry, path))
		r.Delete("/collections/{name}/{index}", wrap(h, h.removeEntry, path))
		r.Post("/rules/remove", wrap(h, h.dropRule, path, body))
		r.Post("/submit", wrap(h, h.submit, path))
	})
	return r
}

func (h *HTTPHandler) classes(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(Classes())
}

func (h *HTTPHandler) create(ctx handler.Context, _ struct{}) handler.Response {
	return respond(h.svc.Create(ctx))
}

func (h *HTTPHandler) get(ctx handler.Context, req SheetRequest) handler.Response {
	return respond(h.svc.Get(ctx, req.ID))
}

func (h *HTTPHandler) dispose(ctx handler.Context, req SheetRequest) handler.Response {
	if err := h.svc.Dispose(ctx, req.ID); err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Empty()
}

func (h *HTTPHandler) change(ctx handler.Context, req FieldRequest) handler.Response {
	return respond(h.svc.ChangeField(ctx, req.ID, req.Path, req.Value))
}

func (h *HTTPHandler) blur(ctx handler.Context, req FieldRequest) handler.Response {
	return respond(h.svc.Blur(ctx, req.ID, req.Path))
}

func (h *HTTPHandler) appendEntry(ctx handler.Context, req CollectionRequest) handler.Response {
	return respond(h.svc.Append(ctx, req.ID, req.Name))
}

func (h *HTTPHandler) removeEntry(ctx handler.Context, req CollectionRequest) handler.Response {
	return respond(h.svc.Remove(ctx, req.ID, req.Name, req.Index))
}

func (h *HTTPHandler) dropRule(ctx handler.Context, req RuleRequest) handler.Response {
	return respond(h.svc.DropRule(ctx, req.ID, req.Path, req.Rule))
}

func (h *HTTPHandler) submit(ctx handler.Context, req SheetRequest) handler.Response {
	return respond(h.svc.Submit(ctx, req.ID))
}

func respond(v View, err error) handler.Response {
	if err != nil {
		return handler.Error(httpError(err))
	}
	patches := []handler.TemplPatch{
		handler.Patch(ErrorList(v.Errors), handler.WithTarget("#"+ErrorListID)),
	}
	if v.Remark != "" {
		patches = append(patches, handler.Patch(Remark(v.Remark), handler.WithTarget("#"+RemarkID)))
	}
	return handler.Signals(v, patches...)
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrSheetNotFound),
		errors.Is(err, form.ErrDisposed),
		errors.Is(err, form.ErrPathNotFound),
		errors.Is(err, form.ErrNotField),
		errors.Is(err, form.ErrNotCollection):
		return handler.NotFound(err)
	case errors.Is(err, form.ErrRemovalRejected),
		errors.Is(err, form.ErrSubmitPending):
		return handler.Conflict(err)
	case errors.Is(err, form.ErrTypeMismatch):
		return handler.Unprocessable(err)
	case errors.Is(err, form.ErrIndexOutOfRange),
		errors.Is(err, ErrUnknownCommand):
		return handler.BadRequest(err)
	default:
		return err
	}
}
