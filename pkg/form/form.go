package form

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/charsheet/pkg/async"
	"github.com/dmitrymomot/charsheet/pkg/logger"
)

// State is the validity snapshot returned by every command.
type State struct {
	Valid   bool `json:"valid"`
	Pending bool `json:"pending"`
}

// Outcome is the result of Submit.
type Outcome[R any] struct {
	Succeeded bool
	Record    R
	Errors    []string
}

// Form drives a tree through path addressed commands. It is not safe for
// concurrent use: callers serialize commands, as a UI event loop does.
type Form[R any] struct {
	root        *Group
	project     ProjectFunc[R]
	collector   *Collector
	log         *slog.Logger
	onSucceeded func(R)
	onFailed    func([]string)
	disposed    bool
}

// Option configures a Form.
type Option[R any] func(*Form[R])

// WithMessages sets the message table used for error lists.
func WithMessages[R any](m Messages) Option[R] {
	return func(f *Form[R]) {
		f.collector = NewCollector(m)
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger[R any](l *slog.Logger) Option[R] {
	return func(f *Form[R]) {
		if l != nil {
			f.log = l
		}
	}
}

// OnSucceeded registers a callback for successful submits.
func OnSucceeded[R any](fn func(R)) Option[R] {
	return func(f *Form[R]) {
		f.onSucceeded = fn
	}
}

// OnFailed registers a callback receiving the error list of failed submits.
func OnFailed[R any](fn func([]string)) Option[R] {
	return func(f *Form[R]) {
		f.onFailed = fn
	}
}

// New creates a form over root. project is called by Submit once the tree is
// valid.
func New[R any](root *Group, project ProjectFunc[R], opts ...Option[R]) *Form[R] {
	f := &Form[R]{
		root:    root,
		project: project,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.collector == nil {
		f.collector = NewCollector(nil)
	}
	return f
}

// Root returns the underlying tree.
func (f *Form[R]) Root() *Group { return f.root }

func (f *Form[R]) state() State {
	return State{Valid: f.root.Valid(), Pending: f.root.Pending()}
}

// OnFieldChange sets the field at path from loosely typed input.
func (f *Form[R]) OnFieldChange(path string, value any) (State, error) {
	if f.disposed {
		return State{}, ErrDisposed
	}
	field, err := ResolveField(f.root, path)
	if err != nil {
		return State{}, err
	}
	if err := field.SetAny(value); err != nil {
		return State{}, err
	}
	return f.state(), nil
}

// OnFieldBlur signals that the field at path lost focus.
func (f *Form[R]) OnFieldBlur(path string) (State, error) {
	if f.disposed {
		return State{}, ErrDisposed
	}
	field, err := ResolveField(f.root, path)
	if err != nil {
		return State{}, err
	}
	field.Blur()
	return f.state(), nil
}

// OnCollectionAppend appends an item to the collection at path and returns its
// index.
func (f *Form[R]) OnCollectionAppend(path string) (int, State, error) {
	if f.disposed {
		return 0, State{}, ErrDisposed
	}
	c, err := ResolveCollection(f.root, path)
	if err != nil {
		return 0, State{}, err
	}
	idx := c.Append()
	return idx, f.state(), nil
}

// OnCollectionRemove removes item index from the collection at path.
func (f *Form[R]) OnCollectionRemove(path string, index int) (State, error) {
	if f.disposed {
		return State{}, ErrDisposed
	}
	c, err := ResolveCollection(f.root, path)
	if err != nil {
		return State{}, err
	}
	if err := c.RemoveAt(index); err != nil {
		return f.state(), err
	}
	return f.state(), nil
}

// MutateRules applies op to the field at path.
func (f *Form[R]) MutateRules(path string, op RuleOp) (State, error) {
	if f.disposed {
		return State{}, ErrDisposed
	}
	field, err := ResolveField(f.root, path)
	if err != nil {
		return State{}, err
	}
	if err := field.MutateRules(op); err != nil {
		return State{}, err
	}
	f.log.Debug("field rules changed",
		logger.Component("form"),
		logger.Path(path),
		logger.Rules(field.RuleNames()),
	)
	return f.state(), nil
}

// Errors returns the flattened error list for the current state.
func (f *Form[R]) Errors() ([]string, error) {
	return f.collector.Collect(f.root)
}

func (f *Form[R]) Valid() bool { return f.root.Valid() }

func (f *Form[R]) Pending() bool { return f.root.Pending() }

// Value returns a snapshot of all field values.
func (f *Form[R]) Value() map[string]any {
	v, _ := f.root.Value().(map[string]any)
	return v
}

// Settle waits for every in-flight async evaluation or for ctx.
func (f *Form[R]) Settle(ctx context.Context) error {
	futures := f.root.inflight(nil)
	if len(futures) == 0 {
		return nil
	}
	return async.WaitAll(ctx, futures...)
}

// Submit dispatches async rules not yet run for the current values, waits for
// all of them, then builds the record or collects the error list. While async
// validation is pending Submit blocks; if ctx ends first it returns
// ErrSubmitPending and nothing is reported to the callbacks.
func (f *Form[R]) Submit(ctx context.Context) (Outcome[R], error) {
	if f.disposed {
		return Outcome[R]{}, ErrDisposed
	}

	f.root.trigger(eventSubmit)
	if err := f.Settle(ctx); err != nil {
		f.log.WarnContext(ctx, "submit blocked by pending validation",
			logger.Component("form"),
			logger.Error(err),
		)
		return Outcome[R]{}, errors.Join(ErrSubmitPending, err)
	}

	if f.root.Valid() {
		record, err := Build(f.root, f.project)
		if err != nil {
			return Outcome[R]{}, err
		}
		f.log.InfoContext(ctx, "form submitted", logger.Component("form"))
		if f.onSucceeded != nil {
			f.onSucceeded(record)
		}
		return Outcome[R]{Succeeded: true, Record: record}, nil
	}

	errs, err := f.Errors()
	if err != nil {
		f.log.ErrorContext(ctx, "failed to collect form errors",
			logger.Component("form"),
			logger.Error(err),
		)
		return Outcome[R]{}, err
	}
	f.log.DebugContext(ctx, "form submit rejected",
		logger.Component("form"),
		slog.Int("errors", len(errs)),
	)
	if f.onFailed != nil {
		f.onFailed(errs)
	}
	return Outcome[R]{Errors: errs}, nil
}

// Dispose cancels all in-flight async evaluations. Further commands fail with
// ErrDisposed.
func (f *Form[R]) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	f.root.dispose()
}
