package form

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/charsheet/pkg/async"
	"github.com/dmitrymomot/charsheet/pkg/validator"
)

// Trigger controls when a field's async rule is dispatched. Sync rules run on
// every mutation regardless of the trigger.
type Trigger uint8

const (
	// TriggerDefault resolves to OnBlur for fields with an async rule and to
	// OnChange otherwise.
	TriggerDefault Trigger = iota
	OnChange
	OnBlur
	OnSubmit
)

func (t Trigger) String() string {
	switch t {
	case OnChange:
		return "change"
	case OnBlur:
		return "blur"
	case OnSubmit:
		return "submit"
	default:
		return "default"
	}
}

// AsyncRule is a named check that completes later, typically a lookup against
// an external system. Check returns ok=false when the value violates the rule.
// An async check that returns an error is reported under RuleUnverified, with
// the failing rule and error in its params, and is retried on the next trigger.
type AsyncRule[T comparable] struct {
	Name  string
	Check func(ctx context.Context, value T) (ok bool, err error)
}

// RuleUnverified names the violation reported when an async check could not
// complete.
const RuleUnverified = "unverified"

// FieldNode is the type-erased view of a Field used by path based commands.
type FieldNode interface {
	Node
	Trigger() Trigger
	Violations() validator.Violations
	// SetAny coerces v to the field type and sets it.
	SetAny(v any) error
	// Blur signals that the field lost input focus.
	Blur()
	RuleNames() []string
	HasRule(name string) bool
	MutateRules(op RuleOp) error
	// Settle waits for an in-flight async evaluation and applies it.
	Settle(ctx context.Context) error

	removeRule(name string) bool
}

type asyncCheck[T comparable] struct {
	value  T
	future *async.Future[bool]
}

type asyncResult[T comparable] struct {
	value     T
	violation *validator.Violation
	failed    bool
}

// Field is an atomic validated value holder.
//
// A Field is owned by a single goroutine. Async rules run in their own
// goroutines, but their results are only read and applied by the owner when it
// queries or settles the field.
type Field[T comparable] struct {
	value     T
	rules     []validator.Rule[T]
	asyncRule *AsyncRule[T]
	policy    Trigger
	errs      validator.Violations

	check  *asyncCheck[T]
	result *asyncResult[T]

	ctx      context.Context
	cancel   context.CancelFunc
	disposed bool
}

// FieldOption configures a Field.
type FieldOption[T comparable] func(*Field[T])

// WithRules attaches sync rules in evaluation order.
func WithRules[T comparable](rules ...validator.Rule[T]) FieldOption[T] {
	return func(f *Field[T]) {
		f.rules = append(f.rules, rules...)
	}
}

// WithAsync attaches the field's async rule.
func WithAsync[T comparable](rule AsyncRule[T]) FieldOption[T] {
	return func(f *Field[T]) {
		if rule.Check != nil {
			f.asyncRule = &rule
		}
	}
}

// WithTrigger overrides the async trigger policy.
func WithTrigger[T comparable](t Trigger) FieldOption[T] {
	return func(f *Field[T]) {
		f.policy = t
	}
}

// NewField creates a field holding initial and evaluates its sync rules.
// Async rules are not dispatched for the initial value.
func NewField[T comparable](initial T, opts ...FieldOption[T]) *Field[T] {
	f := &Field[T]{value: initial}
	for _, opt := range opts {
		opt(f)
	}
	f.ctx, f.cancel = context.WithCancel(context.Background())
	f.revalidate()
	return f
}

func (f *Field[T]) Kind() Kind { return KindField }

// Get returns the current value.
func (f *Field[T]) Get() T { return f.value }

func (f *Field[T]) Value() any { return f.value }

func (f *Field[T]) Trigger() Trigger {
	if f.policy != TriggerDefault {
		return f.policy
	}
	if f.asyncRule != nil {
		return OnBlur
	}
	return OnChange
}

// SetValue stores v and re-runs the sync rules. An async evaluation in flight
// for a different value becomes stale and its result will be ignored.
func (f *Field[T]) SetValue(v T) {
	if f.disposed {
		return
	}
	f.value = v
	if f.check != nil && f.check.value != v {
		f.check = nil
	}
	f.revalidate()
	f.trigger(eventChange)
}

func (f *Field[T]) SetAny(v any) error {
	tv, err := coerce[T](v)
	if err != nil {
		return err
	}
	f.SetValue(tv)
	return nil
}

func (f *Field[T]) Blur() {
	f.trigger(eventBlur)
}

// Violations returns the violations for the current value: sync rules in
// attachment order followed by the async rule once resolved for this value.
func (f *Field[T]) Violations() validator.Violations {
	f.reconcile()

	out := slices.Clone(f.errs)
	if f.result != nil && f.result.value == f.value && f.result.violation != nil {
		out.Add(*f.result.violation)
	}
	return out
}

func (f *Field[T]) Valid() bool {
	return len(f.Violations()) == 0 && !f.Pending()
}

func (f *Field[T]) Pending() bool {
	f.reconcile()
	return f.check != nil
}

func (f *Field[T]) RuleNames() []string {
	names := make([]string, 0, len(f.rules)+1)
	for _, r := range f.rules {
		names = append(names, r.Name)
	}
	if f.asyncRule != nil {
		names = append(names, f.asyncRule.Name)
	}
	return names
}

func (f *Field[T]) HasRule(name string) bool {
	return slices.Contains(f.RuleNames(), name)
}

// MutateRules applies op and re-evaluates the field.
func (f *Field[T]) MutateRules(op RuleOp) error {
	if op == nil {
		return nil
	}
	if err := op(f); err != nil {
		return err
	}
	f.revalidate()
	if f.Trigger() == OnChange {
		f.dispatch()
	}
	return nil
}

func (f *Field[T]) Settle(ctx context.Context) error {
	if c := f.check; c != nil {
		select {
		case <-c.future.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.reconcile()
	return nil
}

func (f *Field[T]) addRule(r validator.Rule[T]) {
	for i := range f.rules {
		if f.rules[i].Name == r.Name {
			f.rules[i] = r
			return
		}
	}
	f.rules = append(f.rules, r)
}

func (f *Field[T]) removeRule(name string) bool {
	if f.asyncRule != nil && f.asyncRule.Name == name {
		f.asyncRule = nil
		f.check = nil
		f.result = nil
		return true
	}

	n := len(f.rules)
	f.rules = slices.DeleteFunc(f.rules, func(r validator.Rule[T]) bool {
		return r.Name == name
	})
	return len(f.rules) != n
}

func (f *Field[T]) revalidate() {
	f.errs = validator.Apply(f.value, f.rules...)
}

func (f *Field[T]) trigger(ev event) {
	switch ev {
	case eventChange:
		if f.Trigger() == OnChange {
			f.dispatch()
		}
	case eventBlur:
		if t := f.Trigger(); t == OnChange || t == OnBlur {
			f.dispatch()
		}
	case eventSubmit:
		f.dispatch()
	}
}

// dispatch starts the async rule for the current value unless sync rules fail
// or the value was already dispatched or resolved. A failed check is retried.
func (f *Field[T]) dispatch() {
	if f.asyncRule == nil || f.disposed || len(f.errs) > 0 {
		return
	}
	if f.check != nil && f.check.value == f.value {
		return
	}
	if f.result != nil && f.result.value == f.value && !f.result.failed {
		return
	}

	f.check = &asyncCheck[T]{
		value:  f.value,
		future: async.Async(f.ctx, f.value, f.asyncRule.Check),
	}
}

// reconcile applies a completed async evaluation if it still belongs to the
// current value.
func (f *Field[T]) reconcile() {
	c := f.check
	if c == nil || !c.future.IsComplete() {
		return
	}
	f.check = nil
	if f.disposed || f.asyncRule == nil || c.value != f.value {
		return
	}

	ok, err := c.future.Await()
	res := &asyncResult[T]{value: c.value}
	switch {
	case errors.Is(err, context.Canceled):
		return
	case err != nil:
		res.failed = true
		res.violation = &validator.Violation{
			Rule:   RuleUnverified,
			Params: map[string]any{"rule": f.asyncRule.Name, "error": err.Error()},
		}
	case !ok:
		res.violation = &validator.Violation{Rule: f.asyncRule.Name}
	}
	f.result = res
}

func (f *Field[T]) inflight(dst []*async.Future[bool]) []*async.Future[bool] {
	if f.check != nil {
		dst = append(dst, f.check.future)
	}
	return dst
}

func (f *Field[T]) dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	f.check = nil
	f.cancel()
}

// coerce converts loosely typed input (JSON numbers, form strings, nil) to T.
func coerce[T comparable](v any) (T, error) {
	var zero T
	if tv, ok := v.(T); ok {
		return tv, nil
	}

	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case string:
		out, err = cast.ToStringE(v)
	case bool:
		out, err = cast.ToBoolE(v)
	case int, int64, float64:
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return zero, nil
		}
		if _, isFloat := any(zero).(float64); !isFloat && !integral(v) {
			return zero, fmt.Errorf("%w: %v is not a whole number", ErrTypeMismatch, v)
		}
		switch any(zero).(type) {
		case int:
			out, err = cast.ToIntE(v)
		case int64:
			out, err = cast.ToInt64E(v)
		default:
			out, err = cast.ToFloat64E(v)
		}
	default:
		return zero, fmt.Errorf("%w: cannot assign %T to %T field", ErrTypeMismatch, v, zero)
	}
	if err != nil {
		return zero, errors.Join(ErrTypeMismatch, err)
	}

	tv, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("%w: cannot assign %T to %T field", ErrTypeMismatch, v, zero)
	}
	return tv, nil
}

// integral reports whether a floating point v has no fractional part. Other
// types are left to the cast conversion.
func integral(v any) bool {
	switch n := v.(type) {
	case float64:
		return n == math.Trunc(n)
	case float32:
		return float64(n) == math.Trunc(float64(n))
	default:
		return true
	}
}
