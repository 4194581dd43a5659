package form_test

import (
	"context"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charsheet/pkg/form"
	"github.com/dmitrymomot/charsheet/pkg/validator"
)

// lookup is a controllable async duplicate check. Every call blocks until gate
// is closed or the field context is cancelled.
type lookup struct {
	taken []string
	gate  chan struct{}
	calls atomic.Int32
	err   error
}

func newLookup(taken ...string) *lookup {
	return &lookup{taken: taken, gate: make(chan struct{})}
}

func (l *lookup) release() { close(l.gate) }

func (l *lookup) rule() form.AsyncRule[string] {
	return form.AsyncRule[string]{
		Name: "duplicate",
		Check: func(ctx context.Context, v string) (bool, error) {
			l.calls.Add(1)
			select {
			case <-l.gate:
			case <-ctx.Done():
				return false, ctx.Err()
			}
			if l.err != nil {
				return false, l.err
			}
			return !slices.Contains(l.taken, v), nil
		},
	}
}

func settle(t *testing.T, f form.FieldNode) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.Settle(ctx))
}

func emailField(l *lookup, opts ...form.FieldOption[string]) *form.Field[string] {
	base := []form.FieldOption[string]{
		form.WithRules(validator.Required[string](), validator.Email()),
		form.WithAsync(l.rule()),
	}
	return form.NewField("", append(base, opts...)...)
}
