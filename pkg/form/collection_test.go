package form_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charsheet/pkg/form"
	"github.com/dmitrymomot/charsheet/pkg/validator"
)

func emailItem() form.Node {
	return form.NewGroup(
		form.Child("email", form.NewField("", form.WithRules(validator.Email()))),
		form.Child("isPrimary", form.NewField(false)),
	)
}

func TestCollection_Append(t *testing.T) {
	t.Parallel()

	c := form.NewCollection(emailItem, form.WithItems(1))
	require.Equal(t, 1, c.Len())

	idx := c.Append()
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, c.Len())

	first, err := form.ResolveField(c, "0.email")
	require.NoError(t, err)
	second, err := form.ResolveField(c, "1.email")
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	require.NoError(t, second.SetAny("broken"))
	assert.True(t, first.Valid())
	assert.False(t, second.Valid())
	assert.False(t, c.Valid())

	for _, item := range c.Items() {
		g, ok := item.(*form.Group)
		require.True(t, ok)
		assert.Equal(t, []string{"email", "isPrimary"}, g.Names())
	}
}

func TestCollection_RemoveAt(t *testing.T) {
	t.Parallel()

	t.Run("without guard the last item can go", func(t *testing.T) {
		c := form.NewCollection(emailItem, form.WithItems(1))
		require.NoError(t, c.RemoveAt(0))
		assert.Equal(t, 0, c.Len())
		assert.True(t, c.Valid())
	})

	t.Run("guard keeps at least one item", func(t *testing.T) {
		c := form.NewCollection(emailItem, form.WithItems(1), form.WithGuard(form.MinItems(1)))
		c.Append()

		require.NoError(t, c.RemoveAt(0))
		assert.Equal(t, 1, c.Len())

		err := c.RemoveAt(0)
		assert.ErrorIs(t, err, form.ErrRemovalRejected)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("removal keeps order of remaining items", func(t *testing.T) {
		c := form.NewCollection(emailItem, form.WithItems(3))
		for i, v := range []string{"a@x.io", "b@x.io", "c@x.io"} {
			f, err := form.ResolveField(c, form.Path{strconv.Itoa(i), "email"}.String())
			require.NoError(t, err)
			require.NoError(t, f.SetAny(v))
		}

		require.NoError(t, c.RemoveAt(1))
		got, err := form.Get[string](c, "1.email")
		require.NoError(t, err)
		assert.Equal(t, "c@x.io", got)
	})

	t.Run("index out of range", func(t *testing.T) {
		c := form.NewCollection(emailItem, form.WithItems(1))
		err := c.RemoveAt(3)

		require.ErrorIs(t, err, form.ErrIndexOutOfRange)
		var idxErr *form.IndexError
		require.True(t, errors.As(err, &idxErr))
		assert.Equal(t, 3, idxErr.Index)
		assert.Equal(t, 1, idxErr.Len)

		_, err = c.At(-1)
		assert.ErrorIs(t, err, form.ErrIndexOutOfRange)
	})

	t.Run("rejected by required rule until it is removed", func(t *testing.T) {
		c := form.NewCollection(emailItem, form.WithItems(1), form.WithGuard(form.UnlessRule("email", "required")))
		f, err := form.ResolveField(c, "0.email")
		require.NoError(t, err)
		require.NoError(t, f.MutateRules(form.AddRule(validator.Required[string]())))

		assert.ErrorIs(t, c.RemoveAt(0), form.ErrRemovalRejected)

		require.NoError(t, f.MutateRules(form.RemoveRule("required")))
		assert.NoError(t, c.RemoveAt(0))
	})
}

func TestCollection_RemoveAtCancelsAsync(t *testing.T) {
	t.Parallel()

	started := make(chan struct{}, 1)
	stopped := make(chan error, 1)
	template := func() form.Node {
		return form.NewField("", form.WithTrigger[string](form.OnChange), form.WithAsync(form.AsyncRule[string]{
			Name: "duplicate",
			Check: func(ctx context.Context, _ string) (bool, error) {
				started <- struct{}{}
				<-ctx.Done()
				stopped <- ctx.Err()
				return false, ctx.Err()
			},
		}))
	}

	c := form.NewCollection(template, form.WithItems(2))
	f, err := form.ResolveField(c, "1")
	require.NoError(t, err)
	require.NoError(t, f.SetAny("someone@example.com"))

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("async check was not dispatched")
	}
	require.True(t, c.Pending())

	require.NoError(t, c.RemoveAt(1))
	select {
	case err := <-stopped:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("async check was not cancelled")
	}
	assert.False(t, c.Pending())
	assert.Equal(t, 1, c.Len())
}

func TestCollection_AppendMatchesTemplate(t *testing.T) {
	t.Parallel()

	c := form.NewCollection(emailItem, form.WithItems(1))
	first, err := form.ResolveField(c, "0.email")
	require.NoError(t, err)
	require.NoError(t, first.MutateRules(form.PrependRule(validator.Required[string]())))

	want, err := form.ResolveField(c.Template(), "email")
	require.NoError(t, err)

	for range 2 {
		idx := c.Append()
		got, err := form.ResolveField(c, form.Path{strconv.Itoa(idx), "email"}.String())
		require.NoError(t, err)
		assert.Equal(t, want.RuleNames(), got.RuleNames())
	}
	assert.Equal(t, []string{"required", "email"}, first.RuleNames())
}

func TestCollection_Value(t *testing.T) {
	t.Parallel()

	c := form.NewCollection(func() form.Node { return form.NewField("") }, form.WithItems(2))
	f, err := form.ResolveField(c, "1")
	require.NoError(t, err)
	require.NoError(t, f.SetAny("(555) 123-4567"))

	assert.Equal(t, []any{"", "(555) 123-4567"}, c.Value())
	assert.Equal(t, form.KindCollection, c.Kind())
}

func TestNewCollection_NilTemplate(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { form.NewCollection(nil) })
}
