package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charsheet/pkg/form"
	"github.com/dmitrymomot/charsheet/pkg/validator"
)

func phoneItem() form.Node {
	return form.NewGroup(
		form.Child("phone", form.NewField("", form.WithRules(validator.PhoneNumber()))),
		form.Child("isPrimary", form.NewField(false)),
	)
}

func TestExprGuard(t *testing.T) {
	t.Parallel()

	t.Run("size based", func(t *testing.T) {
		g, err := form.ExprGuard("size > 1")
		require.NoError(t, err)

		c := form.NewCollection(phoneItem, form.WithItems(2), form.WithGuard(g))
		require.NoError(t, c.RemoveAt(1))
		assert.ErrorIs(t, c.RemoveAt(0), form.ErrRemovalRejected)
	})

	t.Run("rule based", func(t *testing.T) {
		g := form.MustExprGuard(`!("required" in rules["phone"])`)
		c := form.NewCollection(phoneItem, form.WithItems(2), form.WithGuard(g))

		f, err := form.ResolveField(c, "0.phone")
		require.NoError(t, err)
		require.NoError(t, f.MutateRules(form.AddRule(validator.Required[string]())))

		assert.ErrorIs(t, c.RemoveAt(0), form.ErrRemovalRejected)
		assert.NoError(t, c.RemoveAt(1))
	})

	t.Run("value and index are exposed", func(t *testing.T) {
		g := form.MustExprGuard(`index > 0 || value.isPrimary == false`)
		c := form.NewCollection(phoneItem, form.WithItems(2), form.WithGuard(g))

		f, err := form.ResolveField(c, "0.isPrimary")
		require.NoError(t, err)
		require.NoError(t, f.SetAny(true))

		assert.ErrorIs(t, c.RemoveAt(0), form.ErrRemovalRejected)
		assert.NoError(t, c.RemoveAt(1))
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := form.ExprGuard("size >")
		assert.ErrorIs(t, err, form.ErrInvalidGuard)

		assert.Panics(t, func() { form.MustExprGuard("size >") })
	})
}

func TestAllOf(t *testing.T) {
	t.Parallel()

	g := form.AllOf(form.MinItems(1), form.UnlessRule("phone", "required"))
	c := form.NewCollection(phoneItem, form.WithItems(2), form.WithGuard(g))

	f, err := form.ResolveField(c, "1.phone")
	require.NoError(t, err)
	require.NoError(t, f.MutateRules(form.AddRule(validator.Required[string]())))

	assert.ErrorIs(t, c.RemoveAt(1), form.ErrRemovalRejected)
	require.NoError(t, c.RemoveAt(0))
	assert.ErrorIs(t, c.RemoveAt(0), form.ErrRemovalRejected)
	assert.Equal(t, 1, c.Len())
}
