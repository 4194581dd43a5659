package charsheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charsheet/modules/charsheet"
	"github.com/dmitrymomot/charsheet/pkg/form"
)

func TestBuildUser(t *testing.T) {
	t.Parallel()

	t.Run("keeps collection order", func(t *testing.T) {
		t.Parallel()

		root, err := charsheet.NewSheet(charsheet.LayoutFlat)
		require.NoError(t, err)
		emails, err := form.ResolveCollection(root, charsheet.EmailsCollection)
		require.NoError(t, err)
		phones, err := form.ResolveCollection(root, charsheet.PhonesCollection)
		require.NoError(t, err)
		emails.Append()
		emails.Append()
		phones.Append()

		values := validFlat()
		values["emails.1.email"] = "Second@Example.com"
		values["emails.2.email"] = "third@example.com"
		values["phoneNumbers.1.phoneNumber"] = "+1 555 987 6543"
		values["phoneNumbers.1.isPrimary"] = true
		set(t, root, values)

		user, err := form.Build(root, charsheet.BuildUser(charsheet.LayoutFlat))
		require.NoError(t, err)

		assert.Equal(t, charsheet.User{
			FirstName: "Race",
			LastName:  "Underwood",
			Address:   "12 Main Street",
			Emails: []charsheet.UserEmail{
				{Email: "race@example.com", IsPrimary: true},
				{Email: "second@example.com"},
				{Email: "third@example.com"},
			},
			PhoneNumbers: []charsheet.UserPhone{
				{Phone: "(555) 123-4567"},
				{Phone: "+1 555 987 6543", IsPrimary: true},
			},
			Class: charsheet.CharacterClass{Class: "Bard", Level: 7},
		}, user)
	})

	t.Run("sectioned layout", func(t *testing.T) {
		t.Parallel()

		root, err := charsheet.NewSheet(charsheet.LayoutSectioned)
		require.NoError(t, err)
		set(t, root, validSectioned())

		user, err := form.Build(root, charsheet.BuildUser(charsheet.LayoutSectioned))
		require.NoError(t, err)
		assert.Equal(t, "Wizard", user.Class.Class)
		assert.Equal(t, 20, user.Class.Level)
		assert.Equal(t, "Race", user.FirstName)
		require.Len(t, user.Emails, 1)
		assert.Equal(t, "race@example.com", user.Emails[0].Email)
	})

	t.Run("invalid tree", func(t *testing.T) {
		t.Parallel()

		root, err := charsheet.NewSheet(charsheet.LayoutFlat)
		require.NoError(t, err)

		_, err = form.Build(root, charsheet.BuildUser(charsheet.LayoutFlat))
		assert.ErrorIs(t, err, form.ErrBuildInvalid)
	})

	t.Run("layout mismatch", func(t *testing.T) {
		t.Parallel()

		root, err := charsheet.NewSheet(charsheet.LayoutFlat)
		require.NoError(t, err)
		set(t, root, validFlat())

		_, err = charsheet.BuildUser(charsheet.LayoutSectioned)(root)
		assert.ErrorIs(t, err, form.ErrPathNotFound)
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got := charsheet.Normalize(charsheet.User{
		FirstName: "  race ",
		LastName:  "UNDERWOOD",
		Address:   " 12 Main Street ",
		Emails: []charsheet.UserEmail{
			{Email: " Race.Underwood@Agvance.NET ", IsPrimary: true},
			{Email: "  "},
		},
		PhoneNumbers: []charsheet.UserPhone{{Phone: " 555-123-4567 "}},
		Class:        charsheet.CharacterClass{Class: "Bard", Level: 3},
	})

	assert.Equal(t, "Race", got.FirstName)
	assert.Equal(t, "Underwood", got.LastName)
	assert.Equal(t, "12 Main Street", got.Address)
	assert.Equal(t, []charsheet.UserEmail{{Email: "race.underwood@agvance.net", IsPrimary: true}}, got.Emails)
	assert.Equal(t, []charsheet.UserPhone{{Phone: "555-123-4567"}}, got.PhoneNumbers)
	assert.Equal(t, charsheet.CharacterClass{Class: "Bard", Level: 3}, got.Class)
}
