package charsheet

import (
	"fmt"

	"github.com/dmitrymomot/charsheet/pkg/form"
	"github.com/dmitrymomot/charsheet/pkg/validator"
)

// Layout selects how the sheet's fields are grouped.
type Layout string

const (
	// LayoutFlat keeps every field at the root.
	LayoutFlat Layout = "flat"
	// LayoutSectioned nests names and address under "personal" and class and
	// level under "characterInfo".
	LayoutSectioned Layout = "sectioned"
)

// Collection names, identical in both layouts.
const (
	EmailsCollection = "emails"
	PhonesCollection = "phoneNumbers"
)

const (
	nameMaxLength    = 25
	addressMaxLength = 75
	emailMinLength   = 3
	minLevel         = 1
	maxLevel         = 20
)

// ParseLayout validates a layout name.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(s); l {
	case LayoutFlat, LayoutSectioned:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
}

type fieldPaths struct {
	firstName string
	lastName  string
	address   string
	class     string
	level     string
}

func (l Layout) paths() fieldPaths {
	if l == LayoutSectioned {
		return fieldPaths{
			firstName: "personal.firstName",
			lastName:  "personal.lastName",
			address:   "personal.address",
			class:     "characterInfo.class",
			level:     "characterInfo.level",
		}
	}
	return fieldPaths{
		firstName: "firstName",
		lastName:  "lastName",
		address:   "address",
		class:     "class",
		level:     "level",
	}
}

// ClassPath is the path of the class field.
func (l Layout) ClassPath() string { return l.paths().class }

type sheetConfig struct {
	directory  EmailDirectory
	trigger    form.Trigger
	emailGuard form.Guard
	phoneGuard form.Guard
}

// SheetOption configures NewSheet.
type SheetOption func(*sheetConfig)

// WithDirectory enables the duplicate e-mail check against d.
func WithDirectory(d EmailDirectory) SheetOption {
	return func(c *sheetConfig) { c.directory = d }
}

// WithLookupTrigger sets when the duplicate e-mail check runs. Defaults to
// blur.
func WithLookupTrigger(t form.Trigger) SheetOption {
	return func(c *sheetConfig) { c.trigger = t }
}

// WithEmailGuard replaces the removal guard of the emails collection.
func WithEmailGuard(g form.Guard) SheetOption {
	return func(c *sheetConfig) {
		if g != nil {
			c.emailGuard = g
		}
	}
}

// WithPhoneGuard replaces the removal guard of the phone numbers collection.
func WithPhoneGuard(g form.Guard) SheetOption {
	return func(c *sheetConfig) {
		if g != nil {
			c.phoneGuard = g
		}
	}
}

// NewSheet builds the field tree for layout. Every collection entry is built
// from the same template; the primary entry of each collection then gets the
// required rule added in front of its rules.
// By default an entry cannot be removed while it is still required.
func NewSheet(l Layout, opts ...SheetOption) (*form.Group, error) {
	cfg := &sheetConfig{
		trigger:    form.OnBlur,
		emailGuard: form.UnlessRule("email", validator.RuleRequired),
		phoneGuard: form.UnlessRule("phoneNumber", validator.RuleRequired),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	emails := form.NewCollection(func() form.Node { return emailEntry(cfg) },
		form.WithItems(1), form.WithGuard(cfg.emailGuard))
	phones := form.NewCollection(phoneEntry,
		form.WithItems(1), form.WithGuard(cfg.phoneGuard))
	if err := requirePrimary(emails, "email"); err != nil {
		return nil, err
	}
	if err := requirePrimary(phones, "phoneNumber"); err != nil {
		return nil, err
	}

	switch l {
	case LayoutFlat:
		return form.NewGroup(
			form.Child("firstName", nameField(nameMaxLength)),
			form.Child("lastName", nameField(nameMaxLength)),
			form.Child("address", nameField(addressMaxLength)),
			form.Child(EmailsCollection, emails),
			form.Child(PhonesCollection, phones),
			form.Child("class", classField()),
			form.Child("level", levelField()),
		), nil
	case LayoutSectioned:
		return form.NewGroup(
			form.Child("personal", form.NewGroup(
				form.Child("firstName", nameField(nameMaxLength)),
				form.Child("lastName", nameField(nameMaxLength)),
				form.Child("address", nameField(addressMaxLength)),
			)),
			form.Child(EmailsCollection, emails),
			form.Child(PhonesCollection, phones),
			form.Child("characterInfo", form.NewGroup(
				form.Child("class", classField()),
				form.Child("level", levelField()),
			)),
		), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, string(l))
	}
}

var plainText = validator.MustPattern(validator.NoSpecialCharacters)

func nameField(maxLength int) *form.Field[string] {
	return form.NewField("", form.WithRules(
		validator.Required[string](),
		plainText,
		validator.MaxLength[string](maxLength),
	))
}

func classField() *form.Field[int] {
	return form.NewField(0, form.WithRules(
		validator.Required[int](),
		validator.Min(1),
		validator.Max(len(classes)),
	))
}

func levelField() *form.Field[int] {
	return form.NewField(0, form.WithRules(
		validator.Required[int](),
		validator.Min(minLevel),
		validator.Max(maxLevel),
	))
}

func emailEntry(cfg *sheetConfig) form.Node {
	opts := []form.FieldOption[string]{
		form.WithRules(validator.Email(), validator.MinLength[string](emailMinLength)),
		form.WithTrigger[string](cfg.trigger),
	}
	if cfg.directory != nil {
		opts = append(opts, form.WithAsync(UniqueEmail(cfg.directory)))
	}
	return form.NewGroup(
		form.Child("email", form.NewField("", opts...)),
		form.Child("isPrimary", form.NewField(false)),
	)
}

func phoneEntry() form.Node {
	return form.NewGroup(
		form.Child("phoneNumber", form.NewField("", form.WithRules(validator.PhoneNumber()))),
		form.Child("isPrimary", form.NewField(false)),
	)
}

// requirePrimary makes the value of the first entry of c required.
func requirePrimary(c *form.Collection, field string) error {
	entry, err := c.At(0)
	if err != nil {
		return err
	}
	f, err := form.ResolveField(entry, field)
	if err != nil {
		return err
	}
	return f.MutateRules(form.PrependRule(validator.Required[string]()))
}
