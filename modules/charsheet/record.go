package charsheet

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/charsheet/pkg/form"
)

// BuildUser returns the projection of a valid sheet tree into a normalized
// User. Collection entries keep their order.
func BuildUser(l Layout) form.ProjectFunc[User] {
	p := l.paths()
	return func(root form.Node) (User, error) {
		var errs []error
		str := func(path string) string {
			v, err := form.Get[string](root, path)
			errs = append(errs, err)
			return v
		}
		num := func(path string) int {
			v, err := form.Get[int](root, path)
			errs = append(errs, err)
			return v
		}

		u := User{
			FirstName: str(p.firstName),
			LastName:  str(p.lastName),
			Address:   str(p.address),
		}

		emails, err := entries(root, EmailsCollection, "email")
		errs = append(errs, err)
		for _, e := range emails {
			u.Emails = append(u.Emails, UserEmail{Email: e.value, IsPrimary: e.primary})
		}

		phones, err := entries(root, PhonesCollection, "phoneNumber")
		errs = append(errs, err)
		for _, e := range phones {
			u.PhoneNumbers = append(u.PhoneNumbers, UserPhone{Phone: e.value, IsPrimary: e.primary})
		}

		classID := num(p.class)
		u.Class.Level = num(p.level)
		if err := errors.Join(errs...); err != nil {
			return User{}, err
		}

		class, ok := ClassByID(classID)
		if !ok {
			return User{}, fmt.Errorf("%w: %d", ErrUnknownClass, classID)
		}
		u.Class.Class = class.Name

		return Normalize(u), nil
	}
}

type entry struct {
	value   string
	primary bool
}

func entries(root form.Node, collection, child string) ([]entry, error) {
	c, err := form.ResolveCollection(root, collection)
	if err != nil {
		return nil, err
	}
	out := make([]entry, 0, c.Len())
	for _, item := range c.Items() {
		value, err := form.Get[string](item, child)
		if err != nil {
			return nil, err
		}
		primary, err := form.Get[bool](item, "isPrimary")
		if err != nil {
			return nil, err
		}
		out = append(out, entry{value: value, primary: primary})
	}
	return out, nil
}

// Normalize trims every string, title-cases names and lowercases e-mail
// addresses. Empty optional entries are dropped.
func Normalize(u User) User {
	title := cases.Title(language.English)

	out := User{
		FirstName: title.String(strings.TrimSpace(u.FirstName)),
		LastName:  title.String(strings.TrimSpace(u.LastName)),
		Address:   strings.TrimSpace(u.Address),
		Class: CharacterClass{
			Class: strings.TrimSpace(u.Class.Class),
			Level: u.Class.Level,
		},
		Emails:       []UserEmail{},
		PhoneNumbers: []UserPhone{},
	}
	for _, e := range u.Emails {
		if addr := canonicalEmail(e.Email); addr != "" {
			out.Emails = append(out.Emails, UserEmail{Email: addr, IsPrimary: e.IsPrimary})
		}
	}
	for _, p := range u.PhoneNumbers {
		if phone := strings.TrimSpace(p.Phone); phone != "" {
			out.PhoneNumbers = append(out.PhoneNumbers, UserPhone{Phone: phone, IsPrimary: p.IsPrimary})
		}
	}
	return out
}
