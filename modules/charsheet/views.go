package charsheet

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Element ids patched on DataStar requests.
const (
	ErrorListID = "form-errors"
	RemarkID    = "class-remark"
)

// ErrorList renders the flat error list.
func ErrorList(errs []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<ul id="%s">`, ErrorListID); err != nil {
			return err
		}
		for _, e := range errs {
			if _, err := fmt.Fprintf(w, "<li>%s</li>", templ.EscapeString(e)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}

// Remark renders the class remark.
func Remark(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="%s">%s</p>`, RemarkID, templ.EscapeString(text))
		return err
	})
}
