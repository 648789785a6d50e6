package views

import (
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	return component.Render(r.Context(), w)
}

// buf wraps an io.Writer so component bodies can emit markup without
// checking an error on every write. The first failure sticks.
type buf struct {
	w   io.Writer
	err error
}

func (b *buf) f(format string, args ...any) {
	if b.err != nil {
		return
	}
	_, b.err = fmt.Fprintf(b.w, format, args...)
}

func (b *buf) s(s string) {
	if b.err != nil {
		return
	}
	_, b.err = io.WriteString(b.w, s)
}

func esc(s string) string {
	return templ.EscapeString(s)
}
