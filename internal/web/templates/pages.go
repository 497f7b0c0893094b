package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// HomePage renders the landing content slot.
func HomePage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="hero"><h1>%s</h1><p>%s</p></section>`,
			templ.EscapeString(page.AppName),
			templ.EscapeString(T(page.Loc, "shell.tagline")),
		)
		return err
	})
}

// AboutPage renders the about content slot.
func AboutPage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="about"><h1>%s</h1><p>%s</p></section>`,
			templ.EscapeString(T(page.Loc, "layout.about")),
			templ.EscapeString(page.AppName),
		)
		return err
	})
}
