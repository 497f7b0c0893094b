package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Loading renders the page loading indicator.
func Loading() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="loading-bar" data-loading-bar><span class="loading loading-ring loading-md"></span></div>`)
		return err
	})
}
