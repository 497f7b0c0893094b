package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pietrodev07/RoadPlan/internal/web/platform/prefs"
)

// Header renders the shell navigation chrome.
func Header(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<header class="shell-header"><a class="brand" href="/">%s</a>`+
				`<nav><a href="/">%s</a><a href="/about">%s</a></nav>`+
				themePickerMarkup+
				`</header>`,
			templ.EscapeString(page.AppName),
			templ.EscapeString(T(page.Loc, "layout.home")),
			templ.EscapeString(T(page.Loc, "layout.about")),
		)
		return err
	})
}

// themePickerMarkup posts the selection to the theme route; theme.js
// intercepts it client-side for an immediate swap.
const themePickerMarkup = `<form class="theme-picker" method="post" action="/theme" data-theme-picker>` +
	`<button name="theme" value="light" type="submit">Light</button>` +
	`<button name="theme" value="dark" type="submit">Dark</button>` +
	`<button name="theme" value="system" type="submit">System</button>` +
	`</form>`

// Footer renders the shell footer.
func Footer(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<footer class="shell-footer"><p>%s</p><small>%s</small></footer>`,
			templ.EscapeString(T(page.Loc, "shell.tagline")),
			templ.EscapeString(page.AppName),
		)
		return err
	})
}

// AppShell composes the application shell: an optional loading indicator,
// the header, the content slot supplied by the calling route, and the
// footer. The shell itself never branches on theme; the document element is
// the consumer that reads the distributed store.
func AppShell(opts ShellOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		theme := prefs.DefaultTheme
		if store, ok := prefs.FromContext(ctx); ok {
			theme = store.EffectiveTheme()
		}

		lang := opts.Page.Lang
		if lang == "" {
			lang = "en-US"
		}
		title := opts.Title
		if title == "" {
			title = opts.Page.AppName
		}

		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s" data-theme="%s"><head>`+
				`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title>`+
				`<link rel="stylesheet" href="/static/app.css">`+
				`</head><body>`,
			templ.EscapeString(lang),
			templ.EscapeString(string(theme)),
			templ.EscapeString(title),
		); err != nil {
			return err
		}

		if opts.LoadingBarEnabled {
			if err := Loading().Render(ctx, w); err != nil {
				return err
			}
		}
		if err := Header(opts.Page).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="shell-main">`); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}

		if err := Footer(opts.Page).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<script src="/static/theme.js" defer></script></body></html>`)
		return err
	})
}
