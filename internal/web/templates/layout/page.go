// Package layout renders full HTML documents around page content.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTMXScript is the htmx build the pages load
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// PageData holds the data shared by every page
type PageData struct {
	Title string
	// Stylesheet is omitted when empty
	Stylesheet string
}

// Page wraps body in the document shell. The shell carries the shared
// #info-popover element every popover button targets.
func Page(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(data.Title) + `</title>` +
			`<script src="` + HTMXScript + `"></script>`
		if data.Stylesheet != "" {
			head += `<link rel="stylesheet" href="` + templ.EscapeString(data.Stylesheet) + `">`
		}
		head += `</head><body><header><h1>` + templ.EscapeString(data.Title) + `</h1></header><main>`

		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><div id="info-popover" popover></div></body></html>`)
		return err
	})
}

// TabContainer loads the tab list into itself once the page has loaded
func TabContainer(src string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div id="tabs" hx-get="`+templ.EscapeString(src)+`" hx-trigger="load" hx-swap="innerHTML"></div>`)
		return err
	})
}
