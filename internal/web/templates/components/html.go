// Package components renders the HTML fragments served to the htmx front end.
package components

import (
	"io"

	"github.com/a-h/templ"
)

// html writes markup and escaped text, keeping the first write error
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// popoverButton opens the shared info popover with the fragment at path
func (h *html) popoverButton(path, label string) {
	h.raw(`<button class="info-popover"`)
	h.attr("hx-get", path)
	h.raw(` hx-target="#info-popover" hx-swap="innerHTML" popovertarget="info-popover" popovertargetaction="show">`)
	h.text(label)
	h.raw(`</button>`)
}

func (h *html) headings(headings ...string) {
	h.raw(`<thead><tr>`)
	for _, heading := range headings {
		h.raw(`<th>`)
		h.text(heading)
		h.raw(`</th>`)
	}
	h.raw(`</tr></thead>`)
}

func (h *html) cell(value string) {
	h.raw(`<td>`)
	h.text(value)
	h.raw(`</td>`)
}
