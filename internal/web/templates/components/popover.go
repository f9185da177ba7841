package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/armoury/internal/services/formatting"
)

// PopoverSection is one heading and its rules text
type PopoverSection struct {
	Heading string
	Text    string
}

// InfoPopover renders the popover body: a close button then each section,
// with one paragraph per line of text.
func InfoPopover(sections ...PopoverSection) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<button class="destructive" popovertarget="info-popover" popovertargetaction="hide">&#10006;</button>`)
		for _, s := range sections {
			h.raw(`<div><h2>`)
			h.text(formatting.ToTitleCase(s.Heading))
			h.raw(`</h2>`)
			for _, line := range strings.Split(s.Text, "\n") {
				h.raw(`<p>`)
				h.text(strings.TrimSpace(line))
				h.raw(`</p>`)
			}
			h.raw(`</div>`)
		}
		return h.err
	})
}

// Message renders a single paragraph
func Message(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<p>`)
		h.text(text)
		h.raw(`</p>`)
		return h.err
	})
}
