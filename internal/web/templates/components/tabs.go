package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/services/formatting"
)

// TabHeadings are the tabs shown in the tab list, in order
var TabHeadings = []string{"Armour", "Weapons"}

// Tabs renders the tab list with selected highlighted, followed by content
func Tabs(baseRoute, selected string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="tab-list" role="tablist">`)
		for _, heading := range TabHeadings {
			isSelected := heading == selected
			h.raw(`<button`)
			h.attr("hx-get", baseRoute+formatting.ToURISafe(heading))
			h.raw(` hx-target="#tabs"`)
			if isSelected {
				h.raw(` class="selected" aria-selected="true"`)
			} else {
				h.raw(` class="" aria-selected="false"`)
			}
			h.raw(` role="tab" aria-controls="tab-content">`)
			h.text(heading)
			h.raw(`</button>`)
		}
		h.raw(`</div><div id="tab-content" role="tabpanel" class="tab-content">`)
		if h.err != nil {
			return h.err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</div>`)
		return h.err
	})
}

// TabContent renders the panel for a tab. A nil slice means the data is still loading.
func TabContent(tab string, armour []model.Armour, weapons []model.WeaponTableRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		var table templ.Component

		switch strings.ToLower(tab) {
		case "armour":
			if armour == nil {
				h.raw(`<div>Loading armour data...</div>`)
				return h.err
			}
			h.raw(`<div class="tab-panel"><h2>Armour</h2>`)
			table = ArmourTable(armour)
		case "weapons":
			if weapons == nil {
				h.raw(`<div>Loading weapon data...</div>`)
				return h.err
			}
			h.raw(`<div class="tab-panel"><h2>Weapons</h2>`)
			table = WeaponTable(weapons)
		default:
			h.raw(`<div class="tab-panel">Select a tab to view data</div>`)
			return h.err
		}

		if h.err != nil {
			return h.err
		}
		if err := table.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</div>`)
		return h.err
	})
}
