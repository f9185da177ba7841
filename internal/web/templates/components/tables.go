package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/services/formatting"
)

// ArmourTable lists armour, each name opening its description
func ArmourTable(rows []model.Armour) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<table class="armour-table">`)
		h.headings("Name", "Type", "Cost", "Armour Class", "Stealth", "Strength", "Weight")
		h.raw(`<tbody>`)
		for _, a := range rows {
			h.raw(`<tr><td>`)
			h.popoverButton("/data/armour-description/"+formatting.ToURISafe(a.Name), formatting.ToTitleCase(a.Name))
			h.raw(`</td>`)
			h.cell(string(a.Category))
			h.cell(string(a.Cost))
			h.cell(a.ArmourClass)
			h.cell(string(a.Stealth))
			h.cell(a.Strength)
			h.cell(string(a.Weight))
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}

// WeaponTable lists weapon rows, each property opening its rules text
func WeaponTable(rows []model.WeaponTableRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<table class="weapon-table">`)
		h.headings("Name", "Type", "Cost", "Weight", "Damage", "Properties")
		h.raw(`<tbody>`)
		for _, row := range rows {
			h.raw(`<tr>`)
			h.cell(row.Name)
			h.cell(string(row.Category))
			h.cell(string(row.Cost))
			h.cell(deref(row.Weight))
			h.cell(deref(row.Damage))
			h.raw(`<td class="properties">`)
			for i, p := range row.Properties {
				label := p
				if i == 0 {
					label = formatting.ToTitleCase(p)
				}
				h.popoverButton("/data/weapon-property/"+formatting.ToURISafe(p), label)
				if i < len(row.Properties)-1 {
					h.raw(", ")
				}
			}
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}

func deref[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}
