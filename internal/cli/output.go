package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mcoot/armoury/internal/api/response"
	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/services/formatting"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	case response.ArmourList:
		o.printArmourList(v.Armour)
	case model.Armour:
		o.printArmour(v)
	case response.ArmourDescription:
		o.printSection(formatting.ToTitleCase(v.Name), v.Description)
	case response.ArmourByType:
		o.printArmourByType(v)
	case response.WeaponList:
		o.printWeaponList(v.Weapons)
	case model.Weapon:
		o.printWeapon(v)
	case response.WeaponTable:
		o.printWeaponRows(v.Rows)
	case response.WeaponsByType:
		o.printWeaponsByType(v)
	case response.WeaponProperties:
		for i, p := range v.Properties {
			if i > 0 {
				fmt.Fprintln(o.w)
			}
			o.printSection(formatting.ToTitleCase(string(p.Name)), p.Description)
		}
	case model.WeaponProperty:
		o.printSection(formatting.ToTitleCase(string(v.Name)), v.Description)
	case response.EquipmentSearch:
		o.printHeading("Armour")
		o.printArmourList(v.Armour)
		o.printHeading("Weapons")
		o.printWeaponList(v.Weapons)
	case response.EquipmentCosts:
		o.printHeading("Armour")
		o.printCosts(v.Armour)
		o.printHeading("Weapons")
		o.printCosts(v.Weapons)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printHeading(text string) {
	fmt.Fprintln(o.w, headingStyle.Render(text))
}

// printSection prints a heading followed by one line per paragraph of text
func (o *Output) printSection(heading, text string) {
	o.printHeading(heading)
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(o.w, strings.TrimSpace(line))
	}
}

func (o *Output) printTable(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(o.w, t.String())
}

func (o *Output) printArmourList(armours []model.Armour) {
	if len(armours) == 0 {
		fmt.Fprintln(o.w, "No armour found")
		return
	}

	rows := make([][]string, 0, len(armours))
	for _, a := range armours {
		rows = append(rows, []string{
			formatting.ToTitleCase(a.Name),
			string(a.Category),
			string(a.Cost),
			a.ArmourClass,
			orDash(a.Strength),
			orDash(string(a.Stealth)),
			string(a.Weight),
		})
	}
	o.printTable([]string{"Name", "Type", "Cost", "Armour Class", "Strength", "Stealth", "Weight"}, rows)
}

func (o *Output) printArmour(a model.Armour) {
	o.printHeading(formatting.ToTitleCase(a.Name))
	fmt.Fprintf(o.w, "Type: %s\n", a.Category)
	fmt.Fprintf(o.w, "Cost: %s\n", a.Cost)
	fmt.Fprintf(o.w, "Armour Class: %s\n", a.ArmourClass)
	if a.Strength != "" {
		fmt.Fprintf(o.w, "Strength: %s\n", a.Strength)
	}
	if a.Stealth != model.StealthNone {
		fmt.Fprintf(o.w, "Stealth: %s\n", a.Stealth)
	}
	fmt.Fprintf(o.w, "Weight: %s\n", a.Weight)
}

func (o *Output) printArmourByType(grouped response.ArmourByType) {
	for _, category := range []model.ArmourCategory{model.ArmourLight, model.ArmourMedium, model.ArmourHeavy, model.ArmourShield} {
		armours, ok := grouped[category]
		if !ok {
			continue
		}
		o.printHeading(string(category))
		for _, a := range armours {
			fmt.Fprintf(o.w, "  - %s\n", formatting.ToTitleCase(a.Name))
		}
	}
}

func (o *Output) printWeaponList(weapons []model.Weapon) {
	if len(weapons) == 0 {
		fmt.Fprintln(o.w, "No weapons found")
		return
	}

	rows := make([]model.WeaponTableRow, 0, len(weapons))
	for _, w := range weapons {
		rows = append(rows, model.ToTableRow(w))
	}
	o.printWeaponRows(rows)
}

func (o *Output) printWeaponRows(rows []model.WeaponTableRow) {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		damage := "-"
		if r.Damage != nil {
			damage = *r.Damage
		}
		weight := "-"
		if r.Weight != nil {
			weight = string(*r.Weight)
		}
		cells = append(cells, []string{
			r.Name,
			string(r.Category),
			string(r.Cost),
			damage,
			weight,
			orDash(strings.Join(r.Properties, ", ")),
		})
	}
	o.printTable([]string{"Name", "Type", "Cost", "Damage", "Weight", "Properties"}, cells)
}

func (o *Output) printWeapon(w model.Weapon) {
	row := model.ToTableRow(w)

	o.printHeading(w.Name)
	fmt.Fprintf(o.w, "Type: %s\n", w.Category)
	fmt.Fprintf(o.w, "Cost: %s\n", w.Cost)
	if row.Damage != nil {
		fmt.Fprintf(o.w, "Damage: %s\n", *row.Damage)
	}
	if row.Weight != nil {
		fmt.Fprintf(o.w, "Weight: %s\n", *row.Weight)
	}
	if len(row.Properties) > 0 {
		fmt.Fprintf(o.w, "Properties: %s\n", strings.Join(row.Properties, ", "))
	}
}

func (o *Output) printWeaponsByType(grouped response.WeaponsByType) {
	categories := []model.WeaponCategory{
		model.WeaponSimpleMelee,
		model.WeaponSimpleRanged,
		model.WeaponMartialMelee,
		model.WeaponMartialRanged,
	}
	for _, category := range categories {
		weapons, ok := grouped[category]
		if !ok {
			continue
		}
		o.printHeading(string(category))
		for _, w := range weapons {
			fmt.Fprintf(o.w, "  - %s\n", w.Name)
		}
	}
}

func (o *Output) printCosts(costs []response.ItemCost) {
	rows := make([][]string, 0, len(costs))
	for _, c := range costs {
		rows = append(rows, []string{formatting.ToTitleCase(c.Name), string(c.Cost)})
	}
	o.printTable([]string{"Name", "Cost"}, rows)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
