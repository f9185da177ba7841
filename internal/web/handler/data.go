package handler

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/services/armour"
	"github.com/mcoot/armoury/internal/services/formatting"
	"github.com/mcoot/armoury/internal/services/shared"
	"github.com/mcoot/armoury/internal/services/weapon"
	"github.com/mcoot/armoury/internal/web/templates/components"
)

// TabsRoute is the prefix the tab buttons load from
const TabsRoute = "/data/tabs/"

var rangedProperty = regexp.MustCompile(`(?i)(ammunition|thrown)`)

// DataHandler serves the table, tab and popover fragments.
// Missing catalogue entries render a message, never an error status.
type DataHandler struct {
	armourService *armour.Service
	weaponService *weapon.Service
	sharedService *shared.Service
	logger        *slog.Logger
}

// NewDataHandler creates a new DataHandler
func NewDataHandler(armourService *armour.Service, weaponService *weapon.Service, sharedService *shared.Service, logger *slog.Logger) *DataHandler {
	return &DataHandler{
		armourService: armourService,
		weaponService: weaponService,
		sharedService: sharedService,
		logger:        logger,
	}
}

// ArmourTable renders every armour
func (h *DataHandler) ArmourTable(w http.ResponseWriter, r *http.Request) {
	armours, err := h.armourService.GetAllArmour(r.Context())
	if err != nil {
		serverError(w, h.logger, "failed to load armour", err)
		return
	}
	render(w, r, components.ArmourTable(armours))
}

// ArmourDescription renders the description popover for a hyphenated armour name
func (h *DataHandler) ArmourDescription(w http.ResponseWriter, r *http.Request) {
	name := formatting.FromURISafe(mux.Vars(r)["name"])

	description, ok, err := h.armourService.GetArmourDescription(r.Context(), name)
	if err != nil {
		serverError(w, h.logger, "failed to load armour description", err)
		return
	}
	if !ok {
		render(w, r, components.Message("No description found"))
		return
	}

	render(w, r, components.InfoPopover(components.PopoverSection{Heading: name, Text: description}))
}

// WeaponTable renders every weapon as a display row
func (h *DataHandler) WeaponTable(w http.ResponseWriter, r *http.Request) {
	rows, err := h.weaponService.GetAllWeaponsForTable(r.Context())
	if err != nil {
		serverError(w, h.logger, "failed to load weapons", err)
		return
	}
	render(w, r, components.WeaponTable(rows))
}

// WeaponProperty renders the rules popover for a property slug.
// The ammunition-range and thrown-range slugs show the tag followed by the range rules.
func (h *DataHandler) WeaponProperty(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["property"]

	names := []string{slug}
	if m := rangedProperty.FindStringSubmatch(slug); m != nil {
		names = []string{strings.ToLower(m[1]), string(model.PropertyRange)}
	}

	sections := make([]components.PopoverSection, 0, len(names))
	for _, name := range names {
		property, err := h.weaponService.GetWeaponPropertyByName(r.Context(), name)
		if err != nil {
			serverError(w, h.logger, "failed to load weapon property", err)
			return
		}
		if property == nil {
			render(w, r, components.Message("Property not found"))
			return
		}
		sections = append(sections, components.PopoverSection{
			Heading: string(property.Name),
			Text:    property.Description,
		})
	}

	render(w, r, components.InfoPopover(sections...))
}

// Tabs renders the tab list with the armour tab selected
func (h *DataHandler) Tabs(w http.ResponseWriter, r *http.Request) {
	h.renderTab(w, r, "Armour")
}

// Tab renders the tab list with the requested tab selected
func (h *DataHandler) Tab(w http.ResponseWriter, r *http.Request) {
	h.renderTab(w, r, formatting.ToTitleCase(formatting.FromURISafe(mux.Vars(r)["tab"])))
}

func (h *DataHandler) renderTab(w http.ResponseWriter, r *http.Request, tab string) {
	data, err := h.sharedService.GetTabData(r.Context(), tab)
	if err != nil {
		serverError(w, h.logger, "failed to load tab data", err)
		return
	}

	render(w, r, components.Tabs(TabsRoute, tab, components.TabContent(tab, data.Armour, data.Weapons)))
}
