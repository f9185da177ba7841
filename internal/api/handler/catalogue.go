package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/armoury/internal/api/apierr"
	"github.com/mcoot/armoury/internal/api/response"
	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/services/armour"
	"github.com/mcoot/armoury/internal/services/shared"
	"github.com/mcoot/armoury/internal/services/weapon"
	"github.com/mcoot/armoury/internal/storage"
)

// Weapon category filters accepted by ListWeapons
const (
	CategorySimple  = "simple"
	CategoryMartial = "martial"
	CategoryMelee   = "melee"
	CategoryRanged  = "ranged"
)

// CatalogueHandler handles armour, weapon and equipment endpoints
type CatalogueHandler struct {
	armourService *armour.Service
	weaponService *weapon.Service
	sharedService *shared.Service
	logger        *slog.Logger
}

// NewCatalogueHandler creates a new CatalogueHandler
func NewCatalogueHandler(armourService *armour.Service, weaponService *weapon.Service, sharedService *shared.Service, logger *slog.Logger) *CatalogueHandler {
	return &CatalogueHandler{
		armourService: armourService,
		weaponService: weaponService,
		sharedService: sharedService,
		logger:        logger,
	}
}

// ListArmour handles GET /armour
func (h *CatalogueHandler) ListArmour(w http.ResponseWriter, r *http.Request) {
	armours, err := h.armourService.GetAllArmour(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewArmourList(armours))
}

// ArmourByType handles GET /armour/by-type
func (h *CatalogueHandler) ArmourByType(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.armourService.GetArmourByType(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ArmourByType(grouped))
}

// SearchArmour handles GET /armour/search?name=
func (h *CatalogueHandler) SearchArmour(w http.ResponseWriter, r *http.Request) {
	name, err := nameQuery(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	armours, err := h.armourService.SearchArmourByName(r.Context(), name)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewArmourList(armours))
}

// GetArmour handles GET /armour/{id}
func (h *CatalogueHandler) GetArmour(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	a, err := h.armourService.GetArmourByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if a == nil {
		writeError(w, h.logger, model.ErrArmourNotFound)
		return
	}
	response.JSON(w, http.StatusOK, a)
}

// DescribeArmour handles GET /armour/{name}/description
func (h *CatalogueHandler) DescribeArmour(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	description, ok, err := h.armourService.GetArmourDescription(r.Context(), name)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if !ok {
		writeError(w, h.logger, model.ErrArmourNotFound)
		return
	}
	response.JSON(w, http.StatusOK, response.ArmourDescription{Name: name, Description: description})
}

// ListWeapons handles GET /weapons with optional category and property filters
func (h *CatalogueHandler) ListWeapons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var (
		weapons []model.Weapon
		err     error
	)
	switch category := strings.ToLower(query.Get("category")); category {
	case "":
		weapons, err = h.weaponService.GetAllWeapons(ctx)
	case CategorySimple:
		weapons, err = h.weaponService.GetSimpleWeapons(ctx)
	case CategoryMartial:
		weapons, err = h.weaponService.GetMartialWeapons(ctx)
	case CategoryMelee:
		weapons, err = h.weaponService.GetMeleeWeapons(ctx)
	case CategoryRanged:
		weapons, err = h.weaponService.GetRangedWeapons(ctx)
	default:
		writeError(w, h.logger, apierr.NewInvalidRequestError("category must be one of simple, martial, melee, ranged"))
		return
	}
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if p := query.Get("property"); p != "" {
		property := model.WeaponPropertyType(strings.ToLower(p))
		if !property.IsValid() {
			writeError(w, h.logger, apierr.NewInvalidRequestError("unknown weapon property: "+p))
			return
		}
		filtered := []model.Weapon{}
		for _, wpn := range weapons {
			if wpn.HasProperty(property) {
				filtered = append(filtered, wpn)
			}
		}
		weapons = filtered
	}

	response.JSON(w, http.StatusOK, response.NewWeaponList(weapons))
}

// WeaponTable handles GET /weapons/table
func (h *CatalogueHandler) WeaponTable(w http.ResponseWriter, r *http.Request) {
	rows, err := h.weaponService.GetAllWeaponsForTable(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.WeaponTable{Rows: rows})
}

// WeaponsByType handles GET /weapons/by-type
func (h *CatalogueHandler) WeaponsByType(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.weaponService.GetWeaponsByType(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.WeaponsByType(grouped))
}

// SearchWeapons handles GET /weapons/search?name=
func (h *CatalogueHandler) SearchWeapons(w http.ResponseWriter, r *http.Request) {
	name, err := nameQuery(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	weapons, err := h.weaponService.SearchWeaponsByName(r.Context(), name)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewWeaponList(weapons))
}

// GetWeapon handles GET /weapons/{id}
func (h *CatalogueHandler) GetWeapon(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	wpn, err := h.weaponService.GetWeaponByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if wpn == nil {
		writeError(w, h.logger, model.ErrWeaponNotFound)
		return
	}
	response.JSON(w, http.StatusOK, wpn)
}

// ListProperties handles GET /weapons/properties
func (h *CatalogueHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.weaponService.GetAllWeaponProperties(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.WeaponProperties{Properties: properties})
}

// GetProperty handles GET /weapons/properties/{name}
func (h *CatalogueHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.weaponService.GetWeaponPropertyByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if property == nil {
		writeError(w, h.logger, model.ErrPropertyNotFound)
		return
	}
	response.JSON(w, http.StatusOK, property)
}

// SearchEquipment handles GET /equipment/search?name=
func (h *CatalogueHandler) SearchEquipment(w http.ResponseWriter, r *http.Request) {
	name, err := nameQuery(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.sharedService.SearchEquipmentByName(r.Context(), name)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// EquipmentByType handles GET /equipment/by-type
func (h *CatalogueHandler) EquipmentByType(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.sharedService.GetAllEquipmentByType(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, grouped)
}

// EquipmentCosts handles GET /equipment/costs
func (h *CatalogueHandler) EquipmentCosts(w http.ResponseWriter, r *http.Request) {
	costs, err := h.sharedService.GetEquipmentCosts(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, costs)
}

func nameQuery(r *http.Request) (string, error) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		return "", apierr.NewInvalidRequestError("name query parameter is required")
	}
	return name, nil
}

func pathID(r *http.Request) (storage.ID, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, apierr.NewInvalidRequestError("id must be a positive integer")
	}
	return storage.ID(id), nil
}
