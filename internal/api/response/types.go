package response

import (
	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/services/shared"
)

// Health is the response of the health check
type Health struct {
	Status string `json:"status"`
}

// ArmourList is a list of armour
type ArmourList struct {
	Armour []model.Armour `json:"armour"`
	Count  int            `json:"count"`
}

// NewArmourList wraps armour in an ArmourList
func NewArmourList(armour []model.Armour) ArmourList {
	return ArmourList{Armour: armour, Count: len(armour)}
}

// ArmourByType maps armour categories to their armour
type ArmourByType map[model.ArmourCategory][]model.Armour

// ArmourDescription is the rules text of one armour
type ArmourDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WeaponList is a list of weapons
type WeaponList struct {
	Weapons []model.Weapon `json:"weapons"`
	Count   int            `json:"count"`
}

// NewWeaponList wraps weapons in a WeaponList
func NewWeaponList(weapons []model.Weapon) WeaponList {
	return WeaponList{Weapons: weapons, Count: len(weapons)}
}

// WeaponTable is the weapon catalogue as display rows
type WeaponTable struct {
	Rows []model.WeaponTableRow `json:"rows"`
}

// WeaponsByType maps weapon categories to their weapons
type WeaponsByType map[model.WeaponCategory][]model.Weapon

// WeaponProperties lists the property rules
type WeaponProperties struct {
	Properties []model.WeaponProperty `json:"properties"`
}

// EquipmentSearch is the result of searching both catalogues
type EquipmentSearch = shared.SearchResult

// EquipmentByType is both catalogues grouped by category
type EquipmentByType = shared.EquipmentByType

// EquipmentCosts is the price list of both catalogues
type EquipmentCosts = shared.EquipmentCosts

// ItemCost is one entry of the price list
type ItemCost = shared.ItemCost
