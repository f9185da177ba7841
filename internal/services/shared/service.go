// Package shared combines the armour and weapon catalogues for views that span both.
package shared

import (
	"context"
	"strings"

	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/services/armour"
	"github.com/mcoot/armoury/internal/services/weapon"
)

// Tab names understood by GetTabData
const (
	TabArmour  = "armour"
	TabWeapons = "weapons"
)

// SearchResult holds the matches of an equipment search
type SearchResult struct {
	Armour  []model.Armour `json:"armour"`
	Weapons []model.Weapon `json:"weapons"`
}

// TabData is the content of one tab. At most one field is set.
type TabData struct {
	Armour  []model.Armour
	Weapons []model.WeaponTableRow
}

// EquipmentByType holds both catalogues grouped by category
type EquipmentByType struct {
	Armour  map[model.ArmourCategory][]model.Armour `json:"armour_by_type"`
	Weapons map[model.WeaponCategory][]model.Weapon `json:"weapons_by_type"`
}

// ItemCost is an item name with its price
type ItemCost struct {
	Name string     `json:"name"`
	Cost model.Cost `json:"cost"`
}

// EquipmentCosts lists the price of every item
type EquipmentCosts struct {
	Armour  []ItemCost `json:"armour_costs"`
	Weapons []ItemCost `json:"weapon_costs"`
}

// Service coordinates queries across the armour and weapon services
type Service struct {
	armour  *armour.Service
	weapons *weapon.Service
}

// New creates a new shared Service
func New(armourService *armour.Service, weaponService *weapon.Service) *Service {
	return &Service{armour: armourService, weapons: weaponService}
}

// SearchEquipmentByName searches armour and weapons by name
func (s *Service) SearchEquipmentByName(ctx context.Context, name string) (*SearchResult, error) {
	armours, err := s.armour.SearchArmourByName(ctx, name)
	if err != nil {
		return nil, err
	}
	weapons, err := s.weapons.SearchWeaponsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Armour: armours, Weapons: weapons}, nil
}

// GetTabData returns the data shown on the named tab, ignoring case.
// Unknown tabs yield empty TabData.
func (s *Service) GetTabData(ctx context.Context, tab string) (TabData, error) {
	switch strings.ToLower(tab) {
	case TabArmour:
		armours, err := s.armour.GetAllArmour(ctx)
		if err != nil {
			return TabData{}, err
		}
		return TabData{Armour: armours}, nil
	case TabWeapons:
		rows, err := s.weapons.GetAllWeaponsForTable(ctx)
		if err != nil {
			return TabData{}, err
		}
		return TabData{Weapons: rows}, nil
	default:
		return TabData{}, nil
	}
}

func (s *Service) GetAllEquipmentByType(ctx context.Context) (*EquipmentByType, error) {
	armours, err := s.armour.GetArmourByType(ctx)
	if err != nil {
		return nil, err
	}
	weapons, err := s.weapons.GetWeaponsByType(ctx)
	if err != nil {
		return nil, err
	}
	return &EquipmentByType{Armour: armours, Weapons: weapons}, nil
}

// GetEquipmentCosts lists every item with its cost, armour first
func (s *Service) GetEquipmentCosts(ctx context.Context) (*EquipmentCosts, error) {
	armours, err := s.armour.GetAllArmour(ctx)
	if err != nil {
		return nil, err
	}
	weapons, err := s.weapons.GetAllWeapons(ctx)
	if err != nil {
		return nil, err
	}

	costs := &EquipmentCosts{
		Armour:  make([]ItemCost, 0, len(armours)),
		Weapons: make([]ItemCost, 0, len(weapons)),
	}
	for _, a := range armours {
		costs.Armour = append(costs.Armour, ItemCost{Name: a.Name, Cost: a.Cost})
	}
	for _, w := range weapons {
		costs.Weapons = append(costs.Weapons, ItemCost{Name: w.Name, Cost: w.Cost})
	}
	return costs, nil
}
