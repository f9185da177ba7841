package model

import (
	"fmt"
	"slices"
)

// WeaponCategory classifies a weapon by proficiency and reach
type WeaponCategory string

const (
	WeaponSimpleMelee   WeaponCategory = "Simple Melee"
	WeaponSimpleRanged  WeaponCategory = "Simple Ranged"
	WeaponMartialMelee  WeaponCategory = "Martial Melee"
	WeaponMartialRanged WeaponCategory = "Martial Ranged"
)

// DamageType is the kind of damage a weapon deals
type DamageType string

const (
	DamageBludgeoning DamageType = "bludgeoning"
	DamagePiercing    DamageType = "piercing"
	DamageSlashing    DamageType = "slashing"
)

// WeaponPropertyType is one of the fixed weapon property tags
type WeaponPropertyType string

const (
	PropertyAmmunition WeaponPropertyType = "ammunition"
	PropertyFinesse    WeaponPropertyType = "finesse"
	PropertyHeavy      WeaponPropertyType = "heavy"
	PropertyLance      WeaponPropertyType = "lance"
	PropertyLight      WeaponPropertyType = "light"
	PropertyLoading    WeaponPropertyType = "loading"
	PropertyNet        WeaponPropertyType = "net"
	PropertyRange      WeaponPropertyType = "range"
	PropertyReach      WeaponPropertyType = "reach"
	PropertyThrown     WeaponPropertyType = "thrown"
	PropertyTwoHanded  WeaponPropertyType = "two-handed"
	PropertyVersatile  WeaponPropertyType = "versatile"
)

// AllWeaponPropertyTypes lists the property vocabulary in alphabetical order
var AllWeaponPropertyTypes = []WeaponPropertyType{
	PropertyAmmunition,
	PropertyFinesse,
	PropertyHeavy,
	PropertyLance,
	PropertyLight,
	PropertyLoading,
	PropertyNet,
	PropertyRange,
	PropertyReach,
	PropertyThrown,
	PropertyTwoHanded,
	PropertyVersatile,
}

// IsValid reports whether the tag belongs to the property vocabulary
func (p WeaponPropertyType) IsValid() bool {
	return slices.Contains(AllWeaponPropertyTypes, p)
}

// WeaponRange is a normal/long range pair in feet.
// Weapons hold a *WeaponRange so both distances are present or neither is.
type WeaponRange struct {
	Normal int `json:"normal"`
	Long   int `json:"long"`
}

func (r WeaponRange) String() string {
	return fmt.Sprintf("range %d/%d", r.Normal, r.Long)
}

// Weapon is a single weapon catalogue entry.
// Empty DamageDie, DamageType, Weight and VersatileDamageDie mean the value is absent.
type Weapon struct {
	Name               string               `json:"name"`
	Category           WeaponCategory       `json:"type"`
	Cost               Cost                 `json:"cost"`
	DamageDie          WeaponDamage         `json:"damage_die,omitempty"`
	DamageType         DamageType           `json:"damage_type,omitempty"`
	Weight             Weight               `json:"weight,omitempty"`
	Range              *WeaponRange         `json:"range,omitempty"`
	VersatileDamageDie Die                  `json:"versatile_damage_die,omitempty"`
	Properties         []WeaponPropertyType `json:"properties"`
}

// HasProperty reports whether the weapon carries the given tag
func (w Weapon) HasProperty(p WeaponPropertyType) bool {
	return slices.Contains(w.Properties, p)
}

// WeaponProperty is the rules text for one property tag
type WeaponProperty struct {
	Name        WeaponPropertyType `json:"name"`
	Description string             `json:"description"`
}

// WeaponTableRow is the display projection of a weapon.
// Damage and Weight are nil when the weapon has none.
type WeaponTableRow struct {
	Name       string         `json:"name"`
	Category   WeaponCategory `json:"type"`
	Cost       Cost           `json:"cost"`
	Weight     *Weight        `json:"weight"`
	Damage     *string        `json:"damage"`
	Properties []string       `json:"properties"`
}

// ToTableRow folds a weapon's damage, range and versatile attributes into display strings.
//
// Ammunition combined with a range is prepended without re-sorting, while thrown combined
// with a range is re-sorted into place. Both orderings are deliberate and covered by tests.
func ToTableRow(w Weapon) WeaponTableRow {
	var damage *string
	if w.DamageDie != "" && w.DamageType != "" {
		d := fmt.Sprintf("%s %s damage", w.DamageDie, w.DamageType)
		damage = &d
	}

	var weight *Weight
	if w.Weight != "" {
		wt := w.Weight
		weight = &wt
	}

	properties := make([]string, 0, len(w.Properties))
	for _, p := range w.Properties {
		properties = append(properties, string(p))
	}
	slices.Sort(properties)

	if w.Range != nil && slices.Contains(properties, string(PropertyAmmunition)) {
		properties = without(properties, PropertyAmmunition, PropertyRange)
		properties = append([]string{fmt.Sprintf("%s (%s)", PropertyAmmunition, w.Range)}, properties...)
	} else if w.Range != nil && slices.Contains(properties, string(PropertyThrown)) {
		properties = without(properties, PropertyRange, PropertyThrown)
		properties = append(properties, fmt.Sprintf("%s (%s)", PropertyThrown, w.Range))
		slices.Sort(properties)
	}

	if w.VersatileDamageDie != "" && slices.Contains(properties, string(PropertyVersatile)) {
		properties = without(properties, PropertyVersatile)
		properties = append(properties, fmt.Sprintf("%s (%s)", PropertyVersatile, w.VersatileDamageDie))
	}

	return WeaponTableRow{
		Name:       w.Name,
		Category:   w.Category,
		Cost:       w.Cost,
		Weight:     weight,
		Damage:     damage,
		Properties: properties,
	}
}

func without(properties []string, drop ...WeaponPropertyType) []string {
	return slices.DeleteFunc(properties, func(p string) bool {
		return slices.Contains(drop, WeaponPropertyType(p))
	})
}
