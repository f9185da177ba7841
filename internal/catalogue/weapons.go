package catalogue

import "github.com/mcoot/armoury/internal/model"

// Weapons is the weapon catalogue in seed order
var Weapons = []model.Weapon{
	{
		Name:       "Club",
		Category:   model.WeaponSimpleMelee,
		Cost:       "1 sp",
		DamageDie:  "1d4",
		DamageType: model.DamageBludgeoning,
		Weight:     "2 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyLight},
	},
	{
		Name:       "Dagger",
		Category:   model.WeaponSimpleMelee,
		Cost:       "2 gp",
		DamageDie:  "1d4",
		DamageType: model.DamagePiercing,
		Weight:     "1 lb.",
		Range:      &model.WeaponRange{Normal: 20, Long: 60},
		Properties: []model.WeaponPropertyType{model.PropertyFinesse, model.PropertyLight, model.PropertyRange, model.PropertyThrown},
	},
	{
		Name:       "Greatclub",
		Category:   model.WeaponSimpleMelee,
		Cost:       "2 sp",
		DamageDie:  "1d8",
		DamageType: model.DamageBludgeoning,
		Weight:     "10 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyTwoHanded},
	},
	{
		Name:       "Handaxe",
		Category:   model.WeaponSimpleMelee,
		Cost:       "5 gp",
		DamageDie:  "1d6",
		DamageType: model.DamageSlashing,
		Weight:     "2 lb.",
		Range:      &model.WeaponRange{Normal: 20, Long: 60},
		Properties: []model.WeaponPropertyType{model.PropertyLight, model.PropertyRange, model.PropertyThrown},
	},
	{
		Name:       "Javelin",
		Category:   model.WeaponSimpleMelee,
		Cost:       "5 sp",
		DamageDie:  "1d6",
		DamageType: model.DamagePiercing,
		Weight:     "2 lb.",
		Range:      &model.WeaponRange{Normal: 30, Long: 120},
		Properties: []model.WeaponPropertyType{model.PropertyRange, model.PropertyThrown},
	},
	{
		Name:       "Light hammer",
		Category:   model.WeaponSimpleMelee,
		Cost:       "2 gp",
		DamageDie:  "1d4",
		DamageType: model.DamageBludgeoning,
		Weight:     "2 lb.",
		Range:      &model.WeaponRange{Normal: 20, Long: 60},
		Properties: []model.WeaponPropertyType{model.PropertyLight, model.PropertyRange, model.PropertyThrown},
	},
	{
		Name:       "Mace",
		Category:   model.WeaponSimpleMelee,
		Cost:       "5 gp",
		DamageDie:  "1d6",
		DamageType: model.DamageBludgeoning,
		Weight:     "4 lb.",
		Properties: []model.WeaponPropertyType{},
	},
	{
		Name:               "Quarterstaff",
		Category:           model.WeaponSimpleMelee,
		Cost:               "2 sp",
		DamageDie:          "1d6",
		DamageType:         model.DamageBludgeoning,
		Weight:             "4 lb.",
		VersatileDamageDie: "1d8",
		Properties:         []model.WeaponPropertyType{model.PropertyVersatile},
	},
	{
		Name:       "Sickle",
		Category:   model.WeaponSimpleMelee,
		Cost:       "1 gp",
		DamageDie:  "1d4",
		DamageType: model.DamageSlashing,
		Weight:     "2 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyLight},
	},
	{
		Name:               "Spear",
		Category:           model.WeaponSimpleMelee,
		Cost:               "1 gp",
		DamageDie:          "1d6",
		DamageType:         model.DamagePiercing,
		Weight:             "3 lb.",
		Range:              &model.WeaponRange{Normal: 20, Long: 60},
		VersatileDamageDie: "1d8",
		Properties:         []model.WeaponPropertyType{model.PropertyRange, model.PropertyThrown, model.PropertyVersatile},
	},
	{
		Name:       "Light crossbow",
		Category:   model.WeaponSimpleRanged,
		Cost:       "25 gp",
		DamageDie:  "1d8",
		DamageType: model.DamagePiercing,
		Weight:     "5 lb.",
		Range:      &model.WeaponRange{Normal: 80, Long: 320},
		Properties: []model.WeaponPropertyType{model.PropertyAmmunition, model.PropertyLoading, model.PropertyTwoHanded},
	},
	{
		Name:       "Dart",
		Category:   model.WeaponSimpleRanged,
		Cost:       "5 cp",
		DamageDie:  "1d4",
		DamageType: model.DamagePiercing,
		Weight:     "1/4 lb.",
		Range:      &model.WeaponRange{Normal: 20, Long: 60},
		Properties: []model.WeaponPropertyType{model.PropertyFinesse, model.PropertyRange, model.PropertyThrown},
	},
	{
		Name:       "Shortbow",
		Category:   model.WeaponSimpleRanged,
		Cost:       "25 gp",
		DamageDie:  "1d6",
		DamageType: model.DamagePiercing,
		Weight:     "2 lb.",
		Range:      &model.WeaponRange{Normal: 80, Long: 120},
		Properties: []model.WeaponPropertyType{model.PropertyAmmunition, model.PropertyRange},
	},
	{
		Name:       "Sling",
		Category:   model.WeaponSimpleRanged,
		Cost:       "1 sp",
		DamageDie:  "1d4",
		DamageType: model.DamageBludgeoning,
		Range:      &model.WeaponRange{Normal: 30, Long: 120},
		Properties: []model.WeaponPropertyType{model.PropertyAmmunition, model.PropertyRange},
	},
	{
		Name:               "Battleaxe",
		Category:           model.WeaponMartialMelee,
		Cost:               "10 gp",
		DamageDie:          "1d8",
		DamageType:         model.DamageSlashing,
		Weight:             "4 lb.",
		VersatileDamageDie: "1d10",
		Properties:         []model.WeaponPropertyType{model.PropertyVersatile},
	},
	{
		Name:       "Flail",
		Category:   model.WeaponMartialMelee,
		Cost:       "10 gp",
		DamageDie:  "1d8",
		DamageType: model.DamageBludgeoning,
		Weight:     "2 lb.",
		Properties: []model.WeaponPropertyType{},
	},
	{
		Name:       "Glaive",
		Category:   model.WeaponMartialMelee,
		Cost:       "20 gp",
		DamageDie:  "1d10",
		DamageType: model.DamageSlashing,
		Weight:     "6 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyHeavy, model.PropertyReach, model.PropertyTwoHanded},
	},
	{
		Name:       "Greataxe",
		Category:   model.WeaponMartialMelee,
		Cost:       "30 gp",
		DamageDie:  "1d12",
		DamageType: model.DamageSlashing,
		Weight:     "7 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyHeavy, model.PropertyTwoHanded},
	},
	{
		Name:       "Greatsword",
		Category:   model.WeaponMartialMelee,
		Cost:       "50 gp",
		DamageDie:  "2d6",
		DamageType: model.DamageSlashing,
		Weight:     "6 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyHeavy, model.PropertyTwoHanded},
	},
	{
		Name:       "Halberd",
		Category:   model.WeaponMartialMelee,
		Cost:       "20 gp",
		DamageDie:  "1d10",
		DamageType: model.DamageSlashing,
		Weight:     "6 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyHeavy, model.PropertyReach, model.PropertyTwoHanded},
	},
	{
		Name:       "Lance",
		Category:   model.WeaponMartialMelee,
		Cost:       "10 gp",
		DamageDie:  "1d12",
		DamageType: model.DamagePiercing,
		Weight:     "6 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyLance, model.PropertyReach},
	},
	{
		Name:               "Longsword",
		Category:           model.WeaponMartialMelee,
		Cost:               "15 gp",
		DamageDie:          "1d8",
		DamageType:         model.DamageSlashing,
		Weight:             "3 lb.",
		VersatileDamageDie: "1d10",
		Properties:         []model.WeaponPropertyType{model.PropertyVersatile},
	},
	{
		Name:       "Maul",
		Category:   model.WeaponMartialMelee,
		Cost:       "10 gp",
		DamageDie:  "2d6",
		DamageType: model.DamageBludgeoning,
		Weight:     "10 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyHeavy, model.PropertyTwoHanded},
	},
	{
		Name:       "Morningstar",
		Category:   model.WeaponMartialMelee,
		Cost:       "15 gp",
		DamageDie:  "1d8",
		DamageType: model.DamagePiercing,
		Weight:     "4 lb.",
		Properties: []model.WeaponPropertyType{},
	},
	{
		Name:       "Pike",
		Category:   model.WeaponMartialMelee,
		Cost:       "5 gp",
		DamageDie:  "1d10",
		DamageType: model.DamagePiercing,
		Weight:     "18 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyHeavy, model.PropertyReach, model.PropertyTwoHanded},
	},
	{
		Name:       "Rapier",
		Category:   model.WeaponMartialMelee,
		Cost:       "25 gp",
		DamageDie:  "1d8",
		DamageType: model.DamagePiercing,
		Weight:     "2 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyFinesse},
	},
	{
		Name:       "Scimitar",
		Category:   model.WeaponMartialMelee,
		Cost:       "25 gp",
		DamageDie:  "1d6",
		DamageType: model.DamageSlashing,
		Weight:     "3 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyFinesse, model.PropertyLight},
	},
	{
		Name:       "Shortsword",
		Category:   model.WeaponMartialMelee,
		Cost:       "10 gp",
		DamageDie:  "1d6",
		DamageType: model.DamagePiercing,
		Weight:     "2 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyFinesse, model.PropertyLight},
	},
	{
		Name:               "Trident",
		Category:           model.WeaponMartialMelee,
		Cost:               "5 gp",
		DamageDie:          "1d6",
		DamageType:         model.DamagePiercing,
		Weight:             "4 lb.",
		Range:              &model.WeaponRange{Normal: 20, Long: 60},
		VersatileDamageDie: "1d8",
		Properties:         []model.WeaponPropertyType{model.PropertyRange, model.PropertyThrown, model.PropertyVersatile},
	},
	{
		Name:       "War pick",
		Category:   model.WeaponMartialMelee,
		Cost:       "5 gp",
		DamageDie:  "1d8",
		DamageType: model.DamagePiercing,
		Weight:     "2 lb.",
		Properties: []model.WeaponPropertyType{},
	},
	{
		Name:               "Warhammer",
		Category:           model.WeaponMartialMelee,
		Cost:               "15 gp",
		DamageDie:          "1d8",
		DamageType:         model.DamageBludgeoning,
		Weight:             "2 lb.",
		VersatileDamageDie: "1d10",
		Properties:         []model.WeaponPropertyType{model.PropertyVersatile},
	},
	{
		Name:       "Whip",
		Category:   model.WeaponMartialMelee,
		Cost:       "2 gp",
		DamageDie:  "1d4",
		DamageType: model.DamageSlashing,
		Weight:     "3 lb.",
		Properties: []model.WeaponPropertyType{model.PropertyFinesse, model.PropertyReach},
	},
	{
		Name:       "Blowgun",
		Category:   model.WeaponMartialRanged,
		Cost:       "10 gp",
		DamageDie:  "1",
		DamageType: model.DamagePiercing,
		Weight:     "1 lb.",
		Range:      &model.WeaponRange{Normal: 25, Long: 100},
		Properties: []model.WeaponPropertyType{model.PropertyAmmunition, model.PropertyLoading, model.PropertyRange},
	},
	{
		Name:       "Hand crossbow",
		Category:   model.WeaponMartialRanged,
		Cost:       "75 gp",
		DamageDie:  "1d6",
		DamageType: model.DamagePiercing,
		Weight:     "3 lb.",
		Range:      &model.WeaponRange{Normal: 30, Long: 120},
		Properties: []model.WeaponPropertyType{model.PropertyAmmunition, model.PropertyLight, model.PropertyLoading, model.PropertyRange},
	},
	{
		Name:       "Heavy crossbow",
		Category:   model.WeaponMartialRanged,
		Cost:       "50 gp",
		DamageDie:  "1d10",
		DamageType: model.DamagePiercing,
		Weight:     "18 lb.",
		Range:      &model.WeaponRange{Normal: 100, Long: 400},
		Properties: []model.WeaponPropertyType{model.PropertyAmmunition, model.PropertyHeavy, model.PropertyLoading, model.PropertyRange, model.PropertyTwoHanded},
	},
	{
		Name:       "Longbow",
		Category:   model.WeaponMartialRanged,
		Cost:       "50 gp",
		DamageDie:  "1d8",
		DamageType: model.DamagePiercing,
		Weight:     "2 lb.",
		Range:      &model.WeaponRange{Normal: 150, Long: 600},
		Properties: []model.WeaponPropertyType{model.PropertyAmmunition, model.PropertyHeavy, model.PropertyRange, model.PropertyTwoHanded},
	},
	{
		Name:       "Net",
		Category:   model.WeaponMartialRanged,
		Cost:       "1 gp",
		Weight:     "2 lb.",
		Range:      &model.WeaponRange{Normal: 5, Long: 15},
		Properties: []model.WeaponPropertyType{model.PropertyNet, model.PropertyRange, model.PropertyThrown},
	},
}
