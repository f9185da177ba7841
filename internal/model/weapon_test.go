package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightPtr(w Weight) *Weight { return &w }

func strPtr(s string) *string { return &s }

func TestToTableRowPassesThroughFlatFields(t *testing.T) {
	club := Weapon{
		Name:       "Club",
		Category:   WeaponSimpleMelee,
		Cost:       "1 sp",
		DamageDie:  "1d4",
		DamageType: DamageBludgeoning,
		Weight:     "2 lb.",
		Properties: []WeaponPropertyType{PropertyLight},
	}

	row := ToTableRow(club)

	assert.Equal(t, "Club", row.Name)
	assert.Equal(t, WeaponSimpleMelee, row.Category)
	assert.Equal(t, Cost("1 sp"), row.Cost)
	require.NotNil(t, row.Weight)
	assert.Equal(t, Weight("2 lb."), *row.Weight)
}

func TestToTableRow(t *testing.T) {
	tests := []struct {
		name   string
		weapon Weapon
		want   WeaponTableRow
	}{
		{
			name: "damage die and type combine",
			weapon: Weapon{
				Name: "Dagger", Category: WeaponSimpleMelee, Cost: "2 gp",
				DamageDie: "1d4", DamageType: DamagePiercing, Weight: "2 lb.",
				Properties: []WeaponPropertyType{PropertyLight},
			},
			want: WeaponTableRow{
				Name: "Dagger", Category: WeaponSimpleMelee, Cost: "2 gp",
				Weight:     weightPtr("2 lb."),
				Damage:     strPtr("1d4 piercing damage"),
				Properties: []string{"light"},
			},
		},
		{
			name: "properties sorted alphabetically",
			weapon: Weapon{
				Name: "Halberd", Category: WeaponMartialMelee, Cost: "20 gp",
				DamageDie: "1d10", DamageType: DamageSlashing, Weight: "6 lb.",
				Properties: []WeaponPropertyType{PropertyReach, PropertyTwoHanded, PropertyHeavy},
			},
			want: WeaponTableRow{
				Name: "Halberd", Category: WeaponMartialMelee, Cost: "20 gp",
				Weight:     weightPtr("6 lb."),
				Damage:     strPtr("1d10 slashing damage"),
				Properties: []string{"heavy", "reach", "two-handed"},
			},
		},
		{
			name: "ammunition and range prepend a combined token without re-sorting",
			weapon: Weapon{
				Name: "Heavy crossbow", Category: WeaponMartialRanged, Cost: "50 gp",
				DamageDie: "1d10", DamageType: DamagePiercing, Weight: "18 lb.",
				Range: &WeaponRange{Normal: 100, Long: 400},
				Properties: []WeaponPropertyType{
					PropertyAmmunition, PropertyHeavy, PropertyLoading, PropertyRange, PropertyTwoHanded,
				},
			},
			want: WeaponTableRow{
				Name: "Heavy crossbow", Category: WeaponMartialRanged, Cost: "50 gp",
				Weight:     weightPtr("18 lb."),
				Damage:     strPtr("1d10 piercing damage"),
				Properties: []string{"ammunition (range 100/400)", "heavy", "loading", "two-handed"},
			},
		},
		{
			name: "thrown and range combine and re-sort",
			weapon: Weapon{
				Name: "Dagger", Category: WeaponSimpleMelee, Cost: "2 gp",
				DamageDie: "1d4", DamageType: DamagePiercing, Weight: "1 lb.",
				Range: &WeaponRange{Normal: 20, Long: 60},
				Properties: []WeaponPropertyType{
					PropertyFinesse, PropertyLight, PropertyRange, PropertyThrown,
				},
			},
			want: WeaponTableRow{
				Name: "Dagger", Category: WeaponSimpleMelee, Cost: "2 gp",
				Weight:     weightPtr("1 lb."),
				Damage:     strPtr("1d4 piercing damage"),
				Properties: []string{"finesse", "light", "thrown (range 20/60)"},
			},
		},
		{
			name: "net has no damage",
			weapon: Weapon{
				Name: "Net", Category: WeaponMartialRanged, Cost: "1 gp", Weight: "3 lb.",
				Range:      &WeaponRange{Normal: 5, Long: 15},
				Properties: []WeaponPropertyType{PropertyNet, PropertyRange, PropertyThrown},
			},
			want: WeaponTableRow{
				Name: "Net", Category: WeaponMartialRanged, Cost: "1 gp",
				Weight:     weightPtr("3 lb."),
				Properties: []string{"net", "thrown (range 5/15)"},
			},
		},
		{
			name: "versatile is appended after re-sorting thrown",
			weapon: Weapon{
				Name: "Spear", Category: WeaponSimpleMelee, Cost: "1 gp",
				DamageDie: "1d6", DamageType: DamagePiercing, Weight: "3 lb.",
				Range:              &WeaponRange{Normal: 20, Long: 60},
				VersatileDamageDie: "1d8",
				Properties:         []WeaponPropertyType{PropertyRange, PropertyThrown, PropertyVersatile},
			},
			want: WeaponTableRow{
				Name: "Spear", Category: WeaponSimpleMelee, Cost: "1 gp",
				Weight:     weightPtr("3 lb."),
				Damage:     strPtr("1d6 piercing damage"),
				Properties: []string{"thrown (range 20/60)", "versatile (1d8)"},
			},
		},
		{
			name: "versatile lands at the end even when it sorts earlier",
			weapon: Weapon{
				Name: "Custom", Category: WeaponMartialMelee, Cost: "1 gp",
				DamageDie: "1d8", DamageType: DamageSlashing,
				VersatileDamageDie: "1d10",
				Properties:         []WeaponPropertyType{PropertyVersatile, PropertyReach},
			},
			want: WeaponTableRow{
				Name: "Custom", Category: WeaponMartialMelee, Cost: "1 gp",
				Damage:     strPtr("1d8 slashing damage"),
				Properties: []string{"reach", "versatile (1d10)"},
			},
		},
		{
			name: "bare range survives without ammunition or thrown",
			weapon: Weapon{
				Name: "Odd", Category: WeaponSimpleRanged, Cost: "1 gp",
				Range:      &WeaponRange{Normal: 10, Long: 30},
				Properties: []WeaponPropertyType{PropertyRange, PropertyLight},
			},
			want: WeaponTableRow{
				Name: "Odd", Category: WeaponSimpleRanged, Cost: "1 gp",
				Properties: []string{"light", "range"},
			},
		},
		{
			name: "bare ammunition survives without a range",
			weapon: Weapon{
				Name: "Odd", Category: WeaponSimpleRanged, Cost: "1 gp",
				Properties: []WeaponPropertyType{PropertyAmmunition, PropertyLoading},
			},
			want: WeaponTableRow{
				Name: "Odd", Category: WeaponSimpleRanged, Cost: "1 gp",
				Properties: []string{"ammunition", "loading"},
			},
		},
		{
			name: "versatile without a versatile die stays bare",
			weapon: Weapon{
				Name: "Odd", Category: WeaponMartialMelee, Cost: "1 gp",
				Properties: []WeaponPropertyType{PropertyVersatile},
			},
			want: WeaponTableRow{
				Name: "Odd", Category: WeaponMartialMelee, Cost: "1 gp",
				Properties: []string{"versatile"},
			},
		},
		{
			name: "no properties",
			weapon: Weapon{
				Name: "Mace", Category: WeaponSimpleMelee, Cost: "5 gp",
				DamageDie: "1d6", DamageType: DamageBludgeoning, Weight: "4 lb.",
			},
			want: WeaponTableRow{
				Name: "Mace", Category: WeaponSimpleMelee, Cost: "5 gp",
				Weight:     weightPtr("4 lb."),
				Damage:     strPtr("1d6 bludgeoning damage"),
				Properties: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToTableRow(tt.weapon)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToTableRow() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToTableRowDamageNeedsDieAndType(t *testing.T) {
	row := ToTableRow(Weapon{Name: "Half", DamageDie: "1d4"})
	assert.Nil(t, row.Damage)

	row = ToTableRow(Weapon{Name: "Half", DamageType: DamagePiercing})
	assert.Nil(t, row.Damage)
}

func TestToTableRowAbsentWeightIsNil(t *testing.T) {
	sling := Weapon{
		Name: "Sling", Category: WeaponSimpleRanged, Cost: "1 sp",
		DamageDie: "1d4", DamageType: DamageBludgeoning,
		Range:      &WeaponRange{Normal: 30, Long: 120},
		Properties: []WeaponPropertyType{PropertyAmmunition, PropertyRange},
	}

	row := ToTableRow(sling)

	assert.Nil(t, row.Weight)
	assert.Equal(t, []string{"ammunition (range 30/120)"}, row.Properties)
}

func TestToTableRowDoesNotMutateInput(t *testing.T) {
	weapon := Weapon{
		Name:       "Trident",
		Range:      &WeaponRange{Normal: 20, Long: 60},
		Properties: []WeaponPropertyType{PropertyVersatile, PropertyThrown, PropertyRange},
	}

	_ = ToTableRow(weapon)

	assert.Equal(t, []WeaponPropertyType{PropertyVersatile, PropertyThrown, PropertyRange}, weapon.Properties)
}

func TestWeaponPropertyTypeIsValid(t *testing.T) {
	for _, p := range AllWeaponPropertyTypes {
		assert.True(t, p.IsValid(), string(p))
	}
	assert.False(t, WeaponPropertyType("glowing").IsValid())
}

func TestWeaponHasProperty(t *testing.T) {
	w := Weapon{Properties: []WeaponPropertyType{PropertyFinesse, PropertyLight}}

	assert.True(t, w.HasProperty(PropertyLight))
	assert.False(t, w.HasProperty(PropertyHeavy))
}

func TestNotImplementedResult(t *testing.T) {
	res := NotImplemented("Update", "armour")

	assert.False(t, res.Success)
	assert.Equal(t, "Update operation not implemented for armour entities", res.Message)
}
