package model

// ArmourCategory groups armour by how it is worn
type ArmourCategory string

const (
	ArmourLight  ArmourCategory = "Light"
	ArmourMedium ArmourCategory = "Medium"
	ArmourHeavy  ArmourCategory = "Heavy"
	ArmourShield ArmourCategory = "Shield"
)

// Stealth is the stealth penalty an armour imposes, if any
type Stealth string

const (
	StealthNone         Stealth = ""
	StealthDisadvantage Stealth = "Disadvantage"
)

// Armour is a single armour catalogue entry
type Armour struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    ArmourCategory `json:"type"`
	Cost        Cost           `json:"cost"`
	// ArmourClass may carry a modifier expression, e.g. "12 + Dex modifier (max 2)"
	ArmourClass string `json:"armour_class"`
	// Strength is empty when the armour has no strength requirement
	Strength string  `json:"strength,omitempty"`
	Stealth  Stealth `json:"stealth,omitempty"`
	Weight   Weight  `json:"weight"`
}
