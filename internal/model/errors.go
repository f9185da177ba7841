package model

import "errors"

// Common errors used across the application
var (
	// Catalogue errors
	ErrArmourNotFound   = errors.New("armour not found")
	ErrWeaponNotFound   = errors.New("weapon not found")
	ErrPropertyNotFound = errors.New("weapon property not found")

	// Data integrity errors
	ErrNoPropertyDescription = errors.New("no description found for weapon property")
)
