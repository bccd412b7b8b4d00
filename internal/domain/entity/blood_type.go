// Package entity contains the core business objects of the project.
package entity

import "strings"

// BloodType is an ABO group combined with an Rh factor, e.g. "O-".
type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

// AllBloodTypes lists the eight supported blood types.
func AllBloodTypes() []BloodType {
	return []BloodType{
		BloodTypeAPositive, BloodTypeANegative,
		BloodTypeBPositive, BloodTypeBNegative,
		BloodTypeABPositive, BloodTypeABNegative,
		BloodTypeOPositive, BloodTypeONegative,
	}
}

// String returns the string representation of the BloodType.
func (b BloodType) String() string {
	return string(b)
}

// IsValid checks if the BloodType is one of the eight supported values.
func (b BloodType) IsValid() bool {
	switch b {
	case BloodTypeAPositive, BloodTypeANegative,
		BloodTypeBPositive, BloodTypeBNegative,
		BloodTypeABPositive, BloodTypeABNegative,
		BloodTypeOPositive, BloodTypeONegative:
		return true
	default:
		return false
	}
}

// ParseBloodType normalizes user input such as " ab+ " into a BloodType.
func ParseBloodType(s string) (BloodType, bool) {
	b := BloodType(strings.ToUpper(strings.TrimSpace(s)))

	return b, b.IsValid()
}

// ABO returns the ABO group of the blood type ("A", "B", "AB" or "O").
func (b BloodType) ABO() string {
	if len(b) < 2 {
		return ""
	}

	return string(b[:len(b)-1])
}

// RhPositive reports whether the Rh factor is positive.
func (b BloodType) RhPositive() bool {
	return strings.HasSuffix(string(b), "+")
}

// IsCompatible reports whether blood of the donor type can be given to a
// recipient who needs the requested type.
//
// The universal donor and universal recipient rules are checked before the
// Rh rule, so O- always gives and AB+ always receives.
func IsCompatible(donor, requested BloodType) bool {
	if !donor.IsValid() || !requested.IsValid() {
		return false
	}

	if donor == BloodTypeONegative {
		return true
	}
	if requested == BloodTypeABPositive {
		return true
	}
	if donor == requested {
		return true
	}

	if donor.RhPositive() && !requested.RhPositive() {
		return false
	}

	switch donor.ABO() {
	case "O":
		return true
	case "A":
		return requested.ABO() == "A" || requested.ABO() == "AB"
	case "B":
		return requested.ABO() == "B" || requested.ABO() == "AB"
	case "AB":
		return requested.ABO() == "AB"
	default:
		return false
	}
}
