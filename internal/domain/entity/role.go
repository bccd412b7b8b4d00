package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleDonor indicates a blood donor.
	RoleDonor Role = "donor"
	// RolePatient indicates a patient who may request blood.
	RolePatient Role = "patient"
	// RoleClinic indicates a clinic or hospital staff account.
	RoleClinic Role = "clinic"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RolePatient, RoleClinic:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny checks if the roles slice contains at least one of the given roles.
func (rs Roles) ContainsAny(roles ...Role) bool {
	return slices.ContainsFunc(rs, func(r Role) bool {
		return slices.Contains(roles, r)
	})
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
