package entity

import "github.com/google/uuid"

// Caller identifies who is invoking an operation.
type Caller struct {
	UserID    uuid.UUID
	Roles     Roles
	Anonymous bool
}

// AnonymousCaller is the identity used for unauthenticated demo requests.
func AnonymousCaller() Caller {
	return Caller{
		UserID:    uuid.Nil,
		Roles:     Roles{RolePatient},
		Anonymous: true,
	}
}
