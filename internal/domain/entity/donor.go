package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonorProfile holds the data needed to match and reach a blood donor.
type DonorProfile struct {
	ID          uuid.UUID    `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Phone       string       `json:"phone" yaml:"phone"`
	BloodType   BloodType    `json:"blood_type" yaml:"bloodType"`
	IsAvailable bool         `json:"is_available" yaml:"isAvailable"`
	Coordinates *Coordinates `json:"coordinates" yaml:"coordinates"` // nil when the donor has not shared a location
	PushToken   string       `json:"push_token,omitempty" yaml:"pushToken"`
	UpdatedAt   time.Time    `json:"updated_at" yaml:"updatedAt"`
}

// HasLocation reports whether the donor's position is known.
func (d *DonorProfile) HasLocation() bool {
	return d.Coordinates != nil
}

// MatchCandidate is a donor found compatible and in range for a request, before notification.
type MatchCandidate struct {
	Donor      *DonorProfile `json:"donor"`
	DistanceKm float64       `json:"distance_km"`
	// Estimated is set when the distance comes from the pseudo-near fallback.
	Estimated bool `json:"estimated,omitempty"`
}
