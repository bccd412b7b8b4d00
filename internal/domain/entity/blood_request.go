package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a blood request.
type RequestStatus string

const (
	// RequestStatusActive is the only state that accepts donors.
	RequestStatusActive    RequestStatus = "Active"
	RequestStatusAccepted  RequestStatus = "Accepted"
	RequestStatusCancelled RequestStatus = "Cancelled"
)

// BloodRequest represents a patient's or clinic's request for blood units.
type BloodRequest struct {
	ID             uuid.UUID     `json:"id"`              // The Global Unique Identifier (GUID) for the request.
	RequesterID    uuid.UUID     `json:"requester_id"`    // The submitting user; uuid.Nil for anonymous requests.
	BloodType      BloodType     `json:"blood_type"`      // The requested blood type.
	Units          int           `json:"units"`           // Number of units required, always positive.
	Urgency        Urgency       `json:"urgency"`         // How soon the units are needed.
	HospitalName   string        `json:"hospital_name"`   // Where the donation should take place.
	ContactNumber  string        `json:"contact_number"`  // Optional phone number for donors.
	Notes          string        `json:"notes"`           // Optional free text.
	Coordinates    *Coordinates  `json:"coordinates"`     // Location of the request; nil disables matching.
	Status         RequestStatus `json:"status"`          // Lifecycle state.
	AcceptedBy     *uuid.UUID    `json:"accepted_by"`     // Donor who accepted the request.
	AcceptedAt     *time.Time    `json:"accepted_at"`     // When the request was accepted.
	NotifiedDonors int           `json:"notified_donors"` // Number of donor notifications created on submission.
	CreatedAt      time.Time     `json:"created_at"`      // Timestamp of when the request was created.
	LastUpdated    time.Time     `json:"last_updated"`    // Timestamp of the last modification.
}

// IsActive reports whether the request can still be accepted or cancelled.
func (r *BloodRequest) IsActive() bool {
	return r.Status == RequestStatusActive
}

// IsAnonymous reports whether the request was submitted without an identified requester.
func (r *BloodRequest) IsAnonymous() bool {
	return r.RequesterID == uuid.Nil
}
