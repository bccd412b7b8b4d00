package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitBloodRequestInput represents the input for submitting a blood request
type SubmitBloodRequestInput struct {
	BloodType     string              `json:"blood_type"`
	Units         int                 `json:"units"`
	Urgency       string              `json:"urgency,omitempty"`
	HospitalName  string              `json:"hospital_name"`
	ContactNumber string              `json:"contact_number,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	Coordinates   *entity.Coordinates `json:"coordinates,omitempty"`
}

// SubmitResult is returned once the request is stored
type SubmitResult struct {
	RequestID      uuid.UUID `json:"request_id"`
	NotifiedDonors int       `json:"notified_donors"`
}

// DonorContact is the donor information shared with the requester on acceptance
type DonorContact struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Phone     string           `json:"phone"`
	BloodType entity.BloodType `json:"blood_type"`
}

// AcceptResult is returned when a donor accepts a request
type AcceptResult struct {
	Success   bool          `json:"success"`
	DonorInfo *DonorContact `json:"donor_info"`
}

// DonorCandidate is a matched donor as shown on the clinic dashboard.
// Contact details and device tokens stay private until the donor accepts.
type DonorCandidate struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	BloodType   entity.BloodType    `json:"blood_type"`
	Coordinates *entity.Coordinates `json:"coordinates,omitempty"`
	DistanceKm  float64             `json:"distance_km"`
	Estimated   bool                `json:"estimated,omitempty"`
}

// NewDonorCandidate keeps the public part of a match
func NewDonorCandidate(match entity.MatchCandidate) *DonorCandidate {
	candidate := &DonorCandidate{
		DistanceKm: match.DistanceKm,
		Estimated:  match.Estimated,
	}
	if donor := match.Donor; donor != nil {
		candidate.ID = donor.ID
		candidate.Name = donor.Name
		candidate.BloodType = donor.BloodType
		candidate.Coordinates = donor.Coordinates
	}

	return candidate
}

// CandidateList is the matcher output for a stored request
type CandidateList struct {
	Request    *entity.BloodRequest `json:"request"`
	RadiusKm   float64              `json:"radius_km"`
	Candidates []*DonorCandidate    `json:"candidates"`
}

// NearbyRequest is an active request a donor could serve
type NearbyRequest struct {
	Request    *entity.BloodRequest `json:"request"`
	DistanceKm float64              `json:"distance_km"`
}

// BloodRequestUsecase defines the interface for the blood request lifecycle
type BloodRequestUsecase interface {
	// SubmitBloodRequest validates and stores the request, then notifies matching donors
	SubmitBloodRequest(ctx context.Context, caller entity.Caller, input *SubmitBloodRequestInput) (*SubmitResult, error)

	// AcceptRequest moves an active request to Accepted on behalf of donorID
	AcceptRequest(ctx context.Context, requestID, donorID uuid.UUID) (*AcceptResult, error)

	// CancelRequest lets the requester withdraw an active request
	CancelRequest(ctx context.Context, caller entity.Caller, requestID uuid.UUID) (*entity.BloodRequest, error)

	// MarkNotificationRead flags one of the user's notifications as read
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error

	GetRequest(ctx context.Context, requestID uuid.UUID) (*entity.BloodRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error)

	// FindCandidates re-runs matching for a stored request
	FindCandidates(ctx context.Context, requestID uuid.UUID, radiusKm float64) (*CandidateList, error)

	// NearbyRequests lists active requests the donor can serve, most urgent first then nearest
	NearbyRequests(ctx context.Context, donorID uuid.UUID, radiusKm float64) ([]*NearbyRequest, error)
}
