package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertDonorProfileInput represents the editable fields of a donor profile
type UpsertDonorProfileInput struct {
	Name        string              `json:"name"`
	Phone       string              `json:"phone"`
	BloodType   string              `json:"blood_type"`
	IsAvailable *bool               `json:"is_available,omitempty"`
	Coordinates *entity.Coordinates `json:"coordinates,omitempty"`
	PushToken   *string             `json:"push_token,omitempty"`
}

// DonorUsecase defines the interface for donor profile management
type DonorUsecase interface {
	UpsertDonorProfile(ctx context.Context, donorID uuid.UUID, input *UpsertDonorProfileInput) (*entity.DonorProfile, error)
	GetDonorProfile(ctx context.Context, donorID uuid.UUID) (*entity.DonorProfile, error)
	SetAvailability(ctx context.Context, donorID uuid.UUID, available bool) (*entity.DonorProfile, error)
}
