package repository

import (
	"context"
	"errors"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrDonorNotFound is returned when a donor profile is not found.
	ErrDonorNotFound = errors.New("donor profile not found")
	// ErrDonorRepositoryReadOnly is returned by fixture-backed repositories on writes.
	ErrDonorRepositoryReadOnly = errors.New("donor repository is read-only")
)

// DonorRepository defines the persistence operations for donor profiles.
type DonorRepository interface {
	// Save creates or replaces a donor profile.
	Save(ctx context.Context, donor *entity.DonorProfile) error

	// FindByID retrieves a donor profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DonorProfile, error)

	// FindAll returns the whole donor pool.
	FindAll(ctx context.Context) ([]*entity.DonorProfile, error)
}
