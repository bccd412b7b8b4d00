package repository

import (
	"context"
	"errors"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBloodRequestNotFound is returned when a blood request is not found.
var ErrBloodRequestNotFound = errors.New("blood request not found")

// BloodRequestRepository defines the persistence operations for blood requests.
type BloodRequestRepository interface {
	// Save creates or replaces a blood request.
	Save(ctx context.Context, request *entity.BloodRequest) error

	// FindByID retrieves a blood request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)

	// FindAll retrieves every stored blood request.
	FindAll(ctx context.Context) ([]*entity.BloodRequest, error)
}
