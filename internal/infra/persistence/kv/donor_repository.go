package kv

import (
	"context"
	"log/slog"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// donorRepository implements the repository.DonorRepository interface.
type donorRepository struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// NewDonorRepository is the constructor for donorRepository.
func NewDonorRepository(params RepositoryParams) repository.DonorRepository {
	return &donorRepository{
		store:  params.Store,
		logger: loggerOrDefault(params.Logger),
	}
}

func donorProfileKey(id uuid.UUID) string {
	return donorProfilePrefix + id.String()
}

// Save creates or replaces a donor profile.
func (repo *donorRepository) Save(ctx context.Context, donor *entity.DonorProfile) error {
	return putJSON(ctx, repo.store, donorProfileKey(donor.ID), donor)
}

// FindByID retrieves a donor profile by its unique ID.
func (repo *donorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DonorProfile, error) {
	donor, err := getJSON[entity.DonorProfile](ctx, repo.store, donorProfileKey(id))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to find donor profile by ID")
	}

	return donor, nil
}

// FindAll returns the whole donor pool.
func (repo *donorRepository) FindAll(ctx context.Context) ([]*entity.DonorProfile, error) {
	return listJSON[entity.DonorProfile](ctx, repo.store, repo.logger, donorProfilePrefix)
}
