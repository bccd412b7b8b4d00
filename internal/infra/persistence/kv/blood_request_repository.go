package kv

import (
	"context"
	"log/slog"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bloodRequestRepository implements the repository.BloodRequestRepository interface.
type bloodRequestRepository struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// RepositoryParams holds dependencies shared by the key-value repositories
type RepositoryParams struct {
	fx.In

	Store  repository.KeyValueStore
	Logger *slog.Logger
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}

	return logger
}

// NewBloodRequestRepository is the constructor for bloodRequestRepository.
func NewBloodRequestRepository(params RepositoryParams) repository.BloodRequestRepository {
	return &bloodRequestRepository{
		store:  params.Store,
		logger: loggerOrDefault(params.Logger),
	}
}

func bloodRequestKey(id uuid.UUID) string {
	return bloodRequestPrefix + id.String()
}

// Save creates or replaces a blood request.
func (repo *bloodRequestRepository) Save(ctx context.Context, request *entity.BloodRequest) error {
	return putJSON(ctx, repo.store, bloodRequestKey(request.ID), request)
}

// FindByID retrieves a blood request by its unique ID.
func (repo *bloodRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	request, err := getJSON[entity.BloodRequest](ctx, repo.store, bloodRequestKey(id))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrBloodRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood request by ID")
	}

	return request, nil
}

// FindAll retrieves every stored blood request.
func (repo *bloodRequestRepository) FindAll(ctx context.Context) ([]*entity.BloodRequest, error) {
	return listJSON[entity.BloodRequest](ctx, repo.store, repo.logger, bloodRequestPrefix)
}
