// Package persistence selects the storage backends configured for the process.
package persistence

import (
	"log/slog"

	"bloodlink/config"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/infra/persistence/fixture"
	"bloodlink/internal/infra/persistence/kv"
	"bloodlink/internal/infra/persistence/memory"
	"bloodlink/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams defines the required parameters
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore opens the key-value store named by storage.driver.
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	driver := config.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory key-value store; data is lost on restart")

		return memory.NewKVStore(), nil
	case config.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required for the postgres storage driver")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewKVStore(postgres.KVStoreParams{
			Lifecycle: params.Lifecycle,
			DB:        db,
			Config:    params.Config,
			Logger:    params.Logger,
		}), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// DonorRepositoryParams defines the required parameters
type DonorRepositoryParams struct {
	fx.In

	Config *config.Config
	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// NewDonorRepository serves the demo fixture when demo.enabled is set and the key-value store otherwise.
func NewDonorRepository(params DonorRepositoryParams) (repository.DonorRepository, error) {
	if params.Config.Demo != nil && params.Config.Demo.Enabled {
		return fixture.NewDonorRepositoryFromConfig(params.Config, params.Logger)
	}

	return kv.NewDonorRepository(kv.RepositoryParams{
		Store:  params.Store,
		Logger: params.Logger,
	}), nil
}
