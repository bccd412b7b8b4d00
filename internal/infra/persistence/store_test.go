package persistence

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"bloodlink/config"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewKeyValueStore(t *testing.T) {
	tests := []struct {
		name    string
		storage *config.StorageConfig
		wantErr string
	}{
		{
			name:    "memory driver",
			storage: &config.StorageConfig{Driver: config.StorageDriverMemory},
		},
		{
			name:    "postgres without connection settings",
			storage: &config.StorageConfig{Driver: config.StorageDriverPostgres},
			wantErr: "postgres configuration is required",
		},
		{
			name:    "defaults to postgres",
			storage: nil,
			wantErr: "postgres configuration is required",
		},
		{
			name:    "unknown driver",
			storage: &config.StorageConfig{Driver: "redis"},
			wantErr: "unknown storage driver: redis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewKeyValueStore(StoreParams{
				Config: &config.Config{Storage: tt.storage},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, store)

				return
			}

			require.NoError(t, err)
			require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
		})
	}
}

func TestNewDonorRepository_UsesStoreOutsideDemo(t *testing.T) {
	store, err := NewKeyValueStore(StoreParams{
		Config: &config.Config{Storage: &config.StorageConfig{Driver: config.StorageDriverMemory}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	repo, err := NewDonorRepository(DonorRepositoryParams{
		Config: &config.Config{},
		Store:  store,
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	donor := &entity.DonorProfile{ID: uuid.New(), Name: "Ava", BloodType: entity.BloodTypeOPositive}
	require.NoError(t, repo.Save(context.Background(), donor))

	found, err := repo.FindByID(context.Background(), donor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ava", found.Name)
}

func TestNewDonorRepository_DemoFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donors.yaml")
	fixture := "donors:\n  - id: 33333333-3333-4333-8333-333333333333\n    name: Kai\n    bloodType: B+\n    isAvailable: true\n"
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	repo, err := NewDonorRepository(DonorRepositoryParams{
		Config: &config.Config{Demo: &config.DemoConfig{Enabled: true, DonorFixturePath: path}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	donors, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Equal(t, entity.BloodTypeBPositive, donors[0].BloodType)

	assert.ErrorIs(t, repo.Save(context.Background(), donors[0]), repository.ErrDonorRepositoryReadOnly)
}
