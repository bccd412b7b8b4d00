// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bloodlink/config"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/lifecycle"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper escapes LIKE wildcards so prefixes match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// kvStore implements the repository.KeyValueStore interface on the kv_entries table.
type kvStore struct {
	db *gorm.DB
}

// KVStoreParams defines the required parameters
type KVStoreParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// NewKVStore is the constructor for kvStore. With storage.autoMigrate the table is created on start.
func NewKVStore(params KVStoreParams) repository.KeyValueStore {
	store := &kvStore{db: params.DB}

	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.AutoMigrate && params.Lifecycle != nil {
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := params.DB.WithContext(ctx).AutoMigrate(&model.KVEntryModel{}); err != nil {
					return errors.Wrap(err, "failed to migrate kv_entries")
				}
				if params.Logger != nil {
					params.Logger.Info("kv_entries table is ready")
				}

				return nil
			},
		})
	}

	return store
}

// Get retrieves the value stored under key.
func (store *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.KVEntryModel

	if err := store.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to get key %s", key)
	}

	return entry.Value, nil
}

// Set upserts the value stored under key.
func (store *kvStore) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now()
	entry := &model.KVEntryModel{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := store.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error
	if err != nil {
		if isInvalidJSONValue(err) || isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rejected value for key " + key)
		}

		return domainerrors.NewStoreExecuteError(err, "failed to set key "+key)
	}

	return nil
}

// GetByPrefix retrieves every value whose key starts with prefix, ordered by key.
func (store *kvStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var entries []*model.KVEntryModel

	if err := store.db.WithContext(ctx).
		Where(`key LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%").
		Order("key ASC").
		Find(&entries).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to scan prefix %s", prefix)
	}

	values := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		values = append(values, entry.Value)
	}

	return values, nil
}
