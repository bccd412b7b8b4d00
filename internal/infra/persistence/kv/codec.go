// Package kv implements the domain repositories as JSON records on a repository.KeyValueStore.
package kv

import (
	"context"
	"encoding/json"
	"log/slog"

	"bloodlink/internal/domain/repository"

	"github.com/pkg/errors"
)

// Key namespaces
const (
	bloodRequestPrefix = "blood_request:"
	donorProfilePrefix = "donor_profile:"
	notificationPrefix = "notification:"
)

func getJSON[T any](ctx context.Context, store repository.KeyValueStore, key string) (*T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	record := new(T)
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, errors.Wrapf(err, "failed to decode record %s", key)
	}

	return record, nil
}

func putJSON(ctx context.Context, store repository.KeyValueStore, key string, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to encode record %s", key)
	}

	return store.Set(ctx, key, raw)
}

// listJSON decodes every record under prefix. Records that fail to decode are
// logged and skipped so a single bad entry cannot hide the rest.
func listJSON[T any](ctx context.Context, store repository.KeyValueStore, logger *slog.Logger, prefix string) ([]*T, error) {
	raws, err := store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s", prefix)
	}

	records := make([]*T, 0, len(raws))
	for _, raw := range raws {
		record := new(T)
		if err := json.Unmarshal(raw, record); err != nil {
			logger.WarnContext(ctx, "Skipping undecodable record", slog.String("prefix", prefix), slog.Any("error", err))

			continue
		}
		records = append(records, record)
	}

	return records, nil
}
