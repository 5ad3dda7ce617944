// Package kv contains the concrete implementation of the persistence layer:
// a JSON key-value store over a gocloud blob bucket, with one blob per
// storage key holding the full collection for one entity type.
package kv

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"pricefield/config"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// Storage keys. Each key maps to one blob holding a JSON document: an
// array of entity records, or a single object for the settings key.
const (
	usersKey         = "users"
	shopsKey         = "shops"
	productsKey      = "products"
	shopProductsKey  = "shop_products"
	priceUpdatesKey  = "price_updates"
	subscriptionsKey = "subscriptions"
	paymentsKey      = "payments"
	favoritesKey     = "favorites"
	settingsKey      = "settings"
)

// Store wraps a blob bucket with JSON serialize/deserialize per key.
//
// Reads degrade: an absent key, a read failure, or a corrupt document all
// surface as "not found" (logged, never returned). Writes fail loudly.
// Collection read-modify-write is deliberately unguarded; concurrent
// writers are last-write-wins, matching the storage model this layer
// implements.
type Store struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewStore opens the bucket selected by config: a directory-backed bucket
// for the "file" backend, an in-process bucket for "memory".
func NewStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	storageCfg := cfg.Storage
	if storageCfg == nil || storageCfg.Backend == "" || storageCfg.Backend == "memory" {
		return &Store{bucket: memblob.OpenBucket(nil), logger: logger}, nil
	}

	if storageCfg.Backend != "file" {
		return nil, errors.Errorf("unknown storage backend: %s", storageCfg.Backend)
	}

	if err := os.MkdirAll(storageCfg.Path, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create storage directory")
	}

	bucket, err := fileblob.OpenBucket(storageCfg.Path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file bucket")
	}

	return &Store{bucket: bucket, logger: logger}, nil
}

// NewMemStore returns a Store over an in-process bucket. Used by tests.
func NewMemStore(logger *slog.Logger) *Store {
	return &Store{bucket: memblob.OpenBucket(nil), logger: logger}
}

// Get deserializes the document stored under key into out. It reports
// false when the key is absent, unreadable, or holds a document that does
// not parse; those conditions are logged and treated as "no data present".
func (s *Store) Get(ctx context.Context, key string, out any) bool {
	data, err := s.bucket.ReadAll(ctx, blobName(key))
	if err != nil {
		if gcerrors.Code(err) != gcerrors.NotFound {
			s.logger.Warn("storage read failed, treating as absent",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("stored document does not parse, treating as absent",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// Set serializes val and stores it under key. Write failures are logged
// and returned to the caller.
func (s *Store) Set(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize document for key %s", key)
	}

	if err := s.bucket.WriteAll(ctx, blobName(key), data, nil); err != nil {
		s.logger.Error("storage write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return errors.Wrapf(err, "failed to write key %s", key)
	}

	return nil
}

// Remove deletes the document stored under key. Removing an absent key is
// not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, blobName(key)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to remove key %s", key)
	}

	return nil
}

// Clear wipes every key in the bucket.
func (s *Store) Clear(ctx context.Context) error {
	iter := s.bucket.List(&blob.ListOptions{})
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to list storage keys")
		}

		if err := s.bucket.Delete(ctx, obj.Key); err != nil {
			return errors.Wrapf(err, "failed to delete %s", obj.Key)
		}
	}

	return nil
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func blobName(key string) string {
	return key + ".json"
}
