package repository

import "context"

// StorageRepository is durable per-visitor key/value storage. Get returns
// errs.ErrNotFound for a missing key.
type StorageRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
