package repository

import (
	"context"
	"sync"

	"github.com/khangviet/storefront/pkg/errs"
)

type MemoryStorageRepositoryImpl struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func CreateNewMemoryRepository() *MemoryStorageRepositoryImpl {
	return &MemoryStorageRepositoryImpl{data: map[string][]byte{}}
}

func (r *MemoryStorageRepositoryImpl) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return append([]byte{}, v...), nil
}

func (r *MemoryStorageRepositoryImpl) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte{}, value...)
	return nil
}

func (r *MemoryStorageRepositoryImpl) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}
