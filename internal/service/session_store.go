package service

import (
	"context"
	"encoding/json"
	"errors"

	backendapi "github.com/khangviet/storefront/internal/infrastructure/backend-api"
	"github.com/khangviet/storefront/internal/repository"
	"github.com/khangviet/storefront/pkg/errs"
)

const tokenKeyPrefix = "authTokens:"

// storageTokenStore keeps one session's backend credentials in client storage.
type storageTokenStore struct {
	storage repository.StorageRepository
	key     string
}

func newStorageTokenStore(storage repository.StorageRepository, sessionID string) *storageTokenStore {
	return &storageTokenStore{storage: storage, key: tokenKeyPrefix + sessionID}
}

func (s *storageTokenStore) Load(ctx context.Context) (backendapi.Credentials, error) {
	raw, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, errs.ErrNotFound) {
		return backendapi.Credentials{}, nil
	}
	if err != nil {
		return backendapi.Credentials{}, err
	}

	var creds backendapi.Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return backendapi.Credentials{}, err
	}
	return creds, nil
}

func (s *storageTokenStore) Save(ctx context.Context, creds backendapi.Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, s.key, raw)
}

func (s *storageTokenStore) Clear(ctx context.Context) error {
	return s.storage.Delete(ctx, s.key)
}
