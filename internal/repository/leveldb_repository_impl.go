package repository

import (
	"context"
	"errors"

	"github.com/khangviet/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/syndtr/goleveldb/leveldb"
)

type LevelDBStorageRepositoryImpl struct {
	db *leveldb.DB
}

func CreateNewLevelDBRepository(db *leveldb.DB) StorageRepository {
	return &LevelDBStorageRepositoryImpl{db: db}
}

func (r *LevelDBStorageRepositoryImpl) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "LevelDBGet").Msg("")
		return nil, err
	}
	return v, nil
}

func (r *LevelDBStorageRepositoryImpl) Set(ctx context.Context, key string, value []byte) error {
	if err := r.db.Put([]byte(key), value, nil); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "LevelDBSet").Msg("")
		return err
	}
	return nil
}

func (r *LevelDBStorageRepositoryImpl) Delete(ctx context.Context, key string) error {
	if err := r.db.Delete([]byte(key), nil); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "LevelDBDelete").Msg("")
		return err
	}
	return nil
}
