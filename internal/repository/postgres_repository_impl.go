package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

const createStorageTable = `CREATE TABLE IF NOT EXISTS client_storage (
	key TEXT PRIMARY KEY,
	value BYTEA NOT NULL,
	updated_at BIGINT NOT NULL
)`

type storageRow struct {
	Key       string `db:"key"`
	Value     []byte `db:"value"`
	UpdatedAt int64  `db:"updated_at"`
}

type PostgresStorageRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewPostgresRepository(ctx context.Context, db *sqlx.DB) (StorageRepository, error) {
	if _, err := db.ExecContext(ctx, createStorageTable); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateNewPostgresRepository").Msg("")
		return nil, err
	}
	return &PostgresStorageRepositoryImpl{db: db}, nil
}

func (r *PostgresStorageRepositoryImpl) Get(ctx context.Context, key string) ([]byte, error) {
	var row storageRow

	err := r.db.GetContext(ctx, &row, "SELECT key, value, updated_at FROM client_storage WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "PostgresGet").Msg("")
		return nil, err
	}

	return row.Value, nil
}

func (r *PostgresStorageRepositoryImpl) Set(ctx context.Context, key string, value []byte) error {
	row := storageRow{Key: key, Value: value, UpdatedAt: time.Now().Unix()}

	_, err := r.db.NamedExecContext(ctx, `INSERT INTO client_storage (key, value, updated_at)
		VALUES (:key, :value, :updated_at)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`, row)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PostgresSet").Msg("")
		return err
	}
	return nil
}

func (r *PostgresStorageRepositoryImpl) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM client_storage WHERE key = $1", key)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PostgresDelete").Msg("")
		return err
	}
	return nil
}
