package app

import (
	"context"
	"fmt"

	"github.com/khangviet/storefront/config"
	"github.com/khangviet/storefront/internal/infrastructure/database/leveldb"
	"github.com/khangviet/storefront/internal/infrastructure/database/mongodb"
	"github.com/khangviet/storefront/internal/infrastructure/database/postgres"
	"github.com/khangviet/storefront/internal/repository"
)

const (
	StorageLevelDB  = "leveldb"
	StorageMongoDB  = "mongodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// OpenStorage connects the client storage driver named in conf. The returned
// func releases it.
func OpenStorage(ctx context.Context, conf *config.Config) (repository.StorageRepository, func() error, error) {
	switch conf.StorageConfig.Driver {
	case StorageLevelDB, "":
		db, err := leveldb.Open(conf.StorageConfig.LevelDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening leveldb at %s: %w", conf.StorageConfig.LevelDBPath, err)
		}
		return repository.CreateNewLevelDBRepository(db), db.Close, nil

	case StorageMongoDB:
		db, err := mongodb.ConnectToMongoDB(ctx, conf.MongoDBConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
		}
		closer := func() error { return db.Client().Disconnect(context.Background()) }
		return repository.CreateNewMongoDBRepository(db, conf.MongoDBConfig.StorageCollection), closer, nil

	case StoragePostgres:
		pg := conf.PostgreSQLConfig
		db, err := postgres.GetDBInstance(pg.DBUsername, pg.DBPassword, pg.DBHost, pg.DBPort, pg.DBName)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		repo, err := repository.CreateNewPostgresRepository(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	case StorageMemory:
		return repository.CreateNewMemoryRepository(), func() error { return nil }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", conf.StorageConfig.Driver)
}
