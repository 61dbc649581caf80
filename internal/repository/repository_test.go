package repository

import (
	"context"
	"testing"

	leveldbDriver "github.com/khangviet/storefront/internal/infrastructure/database/leveldb"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/stretchr/testify/suite"
)

type StorageRepositoryTestSuite struct {
	suite.Suite
	newRepo func() StorageRepository
	cleanup func()
}

func (s *StorageRepositoryTestSuite) SetupTest() {
	s.cleanup = func() {}
}

func (s *StorageRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *StorageRepositoryTestSuite) Test_RoundTrip() {
	ctx := context.Background()
	repo := s.newRepo()

	_, err := repo.Get(ctx, "cartItems:missing")
	s.ErrorIs(err, errs.ErrNotFound)

	s.Require().NoError(repo.Set(ctx, "cartItems:a", []byte(`[{"quantity":1}]`)))
	got, err := repo.Get(ctx, "cartItems:a")
	s.Require().NoError(err)
	s.Equal(`[{"quantity":1}]`, string(got))

	s.Require().NoError(repo.Set(ctx, "cartItems:a", []byte(`[]`)))
	got, err = repo.Get(ctx, "cartItems:a")
	s.Require().NoError(err)
	s.Equal(`[]`, string(got))

	s.Require().NoError(repo.Delete(ctx, "cartItems:a"))
	_, err = repo.Get(ctx, "cartItems:a")
	s.ErrorIs(err, errs.ErrNotFound)

	s.NoError(repo.Delete(ctx, "cartItems:never-set"))
}

func TestMemoryStorageRepository(t *testing.T) {
	suite.Run(t, &StorageRepositoryTestSuite{
		newRepo: func() StorageRepository { return CreateNewMemoryRepository() },
	})
}

func TestLevelDBStorageRepository(t *testing.T) {
	s := &StorageRepositoryTestSuite{}
	s.newRepo = func() StorageRepository {
		db, err := leveldbDriver.Open(t.TempDir())
		s.Require().NoError(err)
		s.cleanup = func() { db.Close() }
		return CreateNewLevelDBRepository(db)
	}
	suite.Run(t, s)
}
