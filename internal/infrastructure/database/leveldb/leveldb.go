package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// Open opens, creating if needed, the embedded store at path.
func Open(path string) (*leveldb.DB, error) {
	return leveldb.OpenFile(path, nil)
}

// OpenInMemory is backed by memory only; contents vanish on Close.
func OpenInMemory() (*leveldb.DB, error) {
	return leveldb.Open(storage.NewMemStorage(), nil)
}
