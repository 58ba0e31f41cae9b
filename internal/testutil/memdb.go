// Package testutil provides in-memory fakes for use in tests across the
// module. Never import this in production code.
package testutil

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// OpenMemLevelDB opens a LevelDB database backed entirely by memory, so
// archive package tests never touch the filesystem.
func OpenMemLevelDB() (*leveldb.DB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open in-memory leveldb: %w", err)
	}
	return db, nil
}
