package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

func openSQLiteBackend(s *CollectionTestSuite) Backend {
	db, err := OpenSQLite(filepath.Join(s.T().TempDir(), "store.db"))
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })

	backend, err := NewSQLiteBackend(&SQLiteBackendConfig{DB: db})
	s.Require().NoError(err)

	return backend
}

func TestSQLiteCollection(t *testing.T) {
	suite.Run(t, &CollectionTestSuite{openBackend: openSQLiteBackend})
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	for i := 0; i < 2; i++ {
		db, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		db.Close()
	}
}
