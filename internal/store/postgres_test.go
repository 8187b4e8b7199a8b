package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
)

// Postgres tests need a disposable database in TEST_DATABASE_URL
func openPostgresBackend(s *CollectionTestSuite) Backend {
	pool, err := OpenPostgres(context.Background(), os.Getenv("TEST_DATABASE_URL"))
	s.Require().NoError(err)
	s.T().Cleanup(pool.Close)

	backend, err := NewPostgresBackend(&PostgresBackendConfig{Pool: pool})
	s.Require().NoError(err)

	return backend
}

func TestPostgresCollection(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, &CollectionTestSuite{openBackend: openPostgresBackend})
}
