package postgresql_test

import (
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a database.DB backed by a pgxmock pool. Unmet expectations fail the test.
func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock, database.NewFromPool(mock)
}

func queryLike(fragment string) string {
	return regexp.QuoteMeta(fragment)
}
