package postgresql_test

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/sbexpress/hris-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction_Commit(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewEmployeeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(queryLike("UPDATE employees SET deleted_at = NOW()")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := postgresql.WithTransaction(context.Background(), db, func(txCtx context.Context) error {
		return repo.SoftDelete(txCtx, 1)
	})
	require.NoError(t, err)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("business rule violated")
	err := postgresql.WithTransaction(context.Background(), db, func(txCtx context.Context) error {
		return fnErr
	})
	assert.ErrorIs(t, err, fnErr)
}

func TestWithTransaction_BeginError(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := postgresql.WithTransaction(context.Background(), db, func(txCtx context.Context) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
