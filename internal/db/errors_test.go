package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestMapErrorPostgresUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:    "23505",
		Message: `duplicate key value violates unique constraint "idx_user_user_email"`,
		Detail:  "Key (user_email)=(a@b.com) already exists.",
	}

	err := MapError(fmt.Errorf("insert: %w", pgErr))

	var he *httperr.Error
	assert.True(t, errors.As(err, &he))
	assert.Equal(t, httperr.KindConflict, he.Kind)
	assert.Equal(t, pgErr.Message, he.Message)
	assert.Equal(t, pgErr.Detail, he.Details)
}

func TestMapErrorSQLiteUniqueViolation(t *testing.T) {
	err := MapError(errors.New("constraint failed: UNIQUE constraint failed: user.user_email (2067)"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestMapErrorPassesThrough(t *testing.T) {
	assert.Nil(t, MapError(nil))

	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, error(other), MapError(other))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, MapError(plain))
	assert.False(t, IsUniqueViolation(plain))
}
