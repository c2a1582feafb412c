package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const uniqueViolationCode = "23505"

// MapError rewrites unique constraint violations from either driver into a
// Conflict carrying the driver's message. Other errors pass through untouched.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		var details any
		if pgErr.Detail != "" {
			details = pgErr.Detail
		}
		return httperr.ErrConflict(pgErr.Message, details)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return httperr.ErrConflict(err.Error(), nil)
	}

	return err
}

func IsUniqueViolation(err error) bool {
	return httperr.IsKind(MapError(err), httperr.KindConflict)
}
