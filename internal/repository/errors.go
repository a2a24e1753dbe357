package repository

import (
	"errors"
	"fmt"

	"github.com/creativeshelf/creativeshelf/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// wrapStorage converts a backend rejection into a domain.StorageError,
// keeping the backend-native code, message and hint. Non-Postgres errors
// are wrapped with the operation label only.
func wrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.StorageError{
			Op:      op,
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Hint:    pgErr.Hint,
			Err:     err,
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
