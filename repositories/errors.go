package repositories

import (
	"errors"
	"fmt"
	"strings"

	"blog-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// wrapError converts a GORM error into one of the domain error kinds.
// Errors that already carry a kind are returned unchanged.
func wrapError(err error, resource, operation, details string) error {
	if err == nil {
		return nil
	}

	if isDomainError(err) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ErrorNotFound{Resource: resource, Search: details}
	}

	if isUniqueViolation(err) {
		return &models.ErrorConflict{Resource: resource, Inner: err}
	}

	return &models.ErrorStore{
		Operation: fmt.Sprintf("%s (%s)", operation, details),
		Inner:     err,
	}
}

func isDomainError(err error) bool {
	var invalid *models.ErrorInvalidInput
	var notFound *models.ErrorNotFound
	var conflict *models.ErrorConflict
	var store *models.ErrorStore
	return errors.As(err, &invalid) || errors.As(err, &notFound) ||
		errors.As(err, &conflict) || errors.As(err, &store)
}

// isUniqueViolation covers dialects whose driver errors are not translated
// into gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
