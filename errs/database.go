package errs

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// NewDatabaseError converts a store error into the ApiErr taxonomy. The
// duplicate-key string checks cover drivers that do not implement gorm's
// error translation (the pure-Go sqlite driver among them).
func NewDatabaseError(operation, entity string, cause error) error {
	if cause == nil {
		return nil
	}
	switch {
	case errors.Is(cause, gorm.ErrRecordNotFound):
		return &ApiErr{
			StatusCode: 404,
			err:        ErrNotFound,
			Details:    fmt.Sprintf("%s not found", entity),
		}
	case isDuplicateKey(cause):
		return &ApiErr{
			StatusCode: 409,
			err:        ErrConflict,
			Details:    fmt.Sprintf("%s already exists", entity),
			Cause:      cause,
		}
	default:
		return &ApiErr{
			StatusCode: 500,
			err:        ErrInternal,
			Details:    fmt.Sprintf("failed to %s", operation),
			Cause:      cause,
		}
	}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}
