package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cnsllgllr/qrmaster/internal/apperr"
)

// translate maps gorm errors onto the application error kinds. Anything that
// is neither a missing row nor a duplicate key is a transactional failure and
// the enclosing unit has been rolled back.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict(op, err)
	default:
		return &apperr.PersistenceError{Op: op, Err: err}
	}
}
