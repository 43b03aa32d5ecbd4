package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrDuplicate means an insert hit a uniqueness constraint (email or the
	// (usuario, filme) review pair).
	ErrDuplicate = errors.New("duplicate row")
	// ErrMissingReference means an insert pointed at a user or movie that
	// does not exist.
	ErrMissingReference = errors.New("referenced row does not exist")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateConstraint maps postgres constraint violations onto the sentinel
// errors above so services never have to know about pq error codes.
func translateConstraint(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pgUniqueViolation:
		return ErrDuplicate
	case pgForeignKeyViolation:
		return ErrMissingReference
	default:
		return err
	}
}
