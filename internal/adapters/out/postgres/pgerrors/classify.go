// Package pgerrors maps driver errors onto the workflow error taxonomy.
package pgerrors

import (
	"errors"

	"shipflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that mean "another transaction got there first".
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeUniqueViolation      = "23505"
)

// Classify wraps err as errs.ConflictError when Postgres reports a concurrency
// failure and as errs.PersistenceFailureError otherwise. Errors that already
// carry a workflow sentinel, and nil, are returned unchanged.
func Classify(operation, resource, id string, err error) error {
	if err == nil || isClassified(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable, codeUniqueViolation:
			return errs.NewConflictErrorWithCause(resource, id, err)
		}
	}

	return errs.NewPersistenceFailureError(operation, err)
}

func isClassified(err error) bool {
	for _, sentinel := range []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrInvalidTransition,
		errs.ErrPermissionDenied,
		errs.ErrConflict,
		errs.ErrPersistenceFailure,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
