// Package errs holds the error taxonomy shared by the shipment workflow.
//
// Input problems surface as ValueIsRequiredError, ValueIsInvalidError or
// ValueIsOutOfRangeError. A missing shipment or dispute is an
// ObjectNotFoundError. Engine rejections are InvalidTransitionError and
// PermissionDeniedError, while ConflictError and PersistenceFailureError come
// from the store.
//
// Every type unwraps to one sentinel, so adapters classify with errors.Is:
//
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    return http.StatusNotFound
//	case errors.Is(err, errs.ErrConflict):
//	    return http.StatusConflict
//	}
//
// Notification delivery failures are not part of this taxonomy. They never
// reach the caller of a status change.
package errs
