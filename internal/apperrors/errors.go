package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the actor is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrLocationDenied indicates the actor's assigned locations do not cover the
// location of the record being read or mutated.
var ErrLocationDenied = errors.New("location access denied")

// ErrUnknownTransition indicates no transition is defined for the record's
// current status and the requested action.
var ErrUnknownTransition = errors.New("unknown status transition")

// ErrForbiddenTransition indicates the transition exists but the actor's role
// is not in its allowed set.
var ErrForbiddenTransition = errors.New("role not permitted for transition")

// ErrSideEffectFailed indicates the transition's side effect failed after the
// status commit was attempted; the status change has been rolled back and the
// operation may be retried.
var ErrSideEffectFailed = errors.New("transition side effect failed")

// ErrAssetAlreadyDeleted indicates a reopen was attempted on a record whose
// referenced asset no longer exists. Non-retryable.
var ErrAssetAlreadyDeleted = errors.New("referenced asset no longer exists")

// ErrStaleStatus indicates the record's status changed between read and
// commit; the caller should reload and retry.
var ErrStaleStatus = errors.New("record status changed concurrently")
