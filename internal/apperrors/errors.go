package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// For whole-document reads the repositories translate this into an empty
// collection, so it mostly surfaces for lookups of individual records.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a document write lost the optimistic concurrency
// race even after the store's bounded retries. Nothing was committed; the
// mutation must be redone against a fresh read.
var ErrConflict = errors.New("document version conflict")

// ErrTransient indicates a network or backend failure. The operation may
// succeed if retried by the caller; no partial state was committed.
var ErrTransient = errors.New("transient backend error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the actor's role does not permit the operation.
var ErrForbidden = errors.New("forbidden")
