package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrStoreUnavailable indicates a connectivity or configuration error reaching
// the backing document store. Fatal: the run aborts.
var ErrStoreUnavailable = errors.New("document store unavailable")

// ErrAuthenticationFailed indicates the administrator credentials were
// rejected. Fatal: the run aborts before any mutation is attempted.
var ErrAuthenticationFailed = errors.New("authentication failed")

// ErrBatchCommitFailed indicates one chunk's commit was rejected by the store.
// Prior chunks stay committed; remaining chunks are not attempted.
var ErrBatchCommitFailed = errors.New("batch commit failed")

// ErrMissingConfig indicates a required environment variable was absent at
// startup. Configuration absence is a startup failure, never a runtime one.
var ErrMissingConfig = errors.New("missing required configuration")

// Orphaned sub-account definitions, unresolved shop references and residual
// post-delete state are warnings accumulated into reports, not errors.
