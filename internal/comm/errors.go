package comm

import "errors"

// ErrNotFound marks a missing file or folder in a context where absence
// is an error for the caller (e.g. deleting a single reference). Bulk
// reads treat absence as an empty result instead and never return it.
var ErrNotFound = errors.New("not found")

// ErrInvalidArgument marks a missing required id/filename or an
// unsupported payload shape. Always propagated to the caller.
var ErrInvalidArgument = errors.New("invalid argument")
