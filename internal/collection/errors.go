package collection

import "errors"

var (
	// ErrNotFound means the named collection file does not exist.
	// Callers that create-on-write treat this as "start empty".
	ErrNotFound = errors.New("collection not found")

	// ErrNotFiltered means Sync was asked to rebuild a manual collection.
	ErrNotFiltered = errors.New("collection has no filters")

	// ErrInvalid means the collection file exists but is not a usable
	// YAML document.
	ErrInvalid = errors.New("invalid collection file")
)

// Reason codes for per-path failures in AddError.
const (
	ReasonNotFound    = "not_found"    // Photo file does not exist
	ReasonOutsideRoot = "outside_root" // Path does not resolve under the photo root
)

// AddError records one rejected candidate path from Add.
type AddError struct {
	Path   string
	Reason string
}
