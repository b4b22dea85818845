package sentinel

import "errors"

// Sentinel errors for storage facts. In-memory stores return these (optionally
// wrapped) and services translate them into domain errors.
//
//   - ErrNotFound: record does not exist in its collection
//   - ErrConflict: a unique name or key is already taken
//
// For validation failures (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
