// Package sentinel holds the store-level facts services translate into
// domain errors.
package sentinel

import "errors"

// ErrNotFound reports that a row, or a stored function's target, does not
// exist.
var ErrNotFound = errors.New("not found")
