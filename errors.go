// File: errors.go
// Role: espprc's sentinel errors (spec.md §7).
package espprc

import "errors"

// ErrInvalidInput is returned when an Instance is malformed: NumNodes or
// NumRes below 1, a negative ResMax entry, an out-of-range edge endpoint,
// or a resource vector of the wrong length — a programmer error, fatal at
// construction, mirroring graph.ErrInvalidInput.
var ErrInvalidInput = errors.New("espprc: invalid input")

// ErrInfeasibleInstance is returned when the explorer exhausts both open
// queues (or the concatenator finds no valid pair) without ever forming a
// complete tour: the instance has no feasible elementary cycle through 0
// under the given resource bounds. Solve also returns it when an iteration
// or time budget stops the search before any tour has been found.
var ErrInfeasibleInstance = errors.New("espprc: instance has no feasible elementary tour")
