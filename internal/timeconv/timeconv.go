// Package timeconv pins the time conventions used at the wire boundary.
// The domain holds absolute instants in UTC, while the HTTP contract speaks
// offset-qualified local timestamps; Go folds both into time.Time, so these
// helpers make each crossing of the boundary explicit and keep the domain
// side normalized.
package timeconv

import "time"

// InstantToOffset renders an absolute instant as an offset-qualified wall
// time with the offset fixed at UTC (+00:00). Total and deterministic; the
// result carries no monotonic reading, so encoded wire values compare
// bytewise.
func InstantToOffset(t time.Time) time.Time {
	return t.UTC()
}

// OffsetToInstant collapses an offset-qualified wall time to the absolute
// instant it denotes, normalized to UTC. The offset is consumed, not
// validated: a non-zero offset is converted correctly and then discarded.
// Exact left inverse of InstantToOffset for zero-offset input.
func OffsetToInstant(t time.Time) time.Time {
	return t.UTC()
}
