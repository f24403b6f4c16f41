// Package ident holds small identifier/value helpers shared across layers.
package ident

import (
	"time"

	"github.com/google/uuid"
)

// Timestamp returns the current time in UTC. All persisted timestamps go
// through here so created/updated stay comparable.
func Timestamp() time.Time {
	return time.Now().UTC()
}

// NewUUID returns a random UUID (v4) as a string.
func NewUUID() string {
	return uuid.NewString()
}

// Unique reports whether v contains no duplicate elements. Set-backed on
// purpose: element count vs. distinct count, no pairwise scanning.
func Unique[T comparable](v []T) bool {
	seen := make(map[T]struct{}, len(v))
	for _, e := range v {
		seen[e] = struct{}{}
	}
	return len(seen) == len(v)
}
