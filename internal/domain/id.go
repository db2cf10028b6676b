package domain

import "github.com/google/uuid"

// NewID returns an opaque token for a newly created day, schedule item,
// hotel or emergency contact. Uniqueness is probabilistic (random UUID v4),
// which is sufficient for ids scoped to a single trip.
func NewID() string {
	return uuid.NewString()
}
