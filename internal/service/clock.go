package service

import (
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time so services stay testable without a real store.
type Clock interface {
	Now() time.Time
}

// UTCClock is the default Clock, returning UTC wall time.
type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator defines interface for UUID generation (for testing)
type UUIDGenerator interface {
	NewString() string
}

// DefaultUUIDGenerator is the default UUID generator using google/uuid
type DefaultUUIDGenerator struct{}

// NewString generates a new UUID string
func (g *DefaultUUIDGenerator) NewString() string {
	return uuid.NewString()
}
