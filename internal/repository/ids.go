package repository

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces opaque identifiers for newly created entities.
// The generator is injected into each repository rather than living in
// process-global state, so tests can run in isolation with a
// deterministic generator and no reset call.
type IDGenerator interface {
	// NextID returns a fresh identifier.  kind is a short entity tag
	// ("trip", "user", ...) embedded in the id for readability.
	NextID(kind string) string
}

// UUIDGenerator issues random, collision-free identifiers.  This is the
// production generator.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID(kind string) string {
	return kind + "-" + uuid.NewString()
}

// SequenceGenerator issues monotonically increasing identifiers
// ("trip-1", "trip-2", ...).  Intended for tests that want readable,
// reproducible ids.
type SequenceGenerator struct {
	n atomic.Uint64
}

func NewSequenceGenerator() *SequenceGenerator { return &SequenceGenerator{} }

func (g *SequenceGenerator) NextID(kind string) string {
	return fmt.Sprintf("%s-%d", kind, g.n.Add(1))
}
