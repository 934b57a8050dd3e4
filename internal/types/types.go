// internal/types/types.go
package types

// EntityID is a handle into the entity arena. Handles are never reused, so a
// stale handle simply fails the liveness check.
type EntityID uint64

// InvalidEntity is never handed out by the arena.
const InvalidEntity EntityID = 0
