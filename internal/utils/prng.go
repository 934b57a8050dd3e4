// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// PRNGService wraps a seeded math/rand source so every random decision in a
// simulation (target choice, headings, spawn placement) is reproducible.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed is replaced with the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		seed: seed,
		rng:  rand.New(source),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Bool returns true with probability p.
func (s *PRNGService) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// Range returns a random float in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Angle returns a uniformly random angle in [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// Heading returns a unit vector with a uniformly random direction.
func (s *PRNGService) Heading() geom.Vec2 {
	return geom.FromAngle(s.Angle())
}

// InDisk returns a point distributed uniformly inside a disk of the given radius
// centred on the origin.
func (s *PRNGService) InDisk(radius float64) geom.Vec2 {
	r := radius * math.Sqrt(s.rng.Float64())
	return geom.FromAngle(s.Angle()).Scale(r)
}

// Choose picks one id uniformly. The caller must pass a non-empty slice in a
// stable order for the result to be reproducible.
func (s *PRNGService) Choose(ids []types.EntityID) types.EntityID {
	if len(ids) == 0 {
		return types.InvalidEntity
	}
	return ids[s.rng.Intn(len(ids))]
}
