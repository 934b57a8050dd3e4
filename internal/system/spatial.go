// internal/system/spatial.go
package system

import (
	"math"

	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

type cellKey struct {
	X, Y int
}

// SpatialHash is an unbounded uniform grid used as a collision broad phase.
// Each entity is inserted into every cell its bounding circle touches.
type SpatialHash struct {
	cellSize float64
	cells    map[cellKey][]types.EntityID
}

func NewSpatialHash(cellSize float64) *SpatialHash {
	return &SpatialHash{
		cellSize: cellSize,
		cells:    make(map[cellKey][]types.EntityID),
	}
}

// Clear empties every cell, keeping allocated capacity.
func (h *SpatialHash) Clear() {
	for k, ids := range h.cells {
		h.cells[k] = ids[:0]
	}
}

func (h *SpatialHash) cellRange(center geom.Vec2, radius float64) (minX, minY, maxX, maxY int) {
	minX = int(math.Floor((center.X - radius) / h.cellSize))
	minY = int(math.Floor((center.Y - radius) / h.cellSize))
	maxX = int(math.Floor((center.X + radius) / h.cellSize))
	maxY = int(math.Floor((center.Y + radius) / h.cellSize))
	return
}

// Insert adds id to all cells overlapping the square around the bounding circle.
func (h *SpatialHash) Insert(id types.EntityID, center geom.Vec2, radius float64) {
	minX, minY, maxX, maxY := h.cellRange(center, radius)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			k := cellKey{cx, cy}
			h.cells[k] = append(h.cells[k], id)
		}
	}
}

// CandidatePairs calls fn once for every unordered pair of ids sharing at
// least one cell. The smaller id is passed first.
func (h *SpatialHash) CandidatePairs(fn func(a, b types.EntityID)) {
	seen := make(map[[2]types.EntityID]struct{})
	for _, ids := range h.cells {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, b := ids[i], ids[j]
				if a == b {
					continue
				}
				if a > b {
					a, b = b, a
				}
				key := [2]types.EntityID{a, b}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				fn(a, b)
			}
		}
	}
}
