// internal/component/targeting.go
package component

import "github.com/WChurchill/qualified-immunity/internal/types"

// Targeting is a seek relation. The target handle must be checked for liveness
// on every use.
type Targeting struct {
	Target types.EntityID
}

// SeekHostile marks ally cells that hunt hostiles.
type SeekHostile struct{}
