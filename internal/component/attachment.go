// internal/component/attachment.go
package component

import (
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// Attachment ties an entity to a parent. Offset and Rotation are expressed in
// the parent's local frame; the world transform is derived from the parent
// every tick. Children are destroyed together with their parent.
type Attachment struct {
	Parent   types.EntityID
	Offset   geom.Vec2
	Rotation float64
}
