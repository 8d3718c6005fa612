package components

import (
	"cratedrop/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// HalfHeight is the collider's vertical half extent, the height at which
// the owner's center sits when flush on the floor.
func (b *BoxCollider) HalfHeight() float32 {
	return b.Size.Y / 2
}
