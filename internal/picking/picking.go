package picking

import (
	"cratedrop/internal/camera"
	"cratedrop/internal/components"
	"cratedrop/internal/engine"
	"cratedrop/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pick casts a ray from the camera through the normalized cursor and
// tests it against the object's world bounding box. Pure function of the
// frame's inputs; no state survives between calls.
func Pick(cam *camera.Camera, cursor rl.Vector2, aspect float32, obj *engine.GameObject) (physics.RayHit, bool) {
	box := engine.GetComponent[*components.BoxCollider](obj)
	if box == nil {
		return physics.RayHit{}, false
	}

	aabb := physics.AABBFromOrientedBox(obj.Transform.Position, box.Size, obj.Transform.Rotation)
	ray := cam.ScreenRay(cursor, aspect)
	return ray.IntersectAABB(aabb)
}
