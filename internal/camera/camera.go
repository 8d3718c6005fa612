package camera

import (
	"math"

	"cratedrop/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is the fixed manipulation viewpoint. It never moves during the
// demo, but every ray is still derived from its live fields so a future
// orbit control would not break picking.
type Camera struct {
	Position rl.Vector3
	Target   rl.Vector3
	Up       rl.Vector3
	Fovy     float32 // vertical field of view in degrees
}

func New(position, target rl.Vector3) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:     45,
	}
}

// ViewDir returns the normalized direction the camera looks along.
func (c *Camera) ViewDir() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position))
}

// ScreenRay builds a world-space ray through a normalized cursor
// coordinate (screen center (0,0), each axis spanning [-1,1], +Y up).
func (c *Camera) ScreenRay(cursor rl.Vector2, aspect float32) physics.Ray {
	forward := c.ViewDir()
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, c.Up))
	up := rl.Vector3CrossProduct(right, forward)

	halfHeight := float32(math.Tan(float64(c.Fovy) * math.Pi / 360))
	halfWidth := halfHeight * aspect

	dir := rl.Vector3Add(forward,
		rl.Vector3Add(
			rl.Vector3Scale(right, cursor.X*halfWidth),
			rl.Vector3Scale(up, cursor.Y*halfHeight),
		))

	return physics.Ray{
		Origin:    c.Position,
		Direction: rl.Vector3Normalize(dir),
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
