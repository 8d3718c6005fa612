package manip

import (
	"cratedrop/internal/camera"
	"cratedrop/internal/components"
	"cratedrop/internal/engine"
	"cratedrop/internal/input"
	"cratedrop/internal/physics"
	"cratedrop/internal/picking"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode is the manipulation state. The integrator only runs in ModeIdle,
// so the controller and the physics step never fight over the transform.
type Mode int

const (
	ModeIdle Mode = iota
	ModeRotating
	ModeMoving
)

const (
	// RotateSensitivity converts screen pixels to radians.
	RotateSensitivity = 0.005

	// Exponential smoothing factors for the release velocity estimates.
	// Raw per-event derivatives are too noisy to throw with.
	angularSmoothing = 0.5
	linearSmoothing  = 0.3

	// minEventDt guards the velocity derivative against near-zero event
	// spacing. The positional delta itself is still applied.
	minEventDt = 0.001

	// stillWindow is how long the pointer may rest before a release
	// counts as a place instead of a throw.
	stillWindow = 0.05
)

// dragContext only exists while the controller is Moving: a plane through
// the object's grab position facing the camera, and the offset from the
// grab intersection to the object's origin.
type dragContext struct {
	planePoint  rl.Vector3
	planeNormal rl.Vector3
	offset      rl.Vector3
}

// Controller turns pointer samples into direct manipulation of a single
// object: rotate with the primary button, move/throw with the secondary.
type Controller struct {
	Mode   Mode
	Camera *camera.Camera
	Target *engine.GameObject
	Bounds physics.Bounds

	drag       dragContext
	prevTime   float64
	hasPrev    bool
	lastMoveAt float64 // time of the last committed positional update while Moving
}

func New(cam *camera.Camera, target *engine.GameObject, bounds physics.Bounds) *Controller {
	return &Controller{
		Mode:   ModeIdle,
		Camera: cam,
		Target: target,
		Bounds: bounds,
	}
}

// Update consumes one pointer sample. Called once per frame, before the
// physics step, so events always win over free-fall within a frame.
func (c *Controller) Update(s input.Sample, aspect float32) {
	switch c.Mode {
	case ModeIdle:
		c.updateIdle(s, aspect)
	case ModeRotating:
		c.updateRotating(s)
	case ModeMoving:
		c.updateMoving(s, aspect)
	}

	c.prevTime = s.Time
	c.hasPrev = true
}

func (c *Controller) updateIdle(s input.Sample, aspect float32) {
	if s.PrimaryPressed {
		if _, ok := picking.Pick(c.Camera, s.Cursor, aspect, c.Target); ok {
			c.grab(components.HighlightDim)
			c.Mode = ModeRotating
		}
		return
	}

	if s.SecondaryPressed {
		hit, ok := picking.Pick(c.Camera, s.Cursor, aspect, c.Target)
		if !ok {
			return
		}
		c.grab(components.HighlightBright)

		// Drag plane through the object, facing the camera
		c.drag = dragContext{
			planePoint:  c.Target.Transform.Position,
			planeNormal: c.Camera.ViewDir(),
		}
		ray := c.Camera.ScreenRay(s.Cursor, aspect)
		if pt, ok := ray.IntersectPlane(c.drag.planePoint, c.drag.planeNormal); ok {
			c.drag.offset = rl.Vector3Subtract(pt, c.Target.Transform.Position)
		} else {
			// Ray grazed the plane; fall back to the surface hit
			c.drag.offset = rl.Vector3Subtract(hit.Point, c.Target.Transform.Position)
		}

		c.lastMoveAt = s.Time
		c.Mode = ModeMoving
	}
}

// grab freezes the body so simulated motion stops the instant the user
// takes over, and shows the engaged highlight.
func (c *Controller) grab(level components.Highlight) {
	if rb := c.rigidbody(); rb != nil {
		rb.Velocity = rl.Vector3{}
		rb.AngularVelocity = rl.Vector3{}
		rb.Wake()
	}
	c.setHighlight(level)
}

func (c *Controller) updateRotating(s input.Sample) {
	if s.PrimaryReleased {
		c.release()
		return
	}
	if !s.Moved() {
		return
	}

	yawDelta := s.Delta.X * RotateSensitivity
	pitchDelta := s.Delta.Y * RotateSensitivity

	// Yaw about world up is applied before pitch about the local right
	// axis; the transform composes the two in that order.
	c.Target.Transform.Rotation.Y += yawDelta
	c.Target.Transform.Rotation.X += pitchDelta

	rb := c.rigidbody()
	if rb == nil {
		return
	}
	dt := c.sampleDt(s)
	if dt < minEventDt {
		return
	}
	instant := rl.Vector3{X: pitchDelta / dt, Y: yawDelta / dt}
	rb.AngularVelocity = rl.Vector3Lerp(rb.AngularVelocity, instant, angularSmoothing)
}

func (c *Controller) updateMoving(s input.Sample, aspect float32) {
	if s.SecondaryReleased {
		// A pointer that sat still before letting go places the box
		// instead of throwing it.
		if rb := c.rigidbody(); rb != nil && s.Time-c.lastMoveAt > stillWindow {
			rb.Velocity = rl.Vector3{}
		}
		c.release()
		return
	}
	if !s.Moved() {
		return
	}

	ray := c.Camera.ScreenRay(s.Cursor, aspect)
	pt, ok := ray.IntersectPlane(c.drag.planePoint, c.drag.planeNormal)
	if !ok {
		// Gesture stalls until the ray finds the plane again
		return
	}

	candidate := c.Bounds.ClampPosition(rl.Vector3Subtract(pt, c.drag.offset))

	rb := c.rigidbody()
	if rb != nil {
		if dt := c.sampleDt(s); dt >= minEventDt {
			instant := rl.Vector3Scale(
				rl.Vector3Subtract(candidate, c.Target.Transform.Position),
				1/dt,
			)
			rb.Velocity = rl.Vector3Lerp(rb.Velocity, instant, linearSmoothing)
		}
	}

	c.Target.Transform.Position = candidate
	c.lastMoveAt = s.Time
}

func (c *Controller) release() {
	c.setHighlight(components.HighlightNone)
	c.drag = dragContext{}
	c.Mode = ModeIdle
}

// sampleDt is the elapsed time since the previous sample, in seconds.
func (c *Controller) sampleDt(s input.Sample) float32 {
	if !c.hasPrev {
		return 0
	}
	return float32(s.Time - c.prevTime)
}

func (c *Controller) rigidbody() *components.Rigidbody {
	return engine.GetComponent[*components.Rigidbody](c.Target)
}

func (c *Controller) setHighlight(level components.Highlight) {
	if mr := engine.GetComponent[*components.ModelRenderer](c.Target); mr != nil {
		mr.Highlight = level
	}
}
