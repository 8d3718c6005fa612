package physics

import (
	"cratedrop/internal/components"
	"cratedrop/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxStep caps the timestep fed to a single integration step. Long frames
// (window drags, minimized windows) would otherwise launch the body.
const MaxStep = 0.1

// Bounds is the invisible volume the body lives in: walls at +-XMax and
// +-ZMax, ceiling at YMax, floor plane at y = 0.
type Bounds struct {
	XMax float32
	ZMax float32
	YMax float32
}

// Apply clamps a center position to the walls and ceiling, reflecting the
// matching velocity component with restitution. The ceiling only reflects
// an upward velocity so the clamp never fights a falling body. Applying
// it twice in a row is a no-op.
func (b Bounds) Apply(pos, vel rl.Vector3, restitution float32) (rl.Vector3, rl.Vector3) {
	if pos.X > b.XMax {
		pos.X = b.XMax
		vel.X = -vel.X * restitution
	} else if pos.X < -b.XMax {
		pos.X = -b.XMax
		vel.X = -vel.X * restitution
	}

	if pos.Z > b.ZMax {
		pos.Z = b.ZMax
		vel.Z = -vel.Z * restitution
	} else if pos.Z < -b.ZMax {
		pos.Z = -b.ZMax
		vel.Z = -vel.Z * restitution
	}

	if pos.Y > b.YMax {
		pos.Y = b.YMax
		if vel.Y > 0 {
			vel.Y = -vel.Y * restitution
		}
	}

	return pos, vel
}

// ClampPosition applies only the positional half of the wall/ceiling
// response, used when the body is dragged rather than simulated. The
// floor is deliberately left open: pushing a held box into the floor is
// resolved by the integrator on release.
func (b Bounds) ClampPosition(pos rl.Vector3) rl.Vector3 {
	pos.X = rl.Clamp(pos.X, -b.XMax, b.XMax)
	pos.Z = rl.Clamp(pos.Z, -b.ZMax, b.ZMax)
	if pos.Y > b.YMax {
		pos.Y = b.YMax
	}
	return pos
}

type World struct {
	Gravity rl.Vector3
	Bounds  Bounds
	Objects []*engine.GameObject

	// OnFloorImpact fires when a bounce reflects the vertical velocity,
	// with the incoming speed. Used for impact audio.
	OnFloorImpact func(speed float32)
}

func NewWorld() *World {
	return &World{
		Gravity: rl.Vector3{X: 0, Y: -9.8, Z: 0},
		Bounds:  Bounds{XMax: 8, ZMax: 8, YMax: 10},
		Objects: make([]*engine.GameObject, 0),
	}
}

func (w *World) AddObject(g *engine.GameObject) {
	w.Objects = append(w.Objects, g)
}

// Step advances every body by one free-fall frame. The caller only runs
// it while no manipulation is in progress, so the integrator and the
// controller never write the same transform in one frame.
func (w *World) Step(deltaTime float32) {
	if deltaTime > MaxStep {
		deltaTime = MaxStep
	}
	if deltaTime <= 0 {
		return
	}

	for _, obj := range w.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsSleeping {
			continue
		}

		// Semi-implicit Euler: velocity first, position from the new velocity
		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(w.Gravity, deltaTime))
		}
		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, deltaTime),
		)

		// Only pitch and yaw carry spin
		obj.Transform.Rotation.X += rb.AngularVelocity.X * deltaTime
		obj.Transform.Rotation.Y += rb.AngularVelocity.Y * deltaTime

		// Per-frame decay, not dt-scaled; matches the tuned feel
		rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, rb.AngularDamping)

		grounded := false
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			aabb := AABBFromOrientedBox(obj.Transform.Position, box.Size, obj.Transform.Rotation)
			if aabb.Min.Y < 0 {
				grounded = true
				if rb.Velocity.Y < 0 {
					impactSpeed := -rb.Velocity.Y
					rb.Velocity.Y = -rb.Velocity.Y * rb.Bounciness
					rb.Velocity.X *= rb.Friction
					rb.Velocity.Z *= rb.Friction
					rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, rb.ImpactDamping)
					if w.OnFloorImpact != nil {
						w.OnFloorImpact(impactSpeed)
					}
				}
				// Positional correction is independent of the velocity
				// response; it also fires when a resting box sinks in.
				obj.Transform.Position.Y -= aabb.Min.Y
			}
		}

		// Walls and ceiling act on the center position; the soft
		// "invisible wall" feel is intentional.
		obj.Transform.Position, rb.Velocity = w.Bounds.Apply(obj.Transform.Position, rb.Velocity, rb.Bounciness)

		rb.TrySleep(deltaTime, grounded)
	}
}
