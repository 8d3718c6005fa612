package components

import (
	"cratedrop/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rest thresholds
const (
	RestSpeedThreshold   = 0.1 // units/sec - below this, body might come to rest
	RestAngularThreshold = 0.1 // rad/sec - below this, body might come to rest
	RestTimeThreshold    = 0.3 // seconds of low velocity before resting
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // radians per second; only pitch (X) and yaw (Y) are driven
	Bounciness      float32    // fraction of vertical speed kept per floor bounce
	Friction        float32    // fraction of horizontal speed kept per floor bounce
	AngularDamping  float32    // per-frame decay of angular velocity
	ImpactDamping   float32    // fraction of angular velocity kept per floor impact
	UseGravity      bool

	// Rest state - a resting body skips integration until woken
	IsSleeping bool
	sleepTimer float32 // time spent below the rest thresholds while grounded
	CanSleep   bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Velocity:        rl.Vector3{},
		AngularVelocity: rl.Vector3{},
		Bounciness:      0.6,
		Friction:        0.98,
		AngularDamping:  0.95,
		ImpactDamping:   0.8,
		UseGravity:      true,
		CanSleep:        true,
	}
}

// Wake forces the rigidbody out of rest state.
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep puts the body to rest once it has been slow and grounded for
// long enough. Airborne bodies never rest, so a box paused at the top of
// a throw keeps falling.
func (r *Rigidbody) TrySleep(deltaTime float32, grounded bool) {
	if !r.CanSleep || r.IsSleeping {
		return
	}
	if !grounded {
		r.sleepTimer = 0
		return
	}

	speed := rl.Vector3Length(r.Velocity)
	angSpeed := rl.Vector3Length(r.AngularVelocity)

	if speed < RestSpeedThreshold && angSpeed < RestAngularThreshold {
		r.sleepTimer += deltaTime

		// Extra damping near rest reduces jitter on the floor
		r.Velocity = rl.Vector3Scale(r.Velocity, 0.9)
		r.AngularVelocity = rl.Vector3Scale(r.AngularVelocity, 0.9)

		if r.sleepTimer >= RestTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
			r.AngularVelocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
