package physics

import (
	"math"
	"testing"

	"cratedrop/internal/components"
	"cratedrop/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestBody(pos, vel rl.Vector3) (*World, *engine.GameObject, *components.Rigidbody) {
	w := NewWorld()
	obj := engine.NewGameObject("Crate")
	obj.Transform.Position = pos
	obj.AddComponent(components.NewBoxCollider(rl.Vector3{X: 2, Y: 2, Z: 2}))
	rb := components.NewRigidbody()
	rb.Velocity = vel
	obj.AddComponent(rb)
	w.AddObject(obj)
	return w, obj, rb
}

func vecNear(t *testing.T, name string, got, want rl.Vector3, eps float32) {
	t.Helper()
	if absf(got.X-want.X) > eps || absf(got.Y-want.Y) > eps || absf(got.Z-want.Z) > eps {
		t.Errorf("%s = (%v, %v, %v), want (%v, %v, %v)", name, got.X, got.Y, got.Z, want.X, want.Y, want.Z)
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestStepSemiImplicitEuler(t *testing.T) {
	p0 := rl.Vector3{X: 1, Y: 5, Z: 2}
	v0 := rl.Vector3{X: 1, Y: 2, Z: 3}
	w, obj, rb := newTestBody(p0, v0)

	dt := float32(0.1)
	w.Step(dt)

	// Velocity updates from gravity first, then position from the new
	// velocity - not the old one.
	wantV := rl.Vector3Add(v0, rl.Vector3Scale(w.Gravity, dt))
	wantP := rl.Vector3Add(p0, rl.Vector3Scale(wantV, dt))

	vecNear(t, "velocity", rb.Velocity, wantV, 1e-6)
	vecNear(t, "position", obj.Transform.Position, wantP, 1e-6)
}

func TestStepClampsLongFrames(t *testing.T) {
	w, obj, rb := newTestBody(rl.Vector3{Y: 9}, rl.Vector3{})

	w.Step(0.5) // tab-switch sized frame

	wantV := rl.Vector3Scale(w.Gravity, MaxStep)
	wantP := rl.Vector3{Y: 9 + wantV.Y*MaxStep}
	vecNear(t, "velocity", rb.Velocity, wantV, 1e-6)
	vecNear(t, "position", obj.Transform.Position, wantP, 1e-6)
}

func TestFloorBounceRestitution(t *testing.T) {
	// Strictly vertical drop with friction=1, per the restitution invariant
	w, obj, rb := newTestBody(rl.Vector3{Y: 0.95}, rl.Vector3{X: 1, Y: -5})
	rb.Friction = 1
	rb.Bounciness = 0.6

	dt := float32(1e-5)
	w.Step(dt)

	incoming := float32(-5) + w.Gravity.Y*dt
	wantVy := -incoming * rb.Bounciness
	if rb.Velocity.Y <= 0 {
		t.Fatalf("velocity.Y = %v, want positive after bounce", rb.Velocity.Y)
	}
	if absf(rb.Velocity.Y-wantVy) > 1e-4 {
		t.Errorf("velocity.Y = %v, want %v", rb.Velocity.Y, wantVy)
	}
	if absf(rb.Velocity.X-1) > 1e-4 {
		t.Errorf("velocity.X = %v, want unchanged with friction=1", rb.Velocity.X)
	}

	// Positional correction pushes the box flush onto the floor
	if absf(obj.Transform.Position.Y-1) > 1e-4 {
		t.Errorf("position.Y = %v, want 1 after penetration correction", obj.Transform.Position.Y)
	}
}

func TestFloorImpactDampsSpin(t *testing.T) {
	w, _, rb := newTestBody(rl.Vector3{Y: 0.9}, rl.Vector3{Y: -5})
	rb.AngularVelocity = rl.Vector3{X: 1, Y: 2}

	var impactSpeed float32
	w.OnFloorImpact = func(speed float32) { impactSpeed = speed }

	w.Step(1e-5)

	// Per-frame decay then impact damping
	want := float32(1) * rb.AngularDamping * rb.ImpactDamping
	if absf(rb.AngularVelocity.X-want) > 1e-4 {
		t.Errorf("angular velocity.X = %v, want %v", rb.AngularVelocity.X, want)
	}
	if impactSpeed < 4.9 {
		t.Errorf("impact callback got speed %v, want ~5", impactSpeed)
	}
}

func TestWallReflect(t *testing.T) {
	w, obj, rb := newTestBody(rl.Vector3{X: 7.95, Y: 5}, rl.Vector3{X: 10})
	rb.UseGravity = false
	rb.Bounciness = 0.6

	w.Step(0.1)

	if obj.Transform.Position.X != w.Bounds.XMax {
		t.Errorf("position.X = %v, want clamped to %v", obj.Transform.Position.X, w.Bounds.XMax)
	}
	if absf(rb.Velocity.X+6) > 1e-5 {
		t.Errorf("velocity.X = %v, want -6 after reflection", rb.Velocity.X)
	}
}

func TestCeilingOnlyReflectsUpwardVelocity(t *testing.T) {
	b := Bounds{XMax: 8, ZMax: 8, YMax: 10}

	// Rising body above the ceiling: clamp and reflect
	pos, vel := b.Apply(rl.Vector3{Y: 10.5}, rl.Vector3{Y: 3}, 0.6)
	if pos.Y != 10 {
		t.Errorf("position.Y = %v, want 10", pos.Y)
	}
	if absf(vel.Y+1.8) > 1e-5 {
		t.Errorf("velocity.Y = %v, want -1.8", vel.Y)
	}

	// Falling body above the ceiling: clamp must not fight the fall
	pos, vel = b.Apply(rl.Vector3{Y: 10.5}, rl.Vector3{Y: -3}, 0.6)
	if pos.Y != 10 {
		t.Errorf("position.Y = %v, want 10", pos.Y)
	}
	if vel.Y != -3 {
		t.Errorf("velocity.Y = %v, want -3 (no reflection)", vel.Y)
	}
}

func TestBoundsApplyIdempotent(t *testing.T) {
	b := Bounds{XMax: 8, ZMax: 8, YMax: 10}
	pos := rl.Vector3{X: 9, Y: 11, Z: -9}
	vel := rl.Vector3{X: 1, Y: 1, Z: 1}

	p1, v1 := b.Apply(pos, vel, 0.6)
	p2, v2 := b.Apply(p1, v1, 0.6)

	if p1 != p2 {
		t.Errorf("second Apply moved position: %v -> %v", p1, p2)
	}
	if v1 != v2 {
		t.Errorf("second Apply changed velocity: %v -> %v", v1, v2)
	}
}

func TestBoundaryContainment(t *testing.T) {
	w, obj, rb := newTestBody(rl.Vector3{Y: 5}, rl.Vector3{X: 30, Y: 10, Z: -25})
	rb.CanSleep = false

	const eps = 1e-4
	dt := float32(1.0 / 60.0)
	for i := 0; i < 300; i++ {
		w.Step(dt)
		p := obj.Transform.Position
		if absf(p.X) > w.Bounds.XMax+eps || absf(p.Z) > w.Bounds.ZMax+eps || p.Y > w.Bounds.YMax+eps {
			t.Fatalf("step %d: position (%v, %v, %v) escaped bounds", i, p.X, p.Y, p.Z)
		}
	}
}

func TestSettleOnFloor(t *testing.T) {
	// Spawn above the floor and let it bounce out; the box must end flush
	// on the floor (center at half its height) and essentially motionless.
	w, obj, rb := newTestBody(rl.Vector3{Y: 8}, rl.Vector3{})

	dt := float32(1.0 / 60.0)
	for i := 0; i < 1500; i++ {
		w.Step(dt)
	}

	if absf(obj.Transform.Position.Y-1) > 0.01 {
		t.Errorf("settled position.Y = %v, want half height (1)", obj.Transform.Position.Y)
	}
	speed := float32(math.Sqrt(float64(rl.Vector3DotProduct(rb.Velocity, rb.Velocity))))
	if speed > 0.01 {
		t.Errorf("settled speed = %v, want < 0.01", speed)
	}
	if !rb.IsSleeping {
		t.Error("body should be at rest after settling")
	}
}

func TestSleepingBodySkipsIntegration(t *testing.T) {
	w, obj, rb := newTestBody(rl.Vector3{Y: 1}, rl.Vector3{})
	rb.IsSleeping = true

	w.Step(0.1)

	if obj.Transform.Position.Y != 1 {
		t.Errorf("sleeping body moved to y=%v", obj.Transform.Position.Y)
	}
	if rb.Velocity.Y != 0 {
		t.Errorf("sleeping body gained velocity %v", rb.Velocity.Y)
	}
}
