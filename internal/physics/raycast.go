package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3 // assumed normalized
}

type RayHit struct {
	Point    rl.Vector3
	Distance float32
}

// IntersectAABB performs a slab test against the box and returns the nearest
// hit in front of the ray origin.
func (r Ray) IntersectAABB(box AABB) (RayHit, bool) {
	var tmin, tmax float32

	// X slab
	if r.Direction.X != 0 {
		t1 := (box.Min.X - r.Origin.X) / r.Direction.X
		t2 := (box.Max.X - r.Origin.X) / r.Direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if r.Origin.X < box.Min.X || r.Origin.X > box.Max.X {
		return RayHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if r.Direction.Y != 0 {
		t1 := (box.Min.Y - r.Origin.Y) / r.Direction.Y
		t2 := (box.Max.Y - r.Origin.Y) / r.Direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if r.Origin.Y < box.Min.Y || r.Origin.Y > box.Max.Y {
		return RayHit{}, false
	}

	if tmin > tmax {
		return RayHit{}, false
	}

	// Z slab
	if r.Direction.Z != 0 {
		t1 := (box.Min.Z - r.Origin.Z) / r.Direction.Z
		t2 := (box.Max.Z - r.Origin.Z) / r.Direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if r.Origin.Z < box.Min.Z || r.Origin.Z > box.Max.Z {
		return RayHit{}, false
	}

	if tmin > tmax || tmax < 0 {
		return RayHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}

	point := rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, t))
	return RayHit{Point: point, Distance: t}, true
}

// IntersectPlane returns where the ray hits a plane defined by point + normal.
func (r Ray) IntersectPlane(planePoint, planeNormal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(r.Direction, planeNormal)
	if math.Abs(float64(denom)) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, r.Origin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, t)), true
}
