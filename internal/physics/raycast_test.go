package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRayIntersectAABBHit(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	ray := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: -1}}

	hit, ok := ray.IntersectAABB(box)
	if !ok {
		t.Fatal("ray through box center should hit")
	}
	if absf(hit.Distance-4) > 1e-5 {
		t.Errorf("distance = %v, want 4", hit.Distance)
	}
	if absf(hit.Point.Z-1) > 1e-5 {
		t.Errorf("hit point Z = %v, want 1 (near face)", hit.Point.Z)
	}
}

func TestRayIntersectAABBMiss(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	miss := Ray{Origin: rl.Vector3{X: 5, Z: 5}, Direction: rl.Vector3{Z: -1}}
	if _, ok := miss.IntersectAABB(box); ok {
		t.Error("offset ray should miss the box")
	}

	behind := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: 1}}
	if _, ok := behind.IntersectAABB(box); ok {
		t.Error("ray pointing away should miss the box")
	}
}

func TestRayIntersectAABBFromInside(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	ray := Ray{Origin: rl.Vector3{}, Direction: rl.Vector3{Z: -1}}

	hit, ok := ray.IntersectAABB(box)
	if !ok {
		t.Fatal("ray starting inside should hit the exit face")
	}
	if absf(hit.Distance-1) > 1e-5 {
		t.Errorf("distance = %v, want 1", hit.Distance)
	}
}

func TestRayIntersectPlane(t *testing.T) {
	ray := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: -1}}

	pt, ok := ray.IntersectPlane(rl.Vector3{}, rl.Vector3{Z: 1})
	if !ok {
		t.Fatal("ray should hit the facing plane")
	}
	if absf(pt.Z) > 1e-5 {
		t.Errorf("hit point = %v, want on z=0 plane", pt)
	}
}

func TestRayIntersectPlaneParallel(t *testing.T) {
	ray := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{X: 1}}

	if _, ok := ray.IntersectPlane(rl.Vector3{}, rl.Vector3{Z: 1}); ok {
		t.Error("parallel ray should not intersect the plane")
	}
}

func TestRayIntersectPlaneBehind(t *testing.T) {
	ray := Ray{Origin: rl.Vector3{Z: 5}, Direction: rl.Vector3{Z: 1}}

	if _, ok := ray.IntersectPlane(rl.Vector3{}, rl.Vector3{Z: 1}); ok {
		t.Error("plane behind the ray origin should not intersect")
	}
}
