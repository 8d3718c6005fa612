package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// AABBFromOrientedBox computes the world-space AABB of a box that has been
// pitched about its local right axis and yawed about the world up axis.
// Rotation is Euler radians, same convention as Transform.Rotation.
func AABBFromOrientedBox(center, size, rotation rl.Vector3) AABB {
	if rotation.X == 0 && rotation.Y == 0 && rotation.Z == 0 {
		return NewAABBFromCenter(center, size)
	}

	// Pitch first, then yaw, matching the render transform
	rotMatrix := rl.MatrixMultiply(rl.MatrixRotateX(rotation.X), rl.MatrixRotateY(rotation.Y))

	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	corners := [8]rl.Vector3{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}

	box := AABB{
		Min: rl.Vector3{X: 1e30, Y: 1e30, Z: 1e30},
		Max: rl.Vector3{X: -1e30, Y: -1e30, Z: -1e30},
	}
	for _, c := range corners {
		p := rl.Vector3Add(rl.Vector3Transform(c, rotMatrix), center)
		box.Min = rl.Vector3Min(box.Min, p)
		box.Max = rl.Vector3Max(box.Max, p)
	}
	return box
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}
