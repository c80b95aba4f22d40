package rays3d

// Ray is a world- or object-space half line.
type Ray struct {
	Origin    Tuple // point
	Direction Tuple // vector, unit length in world space
}

// Position returns the point at parametric distance t along the ray.
func (r Ray) Position(t Real) Tuple {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform applies m to both origin and direction. The direction is left
// unnormalized so that reported t values stay measured along the original
// world-space ray.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
