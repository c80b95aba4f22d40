package rays3d

// Intersection is one parametric hit along a world-space ray.
type Intersection struct {
	T     Real
	Shape *Shape
}

// Hit picks the visible intersection: the smallest t >= 0. An
// intersection exactly at the origin still counts. Ties keep
// first-encountered order.
func Hit(xs []Intersection) (Intersection, bool) {
	best := Intersection{}
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// hitComps caches everything shading needs about one hit.
type hitComps struct {
	t         Real
	shape     *Shape
	point     Tuple
	overPoint Tuple // point biased by eps along the normal, against acne
	eyev      Tuple
	normalv   Tuple
	reflectv  Tuple
	inside    bool
}

// prepareComputations derives the shading context for an intersection.
// The normal is flipped when the eye is inside the shape.
func prepareComputations(x Intersection, r Ray) hitComps {
	point := r.Position(x.T)
	eyev := r.Direction.Neg()
	normalv := x.Shape.NormalAt(point)

	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Neg()
	}

	return hitComps{
		t:         x.T,
		shape:     x.Shape,
		point:     point,
		overPoint: point.Add(normalv.Mul(eps)),
		eyev:      eyev,
		normalv:   normalv,
		reflectv:  r.Direction.Reflect(normalv),
		inside:    inside,
	}
}
