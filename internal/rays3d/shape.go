package rays3d

import (
	"math"
	"sync/atomic"
)

// ShapeKind tags the geometry variant; intersection and normal math
// dispatch on it with a switch.
type ShapeKind int

const (
	KindSphere ShapeKind = iota
	KindPlane
)

func (k ShapeKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Shape places one geometry variant in the world. The object-to-world
// transform, its inverse and the inverse-transpose are fixed at
// construction; intersection always works in object space via inv and
// reports t along the original world-space ray.
type Shape struct {
	ID       int
	Kind     ShapeKind
	Material Material

	Transform Mat4
	inv       Mat4
	invT      Mat4
}

var shapeSeq int64

// newShape caches both inverses; a non-invertible transform fails here,
// never at render time.
func newShape(kind ShapeKind, transform Mat4, m Material) (*Shape, error) {
	inv, err := transform.Inverse()
	if err != nil {
		return nil, err
	}
	s := &Shape{
		ID:        int(atomic.AddInt64(&shapeSeq, 1)),
		Kind:      kind,
		Material:  m,
		Transform: transform,
		inv:       inv,
		invT:      inv.Transpose(),
	}
	DebugLog("Created %s #%d: %+v", kind, s.ID, transform)
	return s, nil
}

// NewSphere places a unit sphere (origin, radius 1 in object space).
func NewSphere(transform Mat4, m Material) (*Shape, error) {
	return newShape(KindSphere, transform, m)
}

// NewPlane places the y=0 plane.
func NewPlane(transform Mat4, m Material) (*Shape, error) {
	return newShape(KindPlane, transform, m)
}

// localIntersect solves the shape equation for a ray already in object
// space. Up to two t values; n is how many are valid. Both quadratic
// roots come back regardless of sign, filtering happens at the hit step.
func (s *Shape) localIntersect(r Ray) (t0, t1 Real, n int) {
	switch s.Kind {
	case KindSphere:
		sphereToRay := r.Origin.Sub(Point(0, 0, 0))
		a := r.Direction.Dot(r.Direction)
		b := 2 * r.Direction.Dot(sphereToRay)
		c := sphereToRay.Dot(sphereToRay) - 1

		disc := b*b - 4*a*c
		if disc < -eps {
			return 0, 0, 0
		}
		if disc < 0 {
			disc = 0 // tangent within tolerance
		}
		sq := math.Sqrt(disc)
		return (-b - sq) / (2 * a), (-b + sq) / (2 * a), 2
	case KindPlane:
		if math.Abs(r.Direction.Y) < eps {
			return 0, 0, 0 // parallel to the plane
		}
		return -r.Origin.Y / r.Direction.Y, 0, 1
	default:
		return 0, 0, 0
	}
}

// localNormalAt returns the object-space normal at an object-space point.
func (s *Shape) localNormalAt(p Tuple) Tuple {
	switch s.Kind {
	case KindPlane:
		return Vector(0, 1, 0)
	default: // sphere
		return Vector(p.X, p.Y, p.Z)
	}
}

// Intersect transforms the world ray into object space and reports the
// intersections along the original ray.
func (s *Shape) Intersect(r Ray) []Intersection {
	t0, t1, n := s.localIntersect(r.Transform(s.inv))
	switch n {
	case 1:
		return []Intersection{{T: t0, Shape: s}}
	case 2:
		return []Intersection{{T: t0, Shape: s}, {T: t1, Shape: s}}
	default:
		return nil
	}
}

// NormalAt computes the world-space surface normal: object-space normal
// through the inverse-transpose, W forced to 0, renormalized.
func (s *Shape) NormalAt(worldPoint Tuple) Tuple {
	objPoint := s.inv.MulTuple(worldPoint)
	localN := s.localNormalAt(objPoint)
	worldN := s.invT.MulTuple(localN)
	worldN.W = 0
	return worldN.Norm()
}
