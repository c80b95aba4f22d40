package rays3d

import (
	"errors"
	"math"
	"testing"
)

func unitSphere(t *testing.T) *Shape {
	t.Helper()
	s, err := NewSphere(I4(), DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSphereIntersect(t *testing.T) {
	s := unitSphere(t)
	cases := []struct {
		origin Tuple
		ts     []Real
	}{
		{Point(0, 0, -5), []Real{4, 6}},
		{Point(0, 1, -5), []Real{5, 5}}, // tangent
		{Point(0, 2, -5), nil},
		{Point(0, 0, 0), []Real{-1, 1}}, // inside
		{Point(0, 0, 5), []Real{-6, -4}},
	}
	for i, c := range cases {
		xs := s.Intersect(Ray{Origin: c.origin, Direction: Vector(0, 0, 1)})
		if len(xs) != len(c.ts) {
			t.Fatalf("case %d: got %d intersections, want %d", i, len(xs), len(c.ts))
		}
		for j, want := range c.ts {
			if math.Abs(float64(xs[j].T-want)) > 1e-9 {
				t.Fatalf("case %d: t[%d]=%v, want %v", i, j, xs[j].T, want)
			}
			if xs[j].Shape != s {
				t.Fatalf("case %d: intersection lost its shape", i)
			}
		}
	}
}

func TestSphereIntersectTransformed(t *testing.T) {
	r := Ray{Origin: Point(0, 0, -5), Direction: Vector(0, 0, 1)}

	s, err := NewSphere(Scaling(2, 2, 2), DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}
	xs := s.Intersect(r)
	if len(xs) != 2 || xs[0].T != 3 || xs[1].T != 7 {
		t.Fatalf("scaled sphere wrong: %+v", xs)
	}

	s, err = NewSphere(Translation(5, 0, 0), DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}
	if xs := s.Intersect(r); len(xs) != 0 {
		t.Fatalf("translated sphere should miss: %+v", xs)
	}
}

func TestSphereNormals(t *testing.T) {
	s := unitSphere(t)
	k := math.Sqrt(3) / 3
	cases := []struct {
		p, want Tuple
	}{
		{Point(1, 0, 0), Vector(1, 0, 0)},
		{Point(0, 1, 0), Vector(0, 1, 0)},
		{Point(0, 0, 1), Vector(0, 0, 1)},
		{Point(k, k, k), Vector(k, k, k)},
	}
	for i, c := range cases {
		n := s.NormalAt(c.p)
		if !n.Eq(c.want) {
			t.Fatalf("normal case %d wrong: %+v", i, n)
		}
		if !n.Eq(n.Norm()) {
			t.Fatalf("normal case %d not unit length", i)
		}
	}
}

func TestSphereNormalTransformed(t *testing.T) {
	s, err := NewSphere(Translation(0, 1, 0), DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}
	n := s.NormalAt(Point(0, 1.70711, -0.70711))
	if !n.Eq(Vector(0, 0.70711, -0.70711)) {
		t.Fatalf("translated normal wrong: %+v", n)
	}

	s, err = NewSphere(Scaling(1, 0.5, 1).Mul(RotationZ(math.Pi/5)), DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}
	h := math.Sqrt(2) / 2
	n = s.NormalAt(Point(0, h, -h))
	if !n.Eq(Vector(0, 0.97014, -0.24254)) {
		t.Fatalf("scaled+rotated normal wrong: %+v", n)
	}
}

func TestPlaneIntersect(t *testing.T) {
	p, err := NewPlane(I4(), DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}

	// parallel and coplanar rays never hit
	if xs := p.Intersect(Ray{Origin: Point(0, 10, 0), Direction: Vector(0, 0, 1)}); len(xs) != 0 {
		t.Fatalf("parallel ray hit: %+v", xs)
	}
	if xs := p.Intersect(Ray{Origin: Point(0, 0, 0), Direction: Vector(0, 0, 1)}); len(xs) != 0 {
		t.Fatalf("coplanar ray hit: %+v", xs)
	}

	xs := p.Intersect(Ray{Origin: Point(0, 1, 0), Direction: Vector(0, -1, 0)})
	if len(xs) != 1 || xs[0].T != 1 || xs[0].Shape != p {
		t.Fatalf("from above wrong: %+v", xs)
	}
	xs = p.Intersect(Ray{Origin: Point(0, -1, 0), Direction: Vector(0, 1, 0)})
	if len(xs) != 1 || xs[0].T != 1 {
		t.Fatalf("from below wrong: %+v", xs)
	}
}

func TestPlaneNormal(t *testing.T) {
	p, err := NewPlane(I4(), DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []Tuple{Point(0, 0, 0), Point(10, 0, -10), Point(-5, 0, 150)} {
		if n := p.NormalAt(q); !n.Eq(Vector(0, 1, 0)) {
			t.Fatalf("plane normal at %+v wrong: %+v", q, n)
		}
	}
}

func TestShapeIDsUnique(t *testing.T) {
	a := unitSphere(t)
	b := unitSphere(t)
	if a.ID == b.ID {
		t.Fatalf("shapes share ID %d", a.ID)
	}
}

func TestNewShapeDegenerateTransform(t *testing.T) {
	_, err := NewSphere(Scaling(0, 0, 0), DefaultMaterial())
	if !errors.Is(err, ErrDegenerateTransform) {
		t.Fatalf("expected degenerate transform, got %v", err)
	}
}
