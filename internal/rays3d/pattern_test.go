package rays3d

import (
	"errors"
	"testing"
)

func newPattern(t *testing.T, kind PatternKind, transform Mat4) Pattern {
	t.Helper()
	p, err := NewPattern(kind, white, black, true, transform)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestStripePattern(t *testing.T) {
	p := newPattern(t, PatternStripe, I4())

	// constant in y and z
	for _, q := range []Tuple{Point(0, 1, 0), Point(0, 2, 0), Point(0, 0, 1), Point(0, 0, 2)} {
		if got := p.colorAt(q); got != white {
			t.Fatalf("stripe at %+v wrong: %+v", q, got)
		}
	}
	// alternates in x
	cases := []struct {
		x    Real
		want RGB
	}{
		{0, white},
		{0.9, white},
		{1, black},
		{-0.1, black},
		{-1, black},
		{-1.1, white},
	}
	for _, c := range cases {
		if got := p.colorAt(Point(c.x, 0, 0)); got != c.want {
			t.Fatalf("stripe at x=%v wrong: %+v", c.x, got)
		}
	}
}

func TestGradientPattern(t *testing.T) {
	p := newPattern(t, PatternGradient, I4())
	cases := []struct {
		x    Real
		want RGB
	}{
		{0, white},
		{0.25, RGB{0.75, 0.75, 0.75}},
		{0.5, RGB{0.5, 0.5, 0.5}},
		{0.75, RGB{0.25, 0.25, 0.25}},
	}
	for _, c := range cases {
		if got := p.colorAt(Point(c.x, 0, 0)); !got.Eq(c.want) {
			t.Fatalf("gradient at x=%v wrong: %+v", c.x, got)
		}
	}
}

func TestRingPattern(t *testing.T) {
	p := newPattern(t, PatternRing, I4())
	// rings grow with the x/y distance from the axis
	cases := []struct {
		q    Tuple
		want RGB
	}{
		{Point(0, 0, 0), white},
		{Point(1, 0, 0), black},
		{Point(0, 1, 0), black},
		{Point(0.708, 0.708, 0), black},
		{Point(0, 0, 5), white},
	}
	for i, c := range cases {
		if got := p.colorAt(c.q); got != c.want {
			t.Fatalf("ring case %d wrong: %+v", i, got)
		}
	}
}

func TestCheckerPattern3D(t *testing.T) {
	p := newPattern(t, PatternChecker, I4())
	cases := []struct {
		q    Tuple
		want RGB
	}{
		{Point(0, 0, 0), white},
		{Point(0.99, 0, 0), white},
		{Point(1.01, 0, 0), black},
		{Point(0, 0.99, 0), white},
		{Point(0, 1.01, 0), black},
		{Point(0, 0, 0.99), white},
		{Point(0, 0, 1.01), black},
	}
	for i, c := range cases {
		if got := p.colorAt(c.q); got != c.want {
			t.Fatalf("checker case %d wrong: %+v", i, got)
		}
	}
}

func TestCheckerPattern2D(t *testing.T) {
	p, err := NewPattern(PatternChecker, white, black, false, I4())
	if err != nil {
		t.Fatal(err)
	}
	// y is ignored, the board lives in the x/z plane
	for _, y := range []Real{0, 0.99, 1.01, 55.5} {
		if got := p.colorAt(Point(0, y, 0)); got != white {
			t.Fatalf("flat checker at y=%v wrong: %+v", y, got)
		}
	}
	if got := p.colorAt(Point(1.01, 1.01, 0)); got != black {
		t.Fatalf("flat checker x parity wrong: %+v", got)
	}
	if got := p.colorAt(Point(1.01, 0, 1.01)); got != white {
		t.Fatalf("flat checker x+z parity wrong: %+v", got)
	}
}

func TestPatternTransformations(t *testing.T) {
	// object transform only
	s, err := NewSphere(Scaling(2, 2, 2), DefaultMaterial())
	if err != nil {
		t.Fatal(err)
	}
	p := newPattern(t, PatternStripe, I4())
	if got := p.AtShape(s, Point(1.5, 0, 0)); got != white {
		t.Fatalf("object transform wrong: %+v", got)
	}

	// pattern transform only
	u := unitSphere(t)
	p = newPattern(t, PatternStripe, Scaling(2, 2, 2))
	if got := p.AtShape(u, Point(1.5, 0, 0)); got != white {
		t.Fatalf("pattern transform wrong: %+v", got)
	}

	// both
	p = newPattern(t, PatternStripe, Translation(0.5, 0, 0))
	if got := p.AtShape(s, Point(2.5, 0, 0)); got != white {
		t.Fatalf("combined transforms wrong: %+v", got)
	}
}

func TestSolidPattern(t *testing.T) {
	c := RGB{0.2, 0.4, 0.6}
	p := SolidPattern(c)
	for _, q := range []Tuple{Point(0, 0, 0), Point(10, -4, 3.5), Point(-99, 99, 0)} {
		if got := p.colorAt(q); got != c {
			t.Fatalf("solid at %+v wrong: %+v", q, got)
		}
	}
}

func TestNewPatternDegenerateTransform(t *testing.T) {
	_, err := NewPattern(PatternStripe, white, black, false, Scaling(0, 1, 1))
	if !errors.Is(err, ErrDegenerateTransform) {
		t.Fatalf("expected degenerate transform, got %v", err)
	}
}
