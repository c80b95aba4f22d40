package rays3d

import (
	"fmt"
	"math"
)

// Tuple is a 4-component value: W=1 for points, W=0 for directions.
type Tuple struct {
	X, Y, Z, W Real
}

// Point builds a position tuple (W=1).
func Point(x, y, z Real) Tuple { return Tuple{x, y, z, 1} }

// Vector builds a direction tuple (W=0).
func Vector(x, y, z Real) Tuple { return Tuple{x, y, z, 0} }

func (t Tuple) IsPoint() bool  { return t.W == 1 }
func (t Tuple) IsVector() bool { return t.W == 0 }

func (a Tuple) Add(b Tuple) Tuple { return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Tuple) Sub(b Tuple) Tuple { return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (t Tuple) Neg() Tuple        { return Tuple{-t.X, -t.Y, -t.Z, -t.W} }
func (t Tuple) Mul(s Real) Tuple  { return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s} }
func (t Tuple) Div(s Real) Tuple  { return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s} }

// Dot returns the dot product between two tuples.
func (a Tuple) Dot(b Tuple) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the 3-D cross product; W of the inputs is ignored and the
// result is a vector.
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Len returns the Euclidean length of the tuple.
func (t Tuple) Len() Real { return math.Sqrt(t.Dot(t)) }

// Norm returns a unit-length version of the tuple.
// If the tuple is (near) zero, it returns the input unchanged; hot paths
// call this only on directions already known to be non-zero.
func (t Tuple) Norm() Tuple {
	l := t.Len()
	if l == 0 {
		return t
	}
	return Tuple{t.X / l, t.Y / l, t.Z / l, t.W / l}
}

// Normalize is the checked variant used at validation boundaries: it fails
// on a zero-length input instead of passing it through.
func (t Tuple) Normalize() (Tuple, error) {
	l := t.Len()
	if l < eps {
		return Tuple{}, fmt.Errorf("%w: cannot normalize zero-length vector (%.6g, %.6g, %.6g, %.6g)", ErrNumericDegeneracy, t.X, t.Y, t.Z, t.W)
	}
	return Tuple{t.X / l, t.Y / l, t.Z / l, t.W / l}, nil
}

// Reflect mirrors the tuple about a unit normal.
func (t Tuple) Reflect(n Tuple) Tuple {
	return t.Sub(n.Mul(2 * t.Dot(n)))
}

// Eq compares componentwise within eps.
func (a Tuple) Eq(b Tuple) bool {
	return math.Abs(a.X-b.X) < eps &&
		math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Z-b.Z) < eps &&
		math.Abs(a.W-b.W) < eps
}

// RGB stores color components; rendering keeps them unclamped until the
// final pixel write.
type RGB struct {
	R, G, B Real
}

func (a RGB) Add(b RGB) RGB    { return RGB{a.R + b.R, a.G + b.G, a.B + b.B} }
func (a RGB) Sub(b RGB) RGB    { return RGB{a.R - b.R, a.G - b.G, a.B - b.B} }
func (c RGB) Scale(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }

// MulC multiplies componentwise (Hadamard product).
func (a RGB) MulC(b RGB) RGB { return RGB{a.R * b.R, a.G * b.G, a.B * b.B} }

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}

// Eq compares componentwise within eps.
func (a RGB) Eq(b RGB) bool {
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps
}

var (
	black = RGB{0, 0, 0}
	white = RGB{1, 1, 1}
)
