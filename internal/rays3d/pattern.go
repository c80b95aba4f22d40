package rays3d

import "math"

// PatternKind selects the procedural color rule; dispatch is a plain
// switch, new kinds add a case.
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternStripe
	PatternGradient
	PatternRing
	PatternChecker
)

// Pattern is a procedural two-color stencil evaluated in its own space:
// world point -> shape object space -> pattern space -> sample.
type Pattern struct {
	Kind      PatternKind
	A, B      RGB
	ThreeD    bool // checkerboard only: include y in the parity sum
	Transform Mat4

	inv Mat4 // cached inverse of Transform
}

// NewPattern caches the pattern-space inverse; a non-invertible transform
// fails construction.
func NewPattern(kind PatternKind, a, b RGB, threeD bool, transform Mat4) (Pattern, error) {
	inv, err := transform.Inverse()
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{Kind: kind, A: a, B: b, ThreeD: threeD, Transform: transform, inv: inv}, nil
}

// SolidPattern is the constant-color pattern used for plain materials.
func SolidPattern(c RGB) Pattern {
	return Pattern{Kind: PatternSolid, A: c, Transform: I4(), inv: I4()}
}

// colorAt samples the stencil at a point already in pattern space.
func (p Pattern) colorAt(q Tuple) RGB {
	switch p.Kind {
	case PatternStripe:
		if int64(math.Floor(q.X))%2 == 0 {
			return p.A
		}
		return p.B
	case PatternGradient:
		frac := q.X - math.Floor(q.X)
		return p.A.Add(p.B.Sub(p.A).Scale(frac))
	case PatternRing:
		d := math.Sqrt(q.X*q.X + q.Y*q.Y)
		if int64(math.Floor(d))%2 == 0 {
			return p.A
		}
		return p.B
	case PatternChecker:
		sum := math.Floor(q.X) + math.Floor(q.Z)
		if p.ThreeD {
			sum += math.Floor(q.Y)
		}
		if int64(sum)%2 == 0 {
			return p.A
		}
		return p.B
	default:
		return p.A
	}
}

// AtShape samples the pattern for a world-space point on the given shape,
// composing shape-inverse then pattern-inverse.
func (p Pattern) AtShape(s *Shape, worldPoint Tuple) RGB {
	objPoint := s.inv.MulTuple(worldPoint)
	patPoint := p.inv.MulTuple(objPoint)
	return p.colorAt(patPoint)
}
