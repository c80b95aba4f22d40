package rays3d

import (
	"fmt"
	"math"
)

// Translation moves points by (x,y,z); vectors (W=0) are unaffected.
func Translation(x, y, z Real) Mat4 {
	M := I4()
	M.M[0][3] = x
	M.M[1][3] = y
	M.M[2][3] = z
	return M
}

func Scaling(x, y, z Real) Mat4 {
	M := I4()
	M.M[0][0] = x
	M.M[1][1] = y
	M.M[2][2] = z
	return M
}

func RotationX(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

func RotationY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}

func RotationZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// Shearing makes each coordinate grow in proportion to the other two:
// xy is the amount x changes per unit y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy Real) Mat4 {
	M := I4()
	M.M[0][1], M.M[0][2] = xy, xz
	M.M[1][0], M.M[1][2] = yx, yz
	M.M[2][0], M.M[2][1] = zx, zy
	return M
}

// ViewTransform builds the world-to-camera matrix for an eye at from
// looking toward to, with up hinting the camera roll. The basis is
// forward/left/trueUp; degenerate inputs (from==to, zero up, up parallel
// to the view direction) fail.
func ViewTransform(from, to, up Tuple) (Mat4, error) {
	forward, err := to.Sub(from).Normalize()
	if err != nil {
		return Mat4{}, err
	}
	upn, err := up.Normalize()
	if err != nil {
		return Mat4{}, err
	}
	left := forward.Cross(upn)
	if left.Len() < eps {
		return Mat4{}, fmt.Errorf("%w: up (%.6g, %.6g, %.6g) is parallel to the view direction", ErrNumericDegeneracy, up.X, up.Y, up.Z)
	}
	trueUp := left.Cross(forward)

	orientation := Mat4{M: [4][4]Real{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}}
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z)), nil
}
