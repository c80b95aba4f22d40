package rays3d

import (
	"fmt"
	"math"
)

// 4×4 matrix (row-major)
type Mat4 struct {
	M [4][4]Real
}

func I4() Mat4 {
	return Mat4{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat4) MulTuple(t Tuple) Tuple {
	return Tuple{
		A.M[0][0]*t.X + A.M[0][1]*t.Y + A.M[0][2]*t.Z + A.M[0][3]*t.W,
		A.M[1][0]*t.X + A.M[1][1]*t.Y + A.M[1][2]*t.Z + A.M[1][3]*t.W,
		A.M[2][0]*t.X + A.M[2][1]*t.Y + A.M[2][2]*t.Z + A.M[2][3]*t.W,
		A.M[3][0]*t.X + A.M[3][1]*t.Y + A.M[3][2]*t.Z + A.M[3][3]*t.W,
	}
}

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// submatrix drops row r and column c, yielding the 3×3 minor matrix.
func (A Mat4) submatrix(r, c int) [3][3]Real {
	var S [3][3]Real
	si := 0
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		sj := 0
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			S[si][sj] = A.M[i][j]
			sj++
		}
		si++
	}
	return S
}

func det3(m [3][3]Real) Real {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// cofactor of element (r,c): signed determinant of the minor.
func (A Mat4) cofactor(r, c int) Real {
	d := det3(A.submatrix(r, c))
	if (r+c)&1 == 1 {
		return -d
	}
	return d
}

// Det expands cofactors along the first row.
func (A Mat4) Det() Real {
	d := 0.0
	for c := 0; c < 4; c++ {
		d += A.M[0][c] * A.cofactor(0, c)
	}
	return d
}

// Inverse returns the algebraic inverse. A determinant within epsDet of
// zero fails with ErrDegenerateTransform; it never substitutes identity.
func (A Mat4) Inverse() (Mat4, error) {
	d := A.Det()
	if math.Abs(d) < epsDet {
		return Mat4{}, fmt.Errorf("%w: determinant %.6g is not invertible", ErrDegenerateTransform, d)
	}
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// transposed on purpose: inverse[c][r] = cofactor(r,c)/det
			R.M[c][r] = A.cofactor(r, c) / d
		}
	}
	return R, nil
}

// Eq compares componentwise within eps.
func (A Mat4) Eq(B Mat4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(A.M[r][c]-B.M[r][c]) >= eps {
				return false
			}
		}
	}
	return true
}
