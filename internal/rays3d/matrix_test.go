package rays3d

import (
	"errors"
	"math"
	"testing"
)

func TestI4Mul(t *testing.T) {
	A := Mat4{M: [4][4]Real{
		{0, 1, 2, 4},
		{1, 2, 4, 8},
		{2, 4, 8, 16},
		{4, 8, 16, 32},
	}}
	if got := A.Mul(I4()); !got.Eq(A) {
		t.Fatalf("A*I != A: %+v", got)
	}
	v := Tuple{1, 2, 3, 4}
	if got := I4().MulTuple(v); got != v {
		t.Fatalf("I*t != t: %+v", got)
	}
}

func TestMatrixMul(t *testing.T) {
	A := Mat4{M: [4][4]Real{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}}
	B := Mat4{M: [4][4]Real{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}}
	want := Mat4{M: [4][4]Real{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}}
	if got := A.Mul(B); !got.Eq(want) {
		t.Fatalf("matrix product wrong: %+v", got)
	}
}

func TestMulTuple(t *testing.T) {
	A := Mat4{M: [4][4]Real{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}}
	if got := A.MulTuple(Tuple{1, 2, 3, 1}); got != (Tuple{18, 24, 33, 1}) {
		t.Fatalf("matrix*tuple wrong: %+v", got)
	}
}

func TestTranspose(t *testing.T) {
	A := Mat4{M: [4][4]Real{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}}
	want := Mat4{M: [4][4]Real{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	}}
	if got := A.Transpose(); !got.Eq(want) {
		t.Fatalf("transpose wrong: %+v", got)
	}
	if got := I4().Transpose(); !got.Eq(I4()) {
		t.Fatal("I^T != I")
	}
}

func TestDeterminant(t *testing.T) {
	A := Mat4{M: [4][4]Real{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}}
	if d := A.Det(); math.Abs(float64(d+4071)) > 1e-9 {
		t.Fatalf("det wrong: %v", d)
	}
}

func TestInverse(t *testing.T) {
	A := Mat4{M: [4][4]Real{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}}
	want := Mat4{M: [4][4]Real{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}}
	inv, err := A.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Eq(want) {
		t.Fatalf("inverse wrong: %+v", inv)
	}
	if got := A.Mul(inv); !got.Eq(I4()) {
		t.Fatalf("A*A^-1 != I: %+v", got)
	}
}

func TestInverseRoundtrip(t *testing.T) {
	A := Mat4{M: [4][4]Real{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}}
	B := Mat4{M: [4][4]Real{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}}
	C := A.Mul(B)
	invB, err := B.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if got := C.Mul(invB); !got.Eq(A) {
		t.Fatalf("(A*B)*B^-1 != A: %+v", got)
	}
}

func TestInverseSingular(t *testing.T) {
	A := Mat4{M: [4][4]Real{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}}
	_, err := A.Inverse()
	if !errors.Is(err, ErrDegenerateTransform) {
		t.Fatalf("expected degenerate transform, got %v", err)
	}
}
