// Package perspective implements the 3x3 projective transform used to
// resample a tilted or skewed QR symbol into its rectified module grid,
// the standard square-to-quadrilateral homography used throughout the
// zxing family of decoders.
package perspective

// Transform is a 3x3 homogeneous transform.
type Transform struct {
	a11, a12, a13 float64
	a21, a22, a23 float64
	a31, a32, a33 float64
}

// Apply applies the homography to (x, y), returning the mapped point.
func (t Transform) Apply(x, y float64) (float64, float64) {
	denom := t.a13*x + t.a23*y + t.a33
	return (t.a11*x + t.a21*y + t.a31) / denom, (t.a12*x + t.a22*y + t.a32) / denom
}

// SquareToQuad builds the transform mapping the unit square
// (0,0),(1,0),(1,1),(0,1) onto the quadrilateral (x0,y0)..(x3,y3), given
// in the same winding order.
func SquareToQuad(x0, y0, x1, y1, x2, y2, x3, y3 float64) Transform {
	dx3 := x0 - x1 + x2 - x3
	dy3 := y0 - y1 + y2 - y3

	if dx3 == 0 && dy3 == 0 {
		return Transform{
			a11: x1 - x0, a12: y1 - y0, a13: 0,
			a21: x2 - x1, a22: y2 - y1, a23: 0,
			a31: x0, a32: y0, a33: 1,
		}
	}

	dx1 := x1 - x2
	dx2 := x3 - x2
	dy1 := y1 - y2
	dy2 := y3 - y2

	denominator := dx1*dy2 - dx2*dy1
	a13 := (dx3*dy2 - dx2*dy3) / denominator
	a23 := (dx1*dy3 - dx3*dy1) / denominator

	return Transform{
		a11: x1 - x0 + a13*x1, a12: y1 - y0 + a13*y1, a13: a13,
		a21: x3 - x0 + a23*x3, a22: y3 - y0 + a23*y3, a23: a23,
		a31: x0, a32: y0, a33: 1,
	}
}

// adjoint returns the matrix adjoint of t, whose application inverts t
// up to an overall scale factor (sufficient for a projective transform).
func (t Transform) adjoint() Transform {
	return Transform{
		a11: t.a22*t.a33 - t.a23*t.a32,
		a12: t.a13*t.a32 - t.a12*t.a33,
		a13: t.a12*t.a23 - t.a13*t.a22,
		a21: t.a23*t.a31 - t.a21*t.a33,
		a22: t.a11*t.a33 - t.a13*t.a31,
		a23: t.a13*t.a21 - t.a11*t.a23,
		a31: t.a21*t.a32 - t.a22*t.a31,
		a32: t.a12*t.a31 - t.a11*t.a32,
		a33: t.a11*t.a22 - t.a12*t.a21,
	}
}

// QuadToSquare builds the transform mapping the quadrilateral
// (x0,y0)..(x3,y3) onto the unit square, the inverse of SquareToQuad.
func QuadToSquare(x0, y0, x1, y1, x2, y2, x3, y3 float64) Transform {
	return SquareToQuad(x0, y0, x1, y1, x2, y2, x3, y3).adjoint()
}

// Times composes two transforms: applying the result to a point is
// equivalent to applying t first, then other.
func (t Transform) Times(other Transform) Transform {
	return Transform{
		a11: t.a11*other.a11 + t.a12*other.a21 + t.a13*other.a31,
		a12: t.a11*other.a12 + t.a12*other.a22 + t.a13*other.a32,
		a13: t.a11*other.a13 + t.a12*other.a23 + t.a13*other.a33,
		a21: t.a21*other.a11 + t.a22*other.a21 + t.a23*other.a31,
		a22: t.a21*other.a12 + t.a22*other.a22 + t.a23*other.a32,
		a23: t.a21*other.a13 + t.a22*other.a23 + t.a23*other.a33,
		a31: t.a31*other.a11 + t.a32*other.a21 + t.a33*other.a31,
		a32: t.a31*other.a12 + t.a32*other.a22 + t.a33*other.a32,
		a33: t.a31*other.a13 + t.a32*other.a23 + t.a33*other.a33,
	}
}

// QuadToQuad builds the transform mapping one quadrilateral directly
// onto another, by going through the unit square.
func QuadToQuad(
	x0, y0, x1, y1, x2, y2, x3, y3 float64,
	x0p, y0p, x1p, y1p, x2p, y2p, x3p, y3p float64,
) Transform {
	toSquare := QuadToSquare(x0, y0, x1, y1, x2, y2, x3, y3)
	toQuad := SquareToQuad(x0p, y0p, x1p, y1p, x2p, y2p, x3p, y3p)
	return toSquare.Times(toQuad)
}
