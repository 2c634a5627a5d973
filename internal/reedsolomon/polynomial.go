// Package reedsolomon implements the QR code's systematic Reed-Solomon
// encoder and the Euclidean-algorithm decoder (syndromes, Berlekamp-like
// Euclidean error-locator computation, Chien search, Forney's formula).
//
// The implementation operates over internal/gf256 and is a generalization
// of the teacher's reedsolomon.go, which only implemented systematic
// encoding for a single generator instance with no error correction.
package reedsolomon

import "github.com/ashokshau/qriso/internal/gf256"

// Polynomial holds coefficients highest-degree first. The canonical zero
// polynomial is []int{0}; leading zeros are otherwise always trimmed.
type Polynomial struct {
	coeffs []int
}

// NewPolynomial builds a Polynomial from coefficients given highest-degree
// first, trimming leading zero coefficients.
func NewPolynomial(coeffs []int) Polynomial {
	c := coeffs
	i := 0
	for i < len(c)-1 && c[i] == 0 {
		i++
	}
	out := make([]int, len(c)-i)
	copy(out, c[i:])
	return Polynomial{coeffs: out}
}

// Zero is the canonical zero polynomial.
func Zero() Polynomial { return Polynomial{coeffs: []int{0}} }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 1 && p.coeffs[0] == 0 }

// Degree returns p's degree; the zero polynomial has degree 0.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coeff returns the coefficient of x^degree.
func (p Polynomial) Coeff(degree int) int {
	idx := len(p.coeffs) - 1 - degree
	if idx < 0 || idx >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[idx]
}

// Eval evaluates p(x) via Horner's method, short-circuiting the common
// cases x=0 (the constant term) and x=1 (XOR of all coefficients).
func (p Polynomial) Eval(x int) int {
	if x == 0 {
		return p.Coeff(0)
	}
	if x == 1 {
		result := 0
		for _, c := range p.coeffs {
			result ^= c
		}
		return result
	}
	result := p.coeffs[0]
	for i := 1; i < len(p.coeffs); i++ {
		result = gf256.Mul(result, x) ^ p.coeffs[i]
	}
	return result
}

// Add returns p+q (XOR of coefficients, aligned to the higher degree).
func (p Polynomial) Add(q Polynomial) Polynomial {
	if p.IsZero() {
		return q
	}
	if q.IsZero() {
		return p
	}
	small, large := p.coeffs, q.coeffs
	if len(small) > len(large) {
		small, large = large, small
	}
	diff := len(large) - len(small)
	out := make([]int, len(large))
	copy(out, large[:diff])
	for i := 0; i < len(small); i++ {
		out[diff+i] = small[i] ^ large[diff+i]
	}
	return NewPolynomial(out)
}

// MulScalar returns p scaled by a GF(256) constant.
func (p Polynomial) MulScalar(scalar int) Polynomial {
	if scalar == 0 {
		return Zero()
	}
	if scalar == 1 {
		return p
	}
	out := make([]int, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = gf256.Mul(c, scalar)
	}
	return NewPolynomial(out)
}

// MulByMonomial returns p * (coefficient * x^degree).
func (p Polynomial) MulByMonomial(degree, coefficient int) Polynomial {
	if coefficient == 0 {
		return Zero()
	}
	out := make([]int, len(p.coeffs)+degree)
	for i, c := range p.coeffs {
		out[i] = gf256.Mul(c, coefficient)
	}
	return NewPolynomial(out)
}

// Mul returns p*q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	out := make([]int, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a == 0 {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j] ^= gf256.Mul(a, b)
		}
	}
	return NewPolynomial(out)
}

// Divide returns (quotient, remainder) of p/other via repeated
// leading-term cancellation. Panics if other is the zero polynomial.
func (p Polynomial) Divide(other Polynomial) (quotient, remainder Polynomial) {
	if other.IsZero() {
		panic("reedsolomon: division by zero polynomial")
	}
	quotient = Zero()
	remainder = p
	denomLeadInv := gf256.Inv(other.Coeff(other.Degree()))

	for !remainder.IsZero() && remainder.Degree() >= other.Degree() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := gf256.Mul(remainder.Coeff(remainder.Degree()), denomLeadInv)
		quotient = quotient.Add(monomial(degreeDiff, scale))
		remainder = remainder.Add(other.MulByMonomial(degreeDiff, scale))
	}
	return quotient, remainder
}

func monomial(degree, coefficient int) Polynomial {
	if coefficient == 0 {
		return Zero()
	}
	out := make([]int, degree+1)
	out[0] = coefficient
	return NewPolynomial(out)
}
