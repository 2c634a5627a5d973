package reedsolomon

import "github.com/ashokshau/qriso/internal/gf256"

// Encoder produces systematic Reed-Solomon error-correction codewords for
// QR code data blocks.
type Encoder struct {
	generatorCache []Polynomial
}

// NewEncoder returns an Encoder whose generator-polynomial cache holds
// only the degree-0 generator, 1.
func NewEncoder() *Encoder {
	return &Encoder{generatorCache: []Polynomial{NewPolynomial([]int{1})}}
}

// generator returns (and memoizes) the generator polynomial
// g(x) = prod_{i=0}^{degree-1} (x - alpha^i), matching the teacher's
// GenerateGeneratorPoly but cached across calls since an encoder is
// typically reused across many blocks of the same EC length.
func (e *Encoder) generator(degree int) Polynomial {
	for len(e.generatorCache) <= degree {
		last := e.generatorCache[len(e.generatorCache)-1]
		next := last.Mul(NewPolynomial([]int{1, gf256.Exp[len(e.generatorCache)-1]}))
		e.generatorCache = append(e.generatorCache, next)
	}
	return e.generatorCache[degree]
}

// Encode returns the ecCount error-correction codewords for data,
// computed as the remainder of (data * x^ecCount) / generator(ecCount).
func (e *Encoder) Encode(data []byte, ecCount int) []byte {
	generator := e.generator(ecCount)

	info := make([]int, len(data)+ecCount)
	for i, b := range data {
		info[i] = int(b)
	}

	_, remainder := NewPolynomial(info).Divide(generator)

	ec := make([]byte, ecCount)
	numZero := ecCount - remainder.Degree() - 1
	for i := 0; i < remainder.Degree()+1; i++ {
		ec[numZero+i] = byte(remainder.Coeff(remainder.Degree() - i))
	}
	return ec
}
