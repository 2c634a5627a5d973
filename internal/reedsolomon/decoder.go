package reedsolomon

import (
	"errors"
	"fmt"

	"github.com/ashokshau/qriso/internal/gf256"
)

// ErrUncorrectable is returned when a received codeword block cannot be
// corrected: the Euclidean algorithm failed to reduce the remainder degree
// below ecCount/2, the error locator's constant term is zero, the locator's
// root count didn't match its degree, or a computed error position fell
// outside the block.
var ErrUncorrectable = errors.New("reedsolomon: uncorrectable error")

// Decoder corrects QR code data+EC blocks via the Euclidean algorithm,
// Chien search, and Forney's formula.
type Decoder struct{}

// NewDecoder returns a Decoder. Decoder holds no state and is safe for
// concurrent use; the type exists to mirror Encoder's shape and leave room
// for a future generator cache.
func NewDecoder() *Decoder { return &Decoder{} }

// Correct attempts to correct up to ecCount/2 byte errors in received
// (data codewords followed by ecCount EC codewords, in that order) in
// place. It returns the number of corrected byte errors. If the block
// cannot be corrected, received is left untouched and ErrUncorrectable is
// returned.
func (d *Decoder) Correct(received []byte, ecCount int) (int, error) {
	work := make([]int, len(received))
	for i, b := range received {
		work[i] = int(b)
	}

	poly := NewPolynomial(work)
	syndromeCoefficients := make([]int, ecCount)
	noError := true
	for i := 0; i < ecCount; i++ {
		evalAt := poly.Eval(gf256.Exp[i%255])
		syndromeCoefficients[ecCount-1-i] = evalAt
		if evalAt != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	syndrome := NewPolynomial(syndromeCoefficients)
	sigma, omega, err := runEuclideanAlgorithm(monomial(ecCount, 1), syndrome, ecCount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUncorrectable, err)
	}

	errorLocations, err := findErrorLocations(sigma)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUncorrectable, err)
	}
	errorMagnitudes := findErrorMagnitudes(omega, errorLocations)

	numErrors := len(errorLocations)
	for i := 0; i < numErrors; i++ {
		position := len(work) - 1 - gf256.Log[errorLocations[i]]
		if position < 0 {
			return 0, fmt.Errorf("%w: bad error location", ErrUncorrectable)
		}
		work[position] = gf256.Add(work[position], errorMagnitudes[i])
	}

	for i, v := range work {
		received[i] = byte(v)
	}
	return numErrors, nil
}

// runEuclideanAlgorithm finds the error locator (sigma) and error
// evaluator (omega) polynomials via the extended Euclidean algorithm,
// stopping once the remainder's degree drops below R/2.
func runEuclideanAlgorithm(a, b Polynomial, r int) (sigma, omega Polynomial, err error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast, rCur := a, b
	tLast, tCur := Zero(), NewPolynomial([]int{1})

	for rCur.Degree() >= r/2 {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = rCur, tCur

		if rLast.IsZero() {
			return Polynomial{}, Polynomial{}, errors.New("r_{i-1} was zero")
		}
		rCur = rLastLast
		q := Zero()
		denomLeadInv := gf256.Inv(rLast.Coeff(rLast.Degree()))

		for rCur.Degree() >= rLast.Degree() && !rCur.IsZero() {
			degreeDiff := rCur.Degree() - rLast.Degree()
			scale := gf256.Mul(rCur.Coeff(rCur.Degree()), denomLeadInv)
			q = q.Add(monomial(degreeDiff, scale))
			rCur = rCur.Add(rLast.MulByMonomial(degreeDiff, scale))
		}

		tCur = q.Mul(tLast).Add(tLastLast)

		if rCur.Degree() >= rLast.Degree() {
			return Polynomial{}, Polynomial{}, errors.New("division algorithm failed to reduce")
		}
	}

	sigmaTildeAtZero := tCur.Coeff(0)
	if sigmaTildeAtZero == 0 {
		return Polynomial{}, Polynomial{}, errors.New("sigma(0) was zero")
	}

	inverse := gf256.Inv(sigmaTildeAtZero)
	return tCur.MulScalar(inverse), rCur.MulScalar(inverse), nil
}

// findErrorLocations returns the inverse-roots of the error locator
// polynomial via Chien search (brute-force scan of every nonzero field
// element), i.e. the X_j in sigma(X_j^-1) = 0.
func findErrorLocations(errorLocator Polynomial) ([]int, error) {
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		return []int{errorLocator.Coeff(1)}, nil
	}
	result := make([]int, 0, numErrors)
	for i := 1; i < 256 && len(result) < numErrors; i++ {
		if errorLocator.Eval(i) == 0 {
			result = append(result, gf256.Inv(i))
		}
	}
	if len(result) != numErrors {
		return nil, errors.New("error locator degree does not match number of roots")
	}
	return result, nil
}

// findErrorMagnitudes applies Forney's formula to compute the magnitude of
// the error at each located position. generatorBase is 0 for QR codes
// (syndromes are taken at alpha^0..alpha^(ecCount-1)), so the magnitude
// is omega(X_j^-1) over the product term, with no extra X_j^-1 factor.
func findErrorMagnitudes(errorEvaluator Polynomial, errorLocations []int) []int {
	s := len(errorLocations)
	result := make([]int, s)
	for i := 0; i < s; i++ {
		xiInverse := gf256.Inv(errorLocations[i])
		denominator := 1
		for j := 0; j < s; j++ {
			if i == j {
				continue
			}
			denominator = gf256.Mul(denominator, gf256.Add(1, gf256.Mul(errorLocations[j], xiInverse)))
		}
		result[i] = gf256.Mul(errorEvaluator.Eval(xiInverse), gf256.Inv(denominator))
	}
	return result
}
