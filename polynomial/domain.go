// Package polynomial provides the evaluation domain and the dual
// (coefficient / evaluation) representation of polynomials over the
// BLS12-381 scalar field, with NTT-based conversions between the two.
package polynomial

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/consensys/tauvslagrange/internal/utils"
)

// maxOrder is the 2-adicity of the BLS12-381 scalar field; the field has no
// multiplicative subgroup of order 2^k for k beyond it.
const maxOrder = 32

// ErrInvalidDomainSize is returned when the requested size is not a power of
// two, or when the scalar field has no root of unity of that order.
var ErrInvalidDomainSize = errors.New("polynomial: domain size must be a power of two, at most 2^32")

// Domain is a fixed evaluation domain: the n-th roots of unity of the scalar
// field, ordered as ascending powers of a fixed primitive n-th root. The
// sequence order is the canonical index used for evaluation and
// interpolation.
type Domain struct {
	inner *fft.Domain
	roots []fr.Element
}

// NewDomain builds the canonical domain of size n. Deterministic given n.
func NewDomain(n uint64) (*Domain, error) {
	if !utils.IsPowerOfTwo(n) || utils.Log2(n) > maxOrder {
		return nil, ErrInvalidDomainSize
	}

	inner := fft.NewDomain(n)
	roots := make([]fr.Element, n)
	roots[0].SetOne()
	for i := 1; i < len(roots); i++ {
		roots[i].Mul(&roots[i-1], &inner.Generator)
	}

	return &Domain{inner: inner, roots: roots}, nil
}

// Cardinality returns the domain size.
func (d *Domain) Cardinality() uint64 {
	return d.inner.Cardinality
}

// Generator returns the primitive n-th root of unity the domain is built on.
func (d *Domain) Generator() fr.Element {
	return d.inner.Generator
}

// Roots returns the domain elements in canonical order. The returned slice
// is owned by the domain and must not be modified.
func (d *Domain) Roots() []fr.Element {
	return d.roots
}

// Evaluate computes the evaluations of the polynomial with the given
// coefficients at each domain element, in canonical order (forward NTT).
// The input is left untouched. len(coeffs) must equal the domain size.
func (d *Domain) Evaluate(coeffs []fr.Element) []fr.Element {
	d.mustMatch(len(coeffs))
	evals := make([]fr.Element, len(coeffs))
	copy(evals, coeffs)
	d.inner.FFT(evals, fft.DIF)
	fft.BitReverse(evals)
	return evals
}

// Interpolate recovers the coefficients of the unique polynomial of degree
// < n taking the given values on the domain, in canonical order (inverse
// NTT). Exact inverse of Evaluate. The input is left untouched.
func (d *Domain) Interpolate(evals []fr.Element) []fr.Element {
	d.mustMatch(len(evals))
	coeffs := make([]fr.Element, len(evals))
	copy(coeffs, evals)
	d.inner.FFTInverse(coeffs, fft.DIF)
	fft.BitReverse(coeffs)
	return coeffs
}

// length mismatch here is a programmer error, not an input condition
func (d *Domain) mustMatch(n int) {
	if uint64(n) != d.inner.Cardinality {
		panic(fmt.Sprintf("polynomial: vector length %d does not match domain size %d", n, d.inner.Cardinality))
	}
}
