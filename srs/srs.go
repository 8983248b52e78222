// Package srs generates and serializes a BLS12-381 structured reference
// string in both the monomial (powers of tau) and the Lagrange basis.
//
// Both bases are derived from the same secret scalar: Monomial[i] = tau^i·G,
// and Lagrange[i] = L_i(tau)·G where L_i is the i-th Lagrange polynomial
// over the size-n evaluation domain. The Lagrange basis is obtained from the
// monomial one by an inverse NTT carried out directly on the group elements,
// so the secret is never reconstructed.
package srs

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/sha3"

	"github.com/consensys/tauvslagrange/internal/utils"
)

// maxOrder is the 2-adicity of the BLS12-381 scalar field.
const maxOrder = 32

var (
	// ErrInvalidDomainSize is returned when the requested size is not a
	// power of two supported by the scalar field.
	ErrInvalidDomainSize = errors.New("srs: size must be a power of two, at most 2^32")

	// ErrDegenerateSecret is returned when the secret scalar is zero. This
	// is a defensive check against a degenerate setup, not a security
	// guarantee.
	ErrDegenerateSecret = errors.New("srs: secret scalar is zero")
)

// SRS holds the output of one trusted setup in both bases. Immutable after
// generation.
type SRS struct {
	// Monomial[i] = tau^i·G; Monomial[0] is the generator.
	Monomial []bls12381.G1Affine
	// Lagrange[i] = L_i(tau)·G over the canonical size-n domain.
	Lagrange []bls12381.G1Affine
}

// Size returns the number of points per basis.
func (s *SRS) Size() uint64 {
	return uint64(len(s.Monomial))
}

// Setup builds both SRS bases of size n from the secret tau.
//
// tau is received by value: the local copy and every intermediate power are
// zeroized before Setup returns, and the caller is expected to discard its
// own copy immediately after the call. Retaining tau past setup defeats the
// scheme (toxic waste).
func Setup(n uint64, tau fr.Element) (*SRS, error) {
	if !utils.IsPowerOfTwo(n) || utils.Log2(n) > maxOrder {
		return nil, ErrInvalidDomainSize
	}
	if tau.IsZero() {
		return nil, ErrDegenerateSecret
	}

	_, _, g1, _ := bls12381.Generators()

	monomial := make([]bls12381.G1Affine, n)
	monomial[0] = g1
	if n > 1 {
		// running product tau, tau^2, ..., tau^(n-1)
		powers := make([]fr.Element, n-1)
		powers[0] = tau
		for i := 1; i < len(powers); i++ {
			powers[i].Mul(&powers[i-1], &tau)
		}
		copy(monomial[1:], bls12381.BatchScalarMultiplicationG1(&g1, powers))
		for i := range powers {
			powers[i].SetZero()
		}
	}
	tau.SetZero()

	lagrange, err := toLagrangeG1(monomial)
	if err != nil {
		return nil, err
	}

	return &SRS{Monomial: monomial, Lagrange: lagrange}, nil
}

// NewSetup draws a fresh secret from crypto/rand, builds both bases and
// discards the secret.
func NewSetup(n uint64) (*SRS, error) {
	var tau fr.Element
	if _, err := tau.SetRandom(); err != nil {
		return nil, err
	}
	s, err := Setup(n, tau)
	tau.SetZero()
	return s, err
}

// SeededSetup derives the secret from seed through SHAKE-256, builds both
// bases and discards the secret. Anyone holding the seed can recompute tau,
// so this is only suitable for reproducible benchmarks and tests.
func SeededSetup(n uint64, seed []byte) (*SRS, error) {
	h := sha3.NewShake256()
	h.Write(seed)
	var buf [fr.Bytes + 16]byte
	h.Read(buf[:])

	var tau fr.Element
	tau.SetBytes(buf[:])
	s, err := Setup(n, tau)
	tau.SetZero()
	return s, err
}
