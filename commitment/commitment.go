// Package commitment computes KZG-style polynomial commitments as
// multi-scalar multiplications against an SRS, in either the monomial or
// the Lagrange basis.
package commitment

import (
	"errors"
	"math/big"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/tauvslagrange/polynomial"
	"github.com/consensys/tauvslagrange/srs"
)

// ErrLengthMismatch is returned when the scalar vector and the SRS have
// different lengths.
var ErrLengthMismatch = errors.New("commitment: scalar vector length does not match SRS size")

// Commit computes Σ scalars[i]·points[i].
//
// scalars is the coefficient vector when points is a monomial SRS, or the
// evaluation vector when points is a Lagrange SRS.
func Commit(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Affine, error) {
	var c bls12381.G1Affine
	if len(scalars) != len(points) {
		return c, ErrLengthMismatch
	}
	if _, err := c.MultiExp(points, scalars, ecc.MultiExpConfig{NbTasks: runtime.NumCPU()}); err != nil {
		return c, err
	}
	return c, nil
}

// CommitBoth commits p under both bases of s: its coefficients against the
// monomial SRS and its evaluations against the Lagrange SRS, concurrently.
// The two results are equal for every polynomial of degree < n, whatever
// the secret behind s.
func CommitBoth(s *srs.SRS, d *polynomial.Domain, p polynomial.Polynomial) (mono, lagrange bls12381.G1Affine, err error) {
	if uint64(p.Size()) != d.Cardinality() || s.Size() != d.Cardinality() {
		err = ErrLengthMismatch
		return
	}

	coeffs := p.ToCoefficients(d)
	evals := p.ToEvaluations(d)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		mono, err = Commit(s.Monomial, coeffs.Values)
		return err
	})
	g.Go(func() error {
		var err error
		lagrange, err = Commit(s.Lagrange, evals.Values)
		return err
	})
	err = g.Wait()
	return
}

// commitPartitioned is the reference multi-scalar multiplication: fixed
// index-range partitions, each summed term by term, partial sums combined
// in ascending partition order. The partition boundaries depend on the
// input length only, so the reduction order is deterministic for any worker
// count. Used to cross-check the windowed method.
func commitPartitioned(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Affine, error) {
	var c bls12381.G1Affine
	if len(scalars) != len(points) {
		return c, ErrLengthMismatch
	}

	const partitionSize = 256
	nbPartitions := (len(points) + partitionSize - 1) / partitionSize
	if nbPartitions == 0 {
		return c, nil // zero-length input commits to the identity
	}

	partials := make([]bls12381.G1Jac, nbPartitions)
	var g errgroup.Group
	for j := 0; j < nbPartitions; j++ {
		start := j * partitionSize
		end := min(start+partitionSize, len(points))
		partial := &partials[j]
		g.Go(func() error {
			var s big.Int
			var t bls12381.G1Jac
			for i := start; i < end; i++ {
				scalars[i].BigInt(&s)
				var p bls12381.G1Jac
				p.FromAffine(&points[i])
				t.AddAssign(p.ScalarMultiplication(&p, &s))
			}
			partial.Set(&t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c, err
	}

	var acc bls12381.G1Jac
	for j := range partials {
		acc.AddAssign(&partials[j])
	}
	c.FromJacobian(&acc)
	return c, nil
}
