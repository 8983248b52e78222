package commitment

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/tauvslagrange/polynomial"
	"github.com/consensys/tauvslagrange/srs"
)

// Prover holds a session polynomial in evaluation form and commits products
// of it with witness polynomials.
//
// The product is taken pointwise over the domain, i.e. modulo X^n - 1. Both
// bases commit to that same reduced polynomial, so the cross-basis equality
// holds for the product as well.
type Prover struct {
	srs    *srs.SRS
	domain *polynomial.Domain
	evals  []fr.Element
}

// NewProver fixes the session polynomial p of degree < n.
func NewProver(s *srs.SRS, d *polynomial.Domain, p polynomial.Polynomial) (*Prover, error) {
	if uint64(p.Size()) != s.Size() || s.Size() != d.Cardinality() {
		return nil, ErrLengthMismatch
	}
	return &Prover{
		srs:    s,
		domain: d,
		evals:  p.ToEvaluations(d).Values,
	}, nil
}

// CommitProduct multiplies the witness with the session polynomial in
// evaluation form and commits the product under both bases.
func (pr *Prover) CommitProduct(witness polynomial.Polynomial) (mono, lagrange bls12381.G1Affine, err error) {
	if witness.Size() != len(pr.evals) {
		err = ErrLengthMismatch
		return
	}

	witnessEvals := witness.ToEvaluations(pr.domain).Values
	product := make([]fr.Element, len(pr.evals))
	for i := range product {
		product[i].Mul(&witnessEvals[i], &pr.evals[i])
	}

	return CommitBoth(pr.srs, pr.domain, polynomial.NewEvaluations(product))
}
