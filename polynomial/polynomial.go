package polynomial

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Basis tags which view of a polynomial a value vector holds.
type Basis uint8

const (
	// Coefficients indexes the vector by powers of the variable.
	Coefficients Basis = iota
	// Evaluations indexes the vector by position in the domain.
	Evaluations
)

// Polynomial is a polynomial of degree < n in one of its two views: a
// coefficient vector or an evaluation vector over a size-n domain. The two
// views describe the same mathematical object; conversions are explicit and
// pure, there is no hidden caching.
type Polynomial struct {
	Values []fr.Element
	Basis  Basis
}

// NewCoefficients wraps a coefficient vector. Takes ownership of values.
func NewCoefficients(values []fr.Element) Polynomial {
	return Polynomial{Values: values, Basis: Coefficients}
}

// NewEvaluations wraps an evaluation vector. Takes ownership of values.
func NewEvaluations(values []fr.Element) Polynomial {
	return Polynomial{Values: values, Basis: Evaluations}
}

// Size returns the vector length n.
func (p Polynomial) Size() int {
	return len(p.Values)
}

// ToEvaluations returns the evaluation view of p over d. If p already is in
// evaluation form it is returned as is; otherwise a fresh vector is computed
// and p is left untouched.
func (p Polynomial) ToEvaluations(d *Domain) Polynomial {
	if p.Basis == Evaluations {
		return p
	}
	return NewEvaluations(d.Evaluate(p.Values))
}

// ToCoefficients returns the coefficient view of p over d. If p already is
// in coefficient form it is returned as is; otherwise a fresh vector is
// computed and p is left untouched.
func (p Polynomial) ToCoefficients(d *Domain) Polynomial {
	if p.Basis == Coefficients {
		return p
	}
	return NewCoefficients(d.Interpolate(p.Values))
}

// Eval evaluates p at the given point with Horner's method. p must be in
// coefficient form.
func (p Polynomial) Eval(at *fr.Element) fr.Element {
	if p.Basis != Coefficients {
		panic("polynomial: Eval requires coefficient form")
	}
	var res fr.Element
	for i := len(p.Values) - 1; i >= 0; i-- {
		res.Mul(&res, at)
		res.Add(&res, &p.Values[i])
	}
	return res
}
