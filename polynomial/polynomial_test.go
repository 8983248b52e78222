package polynomial_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/tauvslagrange/polynomial"
)

func TestNewDomainInvalidSize(t *testing.T) {
	for _, n := range []uint64{0, 3, 6, 12, 100, 1 << 33} {
		_, err := polynomial.NewDomain(n)
		require.ErrorIs(t, err, polynomial.ErrInvalidDomainSize, "n=%d", n)
	}
}

func TestDomainRoots(t *testing.T) {
	const n = 8
	d, err := polynomial.NewDomain(n)
	require.NoError(t, err)

	roots := d.Roots()
	require.Len(t, roots, n)

	var one fr.Element
	one.SetOne()
	require.True(t, roots[0].Equal(&one), "first root must be 1")

	exp := big.NewInt(n)
	seen := make(map[string]struct{}, n)
	for i := range roots {
		var r fr.Element
		r.Exp(roots[i], exp)
		require.True(t, r.Equal(&one), "root %d is not an n-th root of unity", i)

		_, dup := seen[roots[i].String()]
		require.False(t, dup, "root %d repeats", i)
		seen[roots[i].String()] = struct{}{}
	}
}

func TestEvaluateMatchesHorner(t *testing.T) {
	const n = 8
	d, err := polynomial.NewDomain(n)
	require.NoError(t, err)

	p := polynomial.Pseudorandom(n, []byte("horner"))
	evals := d.Evaluate(p.Values)

	for i, root := range d.Roots() {
		expected := p.Eval(&root)
		require.True(t, evals[i].Equal(&expected), "evaluation %d differs from Horner", i)
	}
}

func TestInterpolateRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	d, err := polynomial.NewDomain(16)
	require.NoError(t, err)

	properties := gopter.NewProperties(parameters)
	properties.Property("interpolate(evaluate(c)) == c", prop.ForAll(
		func(c []fr.Element) bool {
			got := d.Interpolate(d.Evaluate(c))
			for i := range c {
				if !got[i].Equal(&c[i]) {
					return false
				}
			}
			return true
		},
		genVector(16),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSingleElementDomain(t *testing.T) {
	d, err := polynomial.NewDomain(1)
	require.NoError(t, err)

	var one fr.Element
	one.SetOne()
	require.True(t, d.Roots()[0].Equal(&one))

	var c fr.Element
	c.SetUint64(42)
	evals := d.Evaluate([]fr.Element{c})
	require.True(t, evals[0].Equal(&c), "a constant evaluates to itself")

	coeffs := d.Interpolate(evals)
	require.True(t, coeffs[0].Equal(&c))
}

func TestConversionsArePure(t *testing.T) {
	const n = 8
	d, err := polynomial.NewDomain(n)
	require.NoError(t, err)

	p := polynomial.Pseudorandom(n, []byte("pure"))
	before := make([]fr.Element, n)
	copy(before, p.Values)

	e := p.ToEvaluations(d)
	require.Equal(t, polynomial.Evaluations, e.Basis)
	require.Equal(t, polynomial.Coefficients, p.Basis)
	for i := range before {
		require.True(t, p.Values[i].Equal(&before[i]), "conversion touched its input")
	}

	back := e.ToCoefficients(d)
	for i := range before {
		require.True(t, back.Values[i].Equal(&before[i]))
	}

	// converting to the basis a polynomial already holds is the identity
	same := e.ToEvaluations(d)
	require.Same(t, &e.Values[0], &same.Values[0])
}

func TestPseudorandomDeterministic(t *testing.T) {
	a := polynomial.Pseudorandom(8, []byte("seed"))
	b := polynomial.Pseudorandom(8, []byte("seed"))
	c := polynomial.Pseudorandom(8, []byte("other"))

	for i := range a.Values {
		require.True(t, a.Values[i].Equal(&b.Values[i]), "same seed must give the same polynomial")
	}

	same := true
	for i := range a.Values {
		if !a.Values[i].Equal(&c.Values[i]) {
			same = false
			break
		}
	}
	require.False(t, same, "different seeds should give different polynomials")
}

func genVector(n int) gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		v := make([]fr.Element, n)
		for i := range v {
			if _, err := v[i].SetRandom(); err != nil {
				panic(err)
			}
		}
		return gopter.NewGenResult(v, gopter.NoShrinker)
	}
}
