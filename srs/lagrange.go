package srs

import (
	"math/big"
	"math/bits"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// toLagrangeG1 converts a monomial SRS to the Lagrange basis by running the
// inverse NTT butterfly network on the points themselves: field addition
// becomes group addition and the twiddle product becomes a scalar
// multiplication. Scalar multiplication distributes over group addition, so
// the output is exactly the inverse NTT of the input "in the exponent":
// out[i] = L_i(tau)·G. len(monomial) must be a power of two.
func toLagrangeG1(monomial []bls12381.G1Affine) ([]bls12381.G1Affine, error) {
	points := make([]bls12381.G1Affine, len(monomial))
	copy(points, monomial)
	if len(points) == 1 {
		return points, nil
	}

	domain := fft.NewDomain(uint64(len(points)))
	twiddlesInv, err := domain.TwiddlesInv()
	if err != nil {
		return nil, err
	}

	numCPU := uint64(runtime.NumCPU())
	maxSplits := bits.TrailingZeros64(ecc.NextPowerOfTwo(numCPU))

	difFFTG1(points, twiddlesInv, 0, maxSplits, nil)
	bitReverseG1(points)

	// inverse transform scales by 1/n
	var scale big.Int
	domain.CardinalityInv.BigInt(&scale)
	for i := range points {
		points[i].ScalarMultiplication(&points[i], &scale)
	}

	return points, nil
}

func butterflyG1(a, b *bls12381.G1Affine) {
	t := *a
	a.Add(a, b)
	b.Sub(&t, b)
}

// difFFTG1 is the decimation-in-frequency transform over G1; the output is
// in bit-reversed order. The two recursion halves run on separate goroutines
// while stage < maxSplits.
func difFFTG1(a []bls12381.G1Affine, twiddles [][]fr.Element, stage, maxSplits int, chDone chan struct{}) {
	if chDone != nil {
		defer close(chDone)
	}

	n := len(a)
	if n == 1 {
		return
	}
	m := n >> 1

	butterflyG1(&a[0], &a[m])

	var twiddle big.Int
	for i := 1; i < m; i++ {
		butterflyG1(&a[i], &a[i+m])
		twiddles[stage][i].BigInt(&twiddle)
		a[i+m].ScalarMultiplication(&a[i+m], &twiddle)
	}

	if m == 1 {
		return
	}

	nextStage := stage + 1
	if stage < maxSplits {
		chDone := make(chan struct{}, 1)
		go difFFTG1(a[m:n], twiddles, nextStage, maxSplits, chDone)
		difFFTG1(a[0:m], twiddles, nextStage, maxSplits, nil)
		<-chDone
	} else {
		difFFTG1(a[0:m], twiddles, nextStage, maxSplits, nil)
		difFFTG1(a[m:n], twiddles, nextStage, maxSplits, nil)
	}
}

func bitReverseG1(a []bls12381.G1Affine) {
	n := uint64(len(a))
	nn := uint64(64 - bits.TrailingZeros64(n))

	for i := uint64(0); i < n; i++ {
		irev := bits.Reverse64(i) >> nn
		if irev > i {
			a[i], a[irev] = a[irev], a[i]
		}
	}
}
