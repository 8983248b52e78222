package polynomial

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/sha3"
)

// Random returns a polynomial of degree < n with coefficients drawn
// uniformly from crypto/rand.
func Random(n uint64) (Polynomial, error) {
	values := make([]fr.Element, n)
	for i := range values {
		if _, err := values[i].SetRandom(); err != nil {
			return Polynomial{}, err
		}
	}
	return NewCoefficients(values), nil
}

// Pseudorandom returns a polynomial of degree < n with coefficients derived
// from seed through a SHAKE-256 stream. The same seed always yields the same
// polynomial; meant for reproducible benchmark and test inputs, not for
// anything security sensitive.
func Pseudorandom(n uint64, seed []byte) Polynomial {
	h := sha3.NewShake256()
	h.Write(seed)

	// 48 bytes per draw keeps the mod-r bias negligible
	var buf [fr.Bytes + 16]byte
	values := make([]fr.Element, n)
	for i := range values {
		h.Read(buf[:])
		values[i].SetBytes(buf[:])
	}
	return NewCoefficients(values)
}
