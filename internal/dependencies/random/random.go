package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// New returns a seeded source when seed is non-zero, otherwise a crypto source
func New(seed uint64) Random {
	if seed == 0 {
		return NewCrypto()
	}
	return NewSeeded(seed)
}

// SeededRandom implements Random with a reproducible PCG source
type SeededRandom struct {
	rng *mathrand.Rand
}

// NewSeeded creates a SeededRandom. The same seed yields the same sequence.
func NewSeeded(seed uint64) *SeededRandom {
	return &SeededRandom{
		rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// NewCrypto creates a new CryptoRandom
func NewCrypto() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}
