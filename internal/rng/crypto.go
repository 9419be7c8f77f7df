package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto draws from crypto/rand
// Used when no seed is configured, so every shuffle is unpredictable.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("invalid argument to Intn: %d", n))
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
