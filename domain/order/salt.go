package order

import (
	"crypto/rand"
	"math/big"
)

var maxSalt = new(big.Int).Lsh(big.NewInt(1), 256)

// GenerateSalt draws a fresh 256-bit nonce. The salt carries no meaning of
// its own, it only keeps the hashes of otherwise-identical orders distinct.
func GenerateSalt() *big.Int {
	salt, err := rand.Int(rand.Reader, maxSalt)
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken
		panic(err)
	}
	return salt
}
