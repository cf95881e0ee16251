package util

import (
	"crypto/rand"
	"math/big"
)

// GenerateOrderNumber generates a random 6-digit order number (100000-999999).
// Numbers are not guaranteed unique; one terminal places one order at a time.
func GenerateOrderNumber() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, err
	}
	return 100000 + int(n.Int64()), nil
}
