package common

import (
	"crypto/rand"
	"encoding/hex"
)

// RandHexString generates a random hexadecimal string from size random
// bytes. The returned string is twice as long as size, since every byte
// encodes as two hex characters. It returns an error only if the system
// random number generator fails.
func RandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
