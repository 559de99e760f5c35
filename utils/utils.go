package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHexCode returns a random display code of length hex characters.
// Meeting room codes use 8; uniqueness is not checked anywhere.
func RandomHexCode(length int) string {
	b := make([]byte, length/2)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
