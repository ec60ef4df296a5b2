package utils

import (
	"crypto/rand"
	"encoding/base64"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Length of the public booking name that ends up in confirmation
	// links; 62^7 keeps collisions out of reach at booking volumes.
	bookingNameLength = 7
)

// GenerateID returns the short identifier used as a booking's public name.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, bookingNameLength)
	if err != nil {
		return ""
	}
	return id
}

// GenerateRandomString returns a cryptographically secure random string,
// used for OAuth state tokens.
func GenerateRandomString(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		id, _ := gonanoid.Generate(idAlphabet, length)
		return id
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length]
}
