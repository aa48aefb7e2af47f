package auth

import (
	"crypto/rand"
	"encoding/base64"

	"lectern/internal/domain/service"
	"lectern/internal/errors"
)

// tokenLength is the number of random bytes per token (160 bits of entropy).
const tokenLength = 20

// randomTokenGenerator generates opaque bearer tokens from crypto/rand.
type randomTokenGenerator struct{}

// NewTokenGenerator is the constructor for randomTokenGenerator.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns a URL-safe encoding of tokenLength random bytes.
func (g *randomTokenGenerator) Generate() (string, error) {
	raw := make([]byte, tokenLength)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
