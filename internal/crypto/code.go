package crypto

import (
	"crypto/rand"
	"encoding/base64"
)

const codeBytes = 24

// GenerateCode creates a cryptographically random, URL-safe verification code.
// Codes are single-use opaque strings; callers clear them on first use.
func GenerateCode() (string, error) {
	buf := make([]byte, codeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
