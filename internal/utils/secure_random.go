package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// GenerateSecureRandomString generates a cryptographically secure random
// string of the specified byte length, hex encoded (two characters per byte).
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateReferenceSuffix returns an uppercase hex suffix used for
// human-readable reference numbers (booking numbers, invoice numbers).
func GenerateReferenceSuffix(lengthInBytes int) (string, error) {
	s, err := GenerateSecureRandomString(lengthInBytes)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(s), nil
}
