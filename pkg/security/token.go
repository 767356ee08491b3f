package security

import (
	"crypto/rand"
	"encoding/hex"
)

const oneTimeTokenBytes = 32

// GenerateOneTimeToken returns a 64 character hex string used for email
// verification and password reset links
func GenerateOneTimeToken() (string, error) {
	b := make([]byte, oneTimeTokenBytes)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
