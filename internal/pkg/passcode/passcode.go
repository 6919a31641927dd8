// Package passcode generates and verifies one-time verification codes.
// Codes are short-lived, so the reduced bcrypt cost keeps verification
// latency acceptable while still avoiding plaintext codes at rest.
package passcode

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	CodeLength = 6

	hashCost = bcrypt.MinCost + 2
)

var (
	ErrGenerationFailed = errors.New("code generation failed")
	ErrHashingFailed    = errors.New("code hashing failed")
	ErrCodeMismatch     = errors.New("code mismatch")
	ErrInvalidCode      = errors.New("invalid code")
)

// Generate returns a zero-padded numeric code of CodeLength digits from
// crypto/rand.
func Generate() (string, error) {
	max := big.NewInt(1)
	for range CodeLength {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", ErrGenerationFailed
	}

	code := n.String()
	for len(code) < CodeLength {
		code = "0" + code
	}
	return code, nil
}

func Hash(code string) (string, error) {
	if code == "" {
		return "", ErrInvalidCode
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), hashCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashedCode, code string) error {
	if hashedCode == "" || code == "" {
		return ErrInvalidCode
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrCodeMismatch
		}
		return err
	}
	return nil
}
