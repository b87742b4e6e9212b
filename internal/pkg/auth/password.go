package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Alphabets without look-alike characters (no 0/O, 1/l/I)
const (
	tempLetters = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	tempDigits  = "23456789"
)

// GenerateTempPassword builds a temporary password handed to newly
// provisioned accounts: four letters, four digits, two letters.
func GenerateTempPassword() (string, error) {
	pick := func(set string, n int) (string, error) {
		out := make([]byte, n)
		for i := range out {
			idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
			if err != nil {
				return "", err
			}
			out[i] = set[idx.Int64()]
		}
		return string(out), nil
	}

	head, err := pick(tempLetters, 4)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	mid, err := pick(tempDigits, 4)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	tail, err := pick(tempLetters, 2)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return head + mid + tail, nil
}
