package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost factor used for all stored passwords.
const HashCost = 10

// HashPassword returns the bcrypt digest of a plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash reports whether plaintext matches the stored digest.
// A mismatch is not an error, just false.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
