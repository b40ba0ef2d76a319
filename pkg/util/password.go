package util

import (
	"golang.org/x/crypto/bcrypt"
)

// Default cost for stored credentials, above bcrypt's own default.
const defaultHashCost = 12

// HashPassword hashes a plain text password at the default cost
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, defaultHashCost)
}

// HashPasswordWithCost hashes a plain text password at an explicit bcrypt
// cost. Costs outside bcrypt's supported range fall back to its default.
func HashPasswordWithCost(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a plain text password matches a hashed password
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
