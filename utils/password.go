package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes with the configured bcrypt cost (12 by default).
func HashPassword(plain string, cost int) (string, error) {
	if cost == 0 {
		cost = 12
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
