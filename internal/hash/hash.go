package hash

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash. The algorithm, cost and
// salt are embedded in the output, so two calls with the same password
// produce different strings.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// CheckPassword reports whether password matches the stored hash.
// Malformed hashes verify as false rather than erroring.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
