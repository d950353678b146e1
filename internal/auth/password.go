package auth

import "golang.org/x/crypto/bcrypt"

// HashAPIKey hashes an API key for AUTH_API_KEY_HASH.
func HashAPIKey(key string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CompareAPIKey verifies a presented key against its hash.
func CompareAPIKey(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
