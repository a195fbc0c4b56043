package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a gateway account password with bcrypt.  A cost
// outside bcrypt's supported range falls back to the library default so
// a misconfigured BCRYPT_COST cannot weaken hashing or break
// registration.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
